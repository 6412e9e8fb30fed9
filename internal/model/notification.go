package model

import "github.com/google/uuid"

// Notification is an ephemeral in-process reminder. Scan-generated entries
// use deterministic IDs ("deadline-<task>", "prep-<task>") so repeated scans
// deduplicate; assignment entries get a unique suffix. Not persisted.
type Notification struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Read    bool      `json:"read"`
	TaskID  uuid.UUID `json:"task_id"`
}

// NotificationCap ограничивает ленту двадцатью последними уведомлениями
const NotificationCap = 20
