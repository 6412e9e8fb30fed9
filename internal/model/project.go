package model

import (
	"time"

	"github.com/google/uuid"
)

// Project принадлежит одному клиенту. AbsoluteDeadline — жёсткий потолок:
// сдвиг расписания за эту дату требует явного подтверждения.
type Project struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	ClientID         uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	AbsoluteDeadline string    `gorm:"type:varchar(10)" json:"absolute_deadline,omitempty"` // YYYY-MM-DD, empty when unset
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"-"`

	Client Client `gorm:"foreignKey:ClientID" json:"-"`
}
