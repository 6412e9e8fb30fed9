package schedule

import (
	"strings"

	"github.com/google/uuid"

	"prodcal/internal/model"
	"prodcal/internal/dateutil"
)

// DeriveEditingTask synthesizes the follow-on editing task when a filming
// task is saved as done. It returns nil unless the save transitions the
// status from non-done to done, and never duplicates: if the project already
// has an editing task whose title contains the filming title, nothing is
// derived.
//
// The derived task starts the day after the shoot, unassigned and pending,
// with the phase suffix of the title swapped.
func DeriveEditingTask(saved model.Task, original *model.Task, existing []model.Task) *model.Task {
	if saved.Type != model.TypeFilming || saved.Status != model.StatusDone {
		return nil
	}
	if original != nil && original.Status == model.StatusDone {
		return nil
	}
	for _, t := range existing {
		if t.ProjectID == saved.ProjectID && t.Type == model.TypeEditing && strings.Contains(t.Title, saved.Title) {
			return nil
		}
	}
	return &model.Task{
		ID:        uuid.New(),
		Date:      dateutil.NextDay(saved.Date),
		Title:     swapPhaseSuffix(saved.Title, model.TypeFilming, model.TypeEditing),
		ProjectID: saved.ProjectID,
		Type:      model.TypeEditing,
		Status:    model.StatusPending,
		Progress:  0,
	}
}

// swapPhaseSuffix turns "MV Shoot (Filming)" into "MV Shoot (Editing)".
// Titles without the source suffix just gain the target one.
func swapPhaseSuffix(title string, from, to model.TaskType) string {
	base := strings.TrimSpace(strings.ReplaceAll(title, "("+from.Label()+")", ""))
	return base + " (" + to.Label() + ")"
}
