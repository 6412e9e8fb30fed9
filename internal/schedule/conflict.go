package schedule

import (
	"prodcal/internal/model"
)

// FindConflict returns the first existing task whose date range overlaps the
// candidate's, among tasks of the same person and type. Only assigned
// editing tasks are checked: filming and preparation can legitimately stack
// on one calendar day, editing time on one person cannot.
func FindConflict(candidate model.Task, existing []model.Task) *model.Task {
	if candidate.Type != model.TypeEditing || candidate.PersonID == nil {
		return nil
	}
	for i := range existing {
		other := existing[i]
		if other.ID == candidate.ID {
			continue
		}
		if other.Type != model.TypeEditing || other.PersonID == nil || *other.PersonID != *candidate.PersonID {
			continue
		}
		if candidate.Overlaps(other) {
			return &other
		}
	}
	return nil
}
