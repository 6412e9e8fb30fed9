package schedule

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"prodcal/internal/model"
	"prodcal/internal/store"
)

// Confirmer answers the deadline-overrun question: given the warning list,
// should the push proceed anyway? The HTTP layer builds one from the
// caller's accept_overrun flag; a nil Confirmer declines.
type Confirmer func(warnings []string) bool

// TaskFilter is the conjunction of optional list filters. A non-empty Role
// excludes unassigned tasks.
type TaskFilter struct {
	Role      model.PersonRole
	PersonID  *uuid.UUID
	ClientID  *uuid.UUID
	ProjectID *uuid.UUID
}

// SaveOutcome reports what a save did. Exactly one of Task and Conflict is
// set: a non-nil Conflict means the save is suspended awaiting a push
// decision and nothing was committed.
type SaveOutcome struct {
	Task     *model.Task
	Derived  *model.Task
	Conflict *Conflict
	Created  bool
}

// PushOutcome reports a conflict resolution. Aborted means the caller
// declined the deadline warnings: nothing was committed and the pending
// conflict was dropped.
type PushOutcome struct {
	Shifted  []model.Task
	Warnings []string
	Aborted  bool
	Saved    *SaveOutcome
}

// Planner orchestrates the task lifecycle over the store: validation,
// conflict suspension, push resolution, follow-on derivation and
// notification side effects. It holds at most one pending conflict; the
// suspended save stays pending until resolved or cancelled, with no
// timeout.
type Planner struct {
	mu      sync.Mutex
	store   *store.Store
	clock   Clock
	pending *Conflict
}

func NewPlanner(s *store.Store, clock Clock) *Planner {
	if clock == nil {
		clock = SystemClock
	}
	return &Planner{store: s, clock: clock}
}

// SaveTask runs the full save lifecycle: resolve create/update, validate,
// detect conflicts unless forced, commit, emit the assignment notification,
// and derive the follow-on editing task for a filming task going done.
func (p *Planner) SaveTask(ctx context.Context, task model.Task, force bool) (*SaveOutcome, error) {
	created := task.ID == uuid.Nil
	var original *model.Task
	if created {
		task.ID = uuid.New()
	} else {
		if orig, ok := p.store.TaskByID(task.ID); ok {
			original = &orig
		} else if force {
			// Forced finalization of a save whose creation was suspended
			// by a conflict: the id was assigned before suspension.
			created = true
		} else {
			return nil, ErrTaskNotFound
		}
	}

	if err := ValidateTask(task, p.store.PersonByID); err != nil {
		return nil, err
	}

	if !force && task.Type == model.TypeEditing && task.PersonID != nil {
		if conflicting := FindConflict(task, p.store.Tasks()); conflicting != nil {
			// Suspend only when the person resolves; a dangling assignee
			// cannot be asked about and the save proceeds.
			if person, ok := p.store.PersonByID(*task.PersonID); ok {
				conflict := &Conflict{TaskToSave: task, ConflictingTask: *conflicting, Person: person}
				p.mu.Lock()
				p.pending = conflict
				p.mu.Unlock()
				return &SaveOutcome{Conflict: conflict, Created: created}, nil
			}
		}
	}

	upserts := []model.Task{task}

	var notifications []model.Notification
	assigneeChanged := created || (original != nil && !samePerson(original.PersonID, task.PersonID))
	if task.PersonID != nil && assigneeChanged {
		if assignee, ok := p.store.PersonByID(*task.PersonID); ok {
			notifications = append(notifications, AssignmentNotification(task, assignee, p.clock))
		}
	}

	derived := DeriveEditingTask(task, original, p.store.Tasks())
	if derived != nil {
		upserts = append(upserts, *derived)
	}

	if err := p.store.ApplyTasks(ctx, upserts, nil); err != nil {
		return nil, err
	}
	p.store.PushNotifications(notifications)

	return &SaveOutcome{Task: &task, Derived: derived, Created: created}, nil
}

// DeleteTask removes a task unconditionally. Deleting an unknown id is a
// no-op, mirroring filter-by-id semantics.
func (p *Planner) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return p.store.DeleteTask(ctx, id)
}

// PendingConflict exposes the suspended save, if any.
func (p *Planner) PendingConflict() *Conflict {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending == nil {
		return nil
	}
	c := *p.pending
	return &c
}

// ResolveConflict finishes a suspended save by pushing the person's
// schedule daysToPush days forward and then force-saving the suspended
// task. Deadline-overrun warnings are put to the confirmer first; a decline
// aborts the whole push with nothing committed and the pending state
// dropped. Commits are all-or-nothing.
func (p *Planner) ResolveConflict(ctx context.Context, daysToPush int, confirm Confirmer) (*PushOutcome, error) {
	p.mu.Lock()
	pending := p.pending
	p.mu.Unlock()
	if pending == nil {
		return nil, ErrNoPendingConflict
	}
	if daysToPush <= 0 {
		return nil, validationf("days to push must be a positive number")
	}

	shifted, warnings := ComputePush(*pending, p.store.Tasks(), p.store.Projects(), daysToPush)

	if len(warnings) > 0 && (confirm == nil || !confirm(warnings)) {
		p.clearPending(pending)
		return &PushOutcome{Warnings: warnings, Aborted: true}, nil
	}

	if err := p.store.ApplyTasks(ctx, shifted, nil); err != nil {
		return nil, err
	}
	p.clearPending(pending)

	saved, err := p.SaveTask(ctx, pending.TaskToSave, true)
	if err != nil {
		return nil, err
	}
	return &PushOutcome{Shifted: shifted, Warnings: warnings, Saved: saved}, nil
}

// CancelConflict drops the pending conflict with no side effects; the
// suspended save is discarded.
func (p *Planner) CancelConflict() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending == nil {
		return ErrNoPendingConflict
	}
	p.pending = nil
	return nil
}

func (p *Planner) clearPending(resolved *Conflict) {
	p.mu.Lock()
	if p.pending == resolved {
		p.pending = nil
	}
	p.mu.Unlock()
}

// ComposeProduction expands a production request into its phase tasks,
// appends them in one commit and emits an assignment notification for each
// assigned one.
func (p *Planner) ComposeProduction(ctx context.Context, spec ProductionSpec) ([]model.Task, error) {
	tasks, err := ComposeProduction(spec, p.store.PersonByID)
	if err != nil {
		return nil, err
	}
	if err := p.store.ApplyTasks(ctx, tasks, nil); err != nil {
		return nil, err
	}
	var notifications []model.Notification
	for _, task := range tasks {
		if task.PersonID == nil {
			continue
		}
		if assignee, ok := p.store.PersonByID(*task.PersonID); ok {
			notifications = append(notifications, AssignmentNotification(task, assignee, p.clock))
		}
	}
	p.store.PushNotifications(notifications)
	return tasks, nil
}

// ListTasks returns the tasks matching every provided filter field.
func (p *Planner) ListTasks(filter TaskFilter) []model.Task {
	tasks := p.store.Tasks()
	var out []model.Task
	for _, task := range tasks {
		if filter.PersonID != nil && (task.PersonID == nil || *task.PersonID != *filter.PersonID) {
			continue
		}
		if filter.ProjectID != nil && task.ProjectID != *filter.ProjectID {
			continue
		}
		if filter.ClientID != nil {
			project, ok := p.store.ProjectByID(task.ProjectID)
			if !ok || project.ClientID != *filter.ClientID {
				continue
			}
		}
		if filter.Role != "" {
			if task.PersonID == nil {
				continue
			}
			person, ok := p.store.PersonByID(*task.PersonID)
			if !ok || person.Role != filter.Role {
				continue
			}
		}
		out = append(out, task)
	}
	return out
}

// RefreshNotifications runs the reminder scan, merges the results into the
// feed and returns the feed.
func (p *Planner) RefreshNotifications() []model.Notification {
	generated := GenerateReminders(p.store.Tasks(), p.store.Projects(), p.store.Clients(), p.clock)
	p.store.PushNotifications(generated)
	return p.store.Notifications()
}

// MarkAllNotificationsRead flips the read flag on the whole feed.
func (p *Planner) MarkAllNotificationsRead() {
	p.store.MarkAllNotificationsRead()
}

func samePerson(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
