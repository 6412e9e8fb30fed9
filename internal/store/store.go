// Package store holds the canonical in-memory collections of people,
// clients, projects and tasks. Every mutation builds a fresh slice and swaps
// it in under the lock, so readers always observe a consistent snapshot and
// nothing is edited in place. An optional Persister mirrors mutations to
// durable storage; with a nil Persister the store runs purely in memory.
package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"prodcal/internal/model"
)

// PersonDeletePolicy controls what happens to tasks referencing a deleted
// person.
type PersonDeletePolicy string

const (
	// PersonDeleteKeep leaves task references dangling; lookups fall back
	// to "unassigned".
	PersonDeleteKeep PersonDeletePolicy = "keep"
	// PersonDeleteDetach clears PersonID on the person's tasks.
	PersonDeleteDetach PersonDeletePolicy = "detach"
)

// ClientDeletePolicy controls what happens to tasks of a deleted client's
// projects. Projects themselves are always cascade-deleted with the client.
type ClientDeletePolicy string

const (
	// ClientDeleteOrphan deletes the projects but leaves their tasks with
	// dangling project references.
	ClientDeleteOrphan ClientDeletePolicy = "orphan"
	// ClientDeleteCascade also deletes the tasks of the removed projects.
	ClientDeleteCascade ClientDeletePolicy = "cascade"
)

// Persister mirrors store mutations to durable storage. Implementations
// live in internal/repository; tests pass a mock or nil.
type Persister interface {
	Load(ctx context.Context) (people []model.Person, clients []model.Client, projects []model.Project, tasks []model.Task, err error)

	UpsertTasks(ctx context.Context, tasks []model.Task) error
	DeleteTasks(ctx context.Context, ids []uuid.UUID) error

	UpsertPerson(ctx context.Context, person model.Person) error
	DeletePerson(ctx context.Context, id uuid.UUID) error

	UpsertClient(ctx context.Context, client model.Client) error
	DeleteClient(ctx context.Context, id uuid.UUID) error

	UpsertProject(ctx context.Context, project model.Project) error
	DeleteProjects(ctx context.Context, ids []uuid.UUID) error
}

type Store struct {
	mu        sync.RWMutex
	persister Persister

	people        []model.Person
	clients       []model.Client
	projects      []model.Project
	tasks         []model.Task
	notifications []model.Notification
}

// New creates an empty store. persister may be nil for in-memory operation.
func New(persister Persister) *Store {
	return &Store{persister: persister}
}

// LoadInitial replaces the working set with the persisted one. No-op
// without a persister.
func (s *Store) LoadInitial(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	people, clients, projects, tasks, err := s.persister.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.people = people
	s.clients = clients
	s.projects = projects
	s.tasks = tasks
	return nil
}

// --- snapshot reads ---

func (s *Store) People() []model.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Person(nil), s.people...)
}

func (s *Store) Clients() []model.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Client(nil), s.clients...)
}

func (s *Store) Projects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Project(nil), s.projects...)
}

func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Task(nil), s.tasks...)
}

func (s *Store) Notifications() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Notification(nil), s.notifications...)
}

// --- lookups; the bool result is false on a dangling reference ---

func (s *Store) PersonByID(id uuid.UUID) (model.Person, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.people {
		if p.ID == id {
			return p, true
		}
	}
	return model.Person{}, false
}

func (s *Store) ClientByID(id uuid.UUID) (model.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return model.Client{}, false
}

func (s *Store) ProjectByID(id uuid.UUID) (model.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return model.Project{}, false
}

func (s *Store) TaskByID(id uuid.UUID) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (s *Store) ProjectsByClient(clientID uuid.UUID) []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Project
	for _, p := range s.projects {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out
}

// --- task mutations ---

// ApplyTasks commits a batch of task upserts and deletions as one snapshot
// swap. Persistence happens first; on error the in-memory state is left
// untouched, so a failed commit never tears the working set.
func (s *Store) ApplyTasks(ctx context.Context, upserts []model.Task, deletes []uuid.UUID) error {
	if s.persister != nil {
		if len(upserts) > 0 {
			if err := s.persister.UpsertTasks(ctx, upserts); err != nil {
				return err
			}
		}
		if len(deletes) > 0 {
			if err := s.persister.DeleteTasks(ctx, deletes); err != nil {
				return err
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := make(map[uuid.UUID]bool, len(deletes))
	for _, id := range deletes {
		deleted[id] = true
	}
	replaced := make(map[uuid.UUID]model.Task, len(upserts))
	for _, t := range upserts {
		replaced[t.ID] = t
	}

	next := make([]model.Task, 0, len(s.tasks)+len(upserts))
	for _, t := range s.tasks {
		if deleted[t.ID] {
			continue
		}
		if r, ok := replaced[t.ID]; ok {
			next = append(next, r)
			delete(replaced, t.ID)
			continue
		}
		next = append(next, t)
	}
	// Creates keep their submission order.
	for _, t := range upserts {
		if _, pending := replaced[t.ID]; pending && !deleted[t.ID] {
			next = append(next, t)
		}
	}
	s.tasks = next
	return nil
}

// UpsertTask commits a single task.
func (s *Store) UpsertTask(ctx context.Context, task model.Task) error {
	return s.ApplyTasks(ctx, []model.Task{task}, nil)
}

// DeleteTask removes a task by id. Unknown ids are a no-op.
func (s *Store) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return s.ApplyTasks(ctx, nil, []uuid.UUID{id})
}

// --- directory mutations ---

func (s *Store) UpsertPerson(ctx context.Context, person model.Person) error {
	if s.persister != nil {
		if err := s.persister.UpsertPerson(ctx, person); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.people = upsert(s.people, person, func(p model.Person) uuid.UUID { return p.ID }, person.ID)
	return nil
}

// DeletePerson removes a person. Under PersonDeleteDetach the person's tasks
// are unassigned in the same commit; under PersonDeleteKeep task references
// are left dangling (the original application's behavior).
func (s *Store) DeletePerson(ctx context.Context, id uuid.UUID, policy PersonDeletePolicy) error {
	var detached []model.Task
	if policy == PersonDeleteDetach {
		s.mu.RLock()
		for _, t := range s.tasks {
			if t.PersonID != nil && *t.PersonID == id {
				t.PersonID = nil
				detached = append(detached, t)
			}
		}
		s.mu.RUnlock()
	}

	if s.persister != nil {
		if err := s.persister.DeletePerson(ctx, id); err != nil {
			return err
		}
		if len(detached) > 0 {
			if err := s.persister.UpsertTasks(ctx, detached); err != nil {
				return err
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.people = remove(s.people, func(p model.Person) bool { return p.ID == id })
	if len(detached) > 0 {
		replaced := make(map[uuid.UUID]model.Task, len(detached))
		for _, t := range detached {
			replaced[t.ID] = t
		}
		next := make([]model.Task, 0, len(s.tasks))
		for _, t := range s.tasks {
			if r, ok := replaced[t.ID]; ok {
				next = append(next, r)
			} else {
				next = append(next, t)
			}
		}
		s.tasks = next
	}
	return nil
}

func (s *Store) UpsertClient(ctx context.Context, client model.Client) error {
	if s.persister != nil {
		if err := s.persister.UpsertClient(ctx, client); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = upsert(s.clients, client, func(c model.Client) uuid.UUID { return c.ID }, client.ID)
	return nil
}

// DeleteClient removes a client and cascades deletion to its projects.
// Under ClientDeleteCascade the projects' tasks go with them; under
// ClientDeleteOrphan the tasks stay with dangling project references.
func (s *Store) DeleteClient(ctx context.Context, id uuid.UUID, policy ClientDeletePolicy) error {
	s.mu.RLock()
	var projectIDs []uuid.UUID
	for _, p := range s.projects {
		if p.ClientID == id {
			projectIDs = append(projectIDs, p.ID)
		}
	}
	var taskIDs []uuid.UUID
	if policy == ClientDeleteCascade {
		owned := make(map[uuid.UUID]bool, len(projectIDs))
		for _, pid := range projectIDs {
			owned[pid] = true
		}
		for _, t := range s.tasks {
			if owned[t.ProjectID] {
				taskIDs = append(taskIDs, t.ID)
			}
		}
	}
	s.mu.RUnlock()

	if s.persister != nil {
		if len(taskIDs) > 0 {
			if err := s.persister.DeleteTasks(ctx, taskIDs); err != nil {
				return err
			}
		}
		if len(projectIDs) > 0 {
			if err := s.persister.DeleteProjects(ctx, projectIDs); err != nil {
				return err
			}
		}
		if err := s.persister.DeleteClient(ctx, id); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = remove(s.clients, func(c model.Client) bool { return c.ID == id })
	s.projects = remove(s.projects, func(p model.Project) bool { return p.ClientID == id })
	if len(taskIDs) > 0 {
		gone := make(map[uuid.UUID]bool, len(taskIDs))
		for _, tid := range taskIDs {
			gone[tid] = true
		}
		s.tasks = remove(s.tasks, func(t model.Task) bool { return gone[t.ID] })
	}
	return nil
}

func (s *Store) UpsertProject(ctx context.Context, project model.Project) error {
	if s.persister != nil {
		if err := s.persister.UpsertProject(ctx, project); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = upsert(s.projects, project, func(p model.Project) uuid.UUID { return p.ID }, project.ID)
	return nil
}

func (s *Store) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if s.persister != nil {
		if err := s.persister.DeleteProjects(ctx, []uuid.UUID{id}); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = remove(s.projects, func(p model.Project) bool { return p.ID == id })
	return nil
}

// --- notifications (ephemeral, never persisted) ---

// PushNotifications prepends entries whose id is not already present and
// trims the feed to the cap, newest first.
func (s *Store) PushNotifications(ns []model.Notification) {
	if len(ns) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing := make(map[string]bool, len(s.notifications))
	for _, n := range s.notifications {
		existing[n.ID] = true
	}
	var fresh []model.Notification
	for _, n := range ns {
		if !existing[n.ID] {
			fresh = append(fresh, n)
			existing[n.ID] = true
		}
	}
	merged := append(fresh, s.notifications...)
	if len(merged) > model.NotificationCap {
		merged = merged[:model.NotificationCap]
	}
	s.notifications = merged
}

func (s *Store) MarkAllNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]model.Notification, len(s.notifications))
	for i, n := range s.notifications {
		n.Read = true
		next[i] = n
	}
	s.notifications = next
}

// --- slice helpers ---

func upsert[T any](items []T, item T, key func(T) uuid.UUID, id uuid.UUID) []T {
	next := make([]T, 0, len(items)+1)
	replaced := false
	for _, existing := range items {
		if key(existing) == id {
			next = append(next, item)
			replaced = true
			continue
		}
		next = append(next, existing)
	}
	if !replaced {
		next = append(next, item)
	}
	return next
}

func remove[T any](items []T, drop func(T) bool) []T {
	next := make([]T, 0, len(items))
	for _, item := range items {
		if !drop(item) {
			next = append(next, item)
		}
	}
	return next
}
