package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prodcal/internal/model"
	"prodcal/internal/store"
)

// Persister adapts the per-entity repositories to the store's write-through
// interface. The store keeps the working set in memory; this mirrors its
// mutations into Postgres and reloads the world at startup.
type Persister struct {
	people   *PersonRepository
	clients  *ClientRepository
	projects *ProjectRepository
	tasks    *TaskRepository
}

var _ store.Persister = (*Persister)(nil)

func NewPersister(db *gorm.DB) *Persister {
	return &Persister{
		people:   NewPersonRepository(db),
		clients:  NewClientRepository(db),
		projects: NewProjectRepository(db),
		tasks:    NewTaskRepository(db),
	}
}

// Migrate creates or updates the schema for all persisted entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Person{}, &model.Client{}, &model.Project{}, &model.Task{})
}

func (p *Persister) Load(ctx context.Context) ([]model.Person, []model.Client, []model.Project, []model.Task, error) {
	people, err := p.people.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	clients, err := p.clients.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	projects, err := p.projects.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	tasks, err := p.tasks.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return people, clients, projects, tasks, nil
}

func (p *Persister) UpsertTasks(ctx context.Context, tasks []model.Task) error {
	return p.tasks.UpsertBatch(ctx, tasks)
}

func (p *Persister) DeleteTasks(ctx context.Context, ids []uuid.UUID) error {
	return p.tasks.DeleteBatch(ctx, ids)
}

func (p *Persister) UpsertPerson(ctx context.Context, person model.Person) error {
	return p.people.Upsert(ctx, &person)
}

func (p *Persister) DeletePerson(ctx context.Context, id uuid.UUID) error {
	return p.people.Delete(ctx, id)
}

func (p *Persister) UpsertClient(ctx context.Context, client model.Client) error {
	return p.clients.Upsert(ctx, &client)
}

func (p *Persister) DeleteClient(ctx context.Context, id uuid.UUID) error {
	return p.clients.Delete(ctx, id)
}

func (p *Persister) UpsertProject(ctx context.Context, project model.Project) error {
	return p.projects.Upsert(ctx, &project)
}

func (p *Persister) DeleteProjects(ctx context.Context, ids []uuid.UUID) error {
	return p.projects.DeleteBatch(ctx, ids)
}
