package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"prodcal/internal/model"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Upsert inserts or replaces a project by id
func (r *ProjectRepository) Upsert(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(project).Error
}

// GetByID retrieves a project by its ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAll retrieves every project
func (r *ProjectRepository) GetAll(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	result := r.db.WithContext(ctx).Order("created_at").Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

// GetByClientID retrieves all projects owned by a client
func (r *ProjectRepository) GetByClientID(ctx context.Context, clientID uuid.UUID) ([]model.Project, error) {
	var projects []model.Project
	result := r.db.WithContext(ctx).Where("client_id = ?", clientID).Order("created_at").Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

// DeleteBatch removes a set of projects in one statement
func (r *ProjectRepository) DeleteBatch(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&model.Project{}, "id IN ?", ids).Error
}
