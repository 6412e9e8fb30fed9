package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"prodcal/internal/model"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Upsert inserts or replaces a client by id
func (r *ClientRepository) Upsert(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(client).Error
}

// GetByID retrieves a client by its ID
func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	var client model.Client
	err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// GetAll retrieves every client
func (r *ClientRepository) GetAll(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	result := r.db.WithContext(ctx).Order("created_at").Find(&clients)
	if result.Error != nil {
		return nil, result.Error
	}
	return clients, nil
}

// Delete removes a client by its ID. Project cascade is handled by the
// caller so it can apply the configured task policy in the same pass.
func (r *ClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Client{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}
