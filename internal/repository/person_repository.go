package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"prodcal/internal/model"
)

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Upsert inserts or replaces a person by id
func (r *PersonRepository) Upsert(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(person).Error
}

// GetByID retrieves a person by its ID
func (r *PersonRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Person, error) {
	var person model.Person
	err := r.db.WithContext(ctx).First(&person, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPersonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// GetAll retrieves every person
func (r *PersonRepository) GetAll(ctx context.Context) ([]model.Person, error) {
	var people []model.Person
	result := r.db.WithContext(ctx).Order("created_at").Find(&people)
	if result.Error != nil {
		return nil, result.Error
	}
	return people, nil
}

// Delete removes a person by its ID. Task references are not touched here;
// reference cleanup is the store's policy decision.
func (r *PersonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Person{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPersonNotFound
	}
	return nil
}
