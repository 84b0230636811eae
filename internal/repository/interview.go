package repository

import (
	"context"
	"fmt"

	"wagehire/internal/model"

	"gorm.io/gorm"
)

// InterviewRepository defines interview persistence operations.
type InterviewRepository interface {
	Create(ctx context.Context, iv *model.Interview) error
	FindByID(ctx context.Context, id string) (*model.Interview, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Interview, error)
	ListAll(ctx context.Context) ([]model.Interview, error)
	Update(ctx context.Context, iv *model.Interview) error
	Delete(ctx context.Context, id string) error
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(ctx context.Context, iv *model.Interview) error {
	if err := r.db.WithContext(ctx).Create(iv).Error; err != nil {
		return fmt.Errorf("create interview: %w", err)
	}
	return nil
}

func (r *interviewRepository) FindByID(ctx context.Context, id string) (*model.Interview, error) {
	var iv model.Interview
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&iv).Error
	if err != nil {
		return nil, fmt.Errorf("find interview %s: %w", id, err)
	}
	return &iv, nil
}

func (r *interviewRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Interview, error) {
	var ivs []model.Interview
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("scheduled_date IS NULL, scheduled_date").
		Find(&ivs).Error
	if err != nil {
		return nil, fmt.Errorf("list interviews for %s: %w", ownerID, err)
	}
	return ivs, nil
}

func (r *interviewRepository) ListAll(ctx context.Context) ([]model.Interview, error) {
	var ivs []model.Interview
	err := r.db.WithContext(ctx).
		Order("scheduled_date IS NULL, scheduled_date").
		Find(&ivs).Error
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	return ivs, nil
}

func (r *interviewRepository) Update(ctx context.Context, iv *model.Interview) error {
	if err := r.db.WithContext(ctx).Save(iv).Error; err != nil {
		return fmt.Errorf("update interview %s: %w", iv.ID, err)
	}
	return nil
}

func (r *interviewRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Interview{}).Error
	if err != nil {
		return fmt.Errorf("delete interview %s: %w", id, err)
	}
	return nil
}
