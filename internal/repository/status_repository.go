package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"social-network/internal/model"
)

// StatusRepository handles CRUD for status updates.
type StatusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

func (r *StatusRepository) Create(ctx context.Context, status *model.Status) error {
	if err := r.db.WithContext(ctx).Create(status).Error; err != nil {
		return fmt.Errorf("create status: %w", err)
	}
	return nil
}

// CreateMany inserts all statuses in one transaction. A row pointing at an unknown user rolls back the batch.
func (r *StatusRepository) CreateMany(ctx context.Context, statuses []model.Status, batchSize int) error {
	if len(statuses) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&statuses, batchSize).Error
	})
	if err != nil {
		return fmt.Errorf("create statuses: %w", err)
	}
	return nil
}

func (r *StatusRepository) Update(ctx context.Context, statusID, userID, text string) error {
	updates := map[string]interface{}{
		"user_id":     userID,
		"status_text": text,
	}
	res := r.db.WithContext(ctx).Model(&model.Status{}).Where("status_id = ?", statusID).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update status %q: %w", statusID, ErrNotFound)
	}
	return nil
}

func (r *StatusRepository) Delete(ctx context.Context, statusID string) error {
	res := r.db.WithContext(ctx).Where("status_id = ?", statusID).Delete(&model.Status{})
	if res.Error != nil {
		return fmt.Errorf("delete status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete status %q: %w", statusID, ErrNotFound)
	}
	return nil
}

func (r *StatusRepository) FindByID(ctx context.Context, statusID string) (*model.Status, error) {
	var status model.Status
	err := r.db.WithContext(ctx).Where("status_id = ?", statusID).First(&status).Error
	switch {
	case err == nil:
		return &status, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("find status %q: %w", statusID, ErrNotFound)
	default:
		return nil, fmt.Errorf("find status: %w", err)
	}
}

func (r *StatusRepository) ListByUser(ctx context.Context, userID string) ([]model.Status, error) {
	var statuses []model.Status
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("status_id ASC").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

type userStatusCount struct {
	UserID string
	Total  int64
}

// CountByUser returns the number of statuses per user id. Users without statuses are absent from the map.
func (r *StatusRepository) CountByUser(ctx context.Context) (map[string]int64, error) {
	var rows []userStatusCount
	if err := r.db.WithContext(ctx).Model(&model.Status{}).
		Select("user_id, COUNT(*) AS total").
		Group("user_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.UserID] = row.Total
	}
	return counts, nil
}
