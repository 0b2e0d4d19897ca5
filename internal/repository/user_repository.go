package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"social-network/internal/model"
)

// UserRepository handles CRUD for users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// CreateMany inserts all users in one transaction. Nothing is kept if any row fails.
func (r *UserRepository) CreateMany(ctx context.Context, users []model.User, batchSize int) error {
	if len(users) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&users, batchSize).Error
	})
	if err != nil {
		return fmt.Errorf("create users: %w", err)
	}
	return nil
}

// Update replaces the mutable profile fields of an existing user.
func (r *UserRepository) Update(ctx context.Context, userID, email, name, lastName string) error {
	updates := map[string]interface{}{
		"user_email":     email,
		"user_name":      name,
		"user_last_name": lastName,
	}
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userID).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update user %q: %w", userID, ErrNotFound)
	}
	return nil
}

// Delete removes a user. Their statuses go with them through the ON DELETE CASCADE constraint.
func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.User{})
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete user %q: %w", userID, ErrNotFound)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("find user %q: %w", userID, ErrNotFound)
	default:
		return nil, fmt.Errorf("find user: %w", err)
	}
}

func (r *UserRepository) ListAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("user_id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
