package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"social-network/internal/model"
	"social-network/internal/repository"
)

// InitUserCollection builds a user collection over an open database.
func InitUserCollection(db *gorm.DB, log *zap.Logger) *UserCollection {
	return NewUserCollection(repository.NewUserRepository(db), log)
}

// InitStatusCollection builds a status collection over an open database.
func InitStatusCollection(db *gorm.DB, log *zap.Logger) *StatusCollection {
	return NewStatusCollection(repository.NewStatusRepository(db), log)
}

func AddUser(ctx context.Context, userID, email, name, lastName string, users UserStore) bool {
	return users.AddUser(ctx, userID, email, name, lastName)
}

func UpdateUser(ctx context.Context, userID, email, name, lastName string, users UserStore) bool {
	return users.ModifyUser(ctx, userID, email, name, lastName)
}

func DeleteUser(ctx context.Context, userID string, users UserStore) bool {
	return users.DeleteUser(ctx, userID)
}

// SearchUser returns nil when the user does not exist.
func SearchUser(ctx context.Context, userID string, users UserStore) *model.User {
	return users.SearchUser(ctx, userID)
}

// AddStatus takes the owner first; the collection is keyed by status id.
func AddStatus(ctx context.Context, userID, statusID, text string, statuses StatusStore) bool {
	return statuses.AddStatus(ctx, statusID, userID, text)
}

func UpdateStatus(ctx context.Context, statusID, userID, text string, statuses StatusStore) bool {
	return statuses.ModifyStatus(ctx, statusID, userID, text)
}

func DeleteStatus(ctx context.Context, statusID string, statuses StatusStore) bool {
	return statuses.DeleteStatus(ctx, statusID)
}

// SearchStatus returns nil when the status does not exist.
func SearchStatus(ctx context.Context, statusID string, statuses StatusStore) *model.Status {
	return statuses.SearchStatus(ctx, statusID)
}
