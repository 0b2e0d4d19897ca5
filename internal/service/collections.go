package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"social-network/internal/model"
	"social-network/internal/repository"
)

// UserStore is the capability set the command façade needs from a user collection.
type UserStore interface {
	AddUser(ctx context.Context, userID, email, name, lastName string) bool
	ModifyUser(ctx context.Context, userID, email, name, lastName string) bool
	DeleteUser(ctx context.Context, userID string) bool
	SearchUser(ctx context.Context, userID string) *model.User
}

// StatusStore is the capability set the command façade needs from a status collection.
type StatusStore interface {
	AddStatus(ctx context.Context, statusID, userID, text string) bool
	ModifyStatus(ctx context.Context, statusID, userID, text string) bool
	DeleteStatus(ctx context.Context, statusID string) bool
	SearchStatus(ctx context.Context, statusID string) *model.Status
}

// UserCollection reports the outcome of each user operation as a plain success flag.
// Failures are logged and never returned.
type UserCollection struct {
	repo *repository.UserRepository
	log  *zap.Logger
}

func NewUserCollection(repo *repository.UserRepository, log *zap.Logger) *UserCollection {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserCollection{repo: repo, log: log.Named("users")}
}

func (c *UserCollection) AddUser(ctx context.Context, userID, email, name, lastName string) bool {
	user := model.User{UserID: userID, Email: email, Name: name, LastName: lastName}
	if err := c.repo.Create(ctx, &user); err != nil {
		logFailure(c.log, "add user", err, zap.String("user_id", userID))
		return false
	}
	return true
}

func (c *UserCollection) ModifyUser(ctx context.Context, userID, email, name, lastName string) bool {
	if err := c.repo.Update(ctx, userID, email, name, lastName); err != nil {
		logFailure(c.log, "modify user", err, zap.String("user_id", userID))
		return false
	}
	return true
}

func (c *UserCollection) DeleteUser(ctx context.Context, userID string) bool {
	if err := c.repo.Delete(ctx, userID); err != nil {
		logFailure(c.log, "delete user", err, zap.String("user_id", userID))
		return false
	}
	return true
}

// SearchUser returns nil when the user does not exist.
func (c *UserCollection) SearchUser(ctx context.Context, userID string) *model.User {
	user, err := c.repo.FindByID(ctx, userID)
	if err != nil {
		logFailure(c.log, "search user", err, zap.String("user_id", userID))
		return nil
	}
	return user
}

// ListUsers returns every user ordered by id, or nil if the query fails.
func (c *UserCollection) ListUsers(ctx context.Context) []model.User {
	users, err := c.repo.ListAll(ctx)
	if err != nil {
		logFailure(c.log, "list users", err)
		return nil
	}
	return users
}

// StatusCollection is the status counterpart of UserCollection.
type StatusCollection struct {
	repo *repository.StatusRepository
	log  *zap.Logger
}

func NewStatusCollection(repo *repository.StatusRepository, log *zap.Logger) *StatusCollection {
	if log == nil {
		log = zap.NewNop()
	}
	return &StatusCollection{repo: repo, log: log.Named("statuses")}
}

// AddStatus fails when the id is taken or userID does not name an existing user.
func (c *StatusCollection) AddStatus(ctx context.Context, statusID, userID, text string) bool {
	status := model.Status{StatusID: statusID, UserID: userID, Text: text}
	if err := c.repo.Create(ctx, &status); err != nil {
		logFailure(c.log, "add status", err, zap.String("status_id", statusID), zap.String("user_id", userID))
		return false
	}
	return true
}

func (c *StatusCollection) ModifyStatus(ctx context.Context, statusID, userID, text string) bool {
	if err := c.repo.Update(ctx, statusID, userID, text); err != nil {
		logFailure(c.log, "modify status", err, zap.String("status_id", statusID), zap.String("user_id", userID))
		return false
	}
	return true
}

func (c *StatusCollection) DeleteStatus(ctx context.Context, statusID string) bool {
	if err := c.repo.Delete(ctx, statusID); err != nil {
		logFailure(c.log, "delete status", err, zap.String("status_id", statusID))
		return false
	}
	return true
}

func (c *StatusCollection) SearchStatus(ctx context.Context, statusID string) *model.Status {
	status, err := c.repo.FindByID(ctx, statusID)
	if err != nil {
		logFailure(c.log, "search status", err, zap.String("status_id", statusID))
		return nil
	}
	return status
}

func (c *StatusCollection) ListStatuses(ctx context.Context, userID string) []model.Status {
	statuses, err := c.repo.ListByUser(ctx, userID)
	if err != nil {
		logFailure(c.log, "list statuses", err, zap.String("user_id", userID))
		return nil
	}
	return statuses
}

// logFailure keeps expected misses quiet and surfaces everything else.
func logFailure(log *zap.Logger, op string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if errors.Is(err, repository.ErrNotFound) {
		log.Debug(op+": not found", fields...)
		return
	}
	log.Warn(op+" failed", fields...)
}
