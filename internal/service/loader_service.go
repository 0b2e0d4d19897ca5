package service

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"social-network/internal/importer"
	"social-network/internal/model"
)

type userBulkInserter interface {
	CreateMany(ctx context.Context, users []model.User, batchSize int) error
}

type statusBulkInserter interface {
	CreateMany(ctx context.Context, statuses []model.Status, batchSize int) error
}

// Loader imports CSV exports. Each file is inserted in a single transaction.
type Loader struct {
	users     userBulkInserter
	statuses  statusBulkInserter
	batchSize int
	log       *zap.Logger
}

func NewLoader(users userBulkInserter, statuses statusBulkInserter, batchSize int, log *zap.Logger) *Loader {
	if batchSize <= 0 {
		batchSize = 100
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{users: users, statuses: statuses, batchSize: batchSize, log: log.Named("loader")}
}

// LoadUsers reports whether every row of the users file at path was stored.
func (l *Loader) LoadUsers(ctx context.Context, path string) bool {
	users, err := readFile(path, importer.ReadUsers)
	if err != nil {
		l.log.Error("load users failed", zap.String("path", path), zap.Error(err))
		return false
	}
	if err := l.users.CreateMany(ctx, users, l.batchSize); err != nil {
		l.log.Error("load users failed", zap.String("path", path), zap.Error(err))
		return false
	}
	l.log.Info("users loaded", zap.String("path", path), zap.Int("rows", len(users)))
	return true
}

// LoadStatusUpdates reports whether every row of the status-updates file at path was stored.
// One row referencing an unknown user keeps the whole file out.
func (l *Loader) LoadStatusUpdates(ctx context.Context, path string) bool {
	statuses, err := readFile(path, importer.ReadStatuses)
	if err != nil {
		l.log.Error("load status updates failed", zap.String("path", path), zap.Error(err))
		return false
	}
	if err := l.statuses.CreateMany(ctx, statuses, l.batchSize); err != nil {
		l.log.Error("load status updates failed", zap.String("path", path), zap.Error(err))
		return false
	}
	l.log.Info("status updates loaded", zap.String("path", path), zap.Int("rows", len(statuses)))
	return true
}

func readFile[T any](path string, decode func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()
	return decode(f)
}
