package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/andrewpaige1/todolists/logger"
	"github.com/andrewpaige1/todolists/models"
)

// ErrNotFound is returned when a list or item id does not exist.
var ErrNotFound = errors.New("record not found")

// Store runs todo list and item operations against a gorm connection.
// Every write happens inside its own transaction.
type Store struct {
	db  *gorm.DB
	log *slog.Logger
}

func New(db *gorm.DB) *Store {
	return &Store{db: db, log: logger.Module("store")}
}

// DB exposes the underlying connection for health checks.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) tx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}

func notFound(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("failed to load %s %d: %w", what, id, err)
}

// listExists reports whether a todo list with id is present, using tx so the
// answer holds for the rest of the transaction.
func listExists(tx *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := tx.Model(&models.TodoList{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to look up todo list %d: %w", id, err)
	}
	return count > 0, nil
}
