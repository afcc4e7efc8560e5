package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrewpaige1/todolists/models"
)

// ListChanges holds the fields of a list that an update may set. Nil fields
// are left alone.
type ListChanges struct {
	Title *string
}

// CreateList validates and stores a new, empty list.
func (s *Store) CreateList(ctx context.Context, title string) (*models.TodoList, error) {
	list := &models.TodoList{Title: title}
	if err := list.Validate(); err != nil {
		return nil, err
	}

	err := s.tx(ctx, func(tx *gorm.DB) error {
		return tx.Create(list).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create todo list: %w", err)
	}

	list.Items = []models.TodoItem{}
	s.log.Debug("CreateList: created", "list_id", list.ID)
	return list, nil
}

// GetList loads a list together with its items in id order.
func (s *Store) GetList(ctx context.Context, id uint) (*models.TodoList, error) {
	var list models.TodoList
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&list, id).Error
	if err != nil {
		return nil, notFound(err, "todo list", id)
	}
	if list.Items == nil {
		list.Items = []models.TodoItem{}
	}
	return &list, nil
}

// ListLists returns every list without its items, oldest first.
func (s *Store) ListLists(ctx context.Context) ([]models.TodoList, error) {
	lists := []models.TodoList{}
	if err := s.db.WithContext(ctx).Order("id").Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("failed to list todo lists: %w", err)
	}
	return lists, nil
}

// UpdateList applies changes and re-validates the title. Nothing is written
// when validation fails.
func (s *Store) UpdateList(ctx context.Context, id uint, changes ListChanges) (*models.TodoList, error) {
	var list models.TodoList
	err := s.tx(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&list, id).Error; err != nil {
			return notFound(err, "todo list", id)
		}

		if changes.Title != nil {
			list.Title = *changes.Title
		}
		if err := list.Validate(); err != nil {
			return err
		}

		if err := tx.Save(&list).Error; err != nil {
			return fmt.Errorf("failed to update todo list %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// DeleteList removes a list and every item it owns in one transaction.
func (s *Store) DeleteList(ctx context.Context, id uint) error {
	var removed int64
	err := s.tx(ctx, func(tx *gorm.DB) error {
		items := tx.Where("todo_list_id = ?", id).Delete(&models.TodoItem{})
		if items.Error != nil {
			return fmt.Errorf("failed to delete items of todo list %d: %w", id, items.Error)
		}
		removed = items.RowsAffected

		result := tx.Delete(&models.TodoList{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete todo list %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("todo list %d: %w", id, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("DeleteList: deleted", "list_id", id, "items", removed)
	return nil
}
