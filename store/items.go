package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrewpaige1/todolists/models"
)

// NewItem describes an item to create. A nil Completed means false.
type NewItem struct {
	Content   string
	Completed *bool
}

// ItemChanges holds the fields of an item that an update may set.
type ItemChanges struct {
	Content    *string
	Completed  *bool
	TodoListID *uint
}

// ItemFilter narrows ListItems.
type ItemFilter struct {
	Completed *bool
}

// CreateItem stores a new item in list listID. Content is checked before the
// list reference, so blank content is always a validation error.
func (s *Store) CreateItem(ctx context.Context, listID uint, in NewItem) (*models.TodoItem, error) {
	item := &models.TodoItem{
		Content:    in.Content,
		TodoListID: listID,
	}
	if in.Completed != nil {
		item.Completed = *in.Completed
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	err := s.tx(ctx, func(tx *gorm.DB) error {
		ok, err := listExists(tx, listID)
		if err != nil {
			return err
		}
		if !ok {
			return &models.ReferenceError{Field: "todo_list_id", ID: listID}
		}

		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("failed to create todo item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("CreateItem: created", "item_id", item.ID, "list_id", listID)
	return item, nil
}

func (s *Store) GetItem(ctx context.Context, id uint) (*models.TodoItem, error) {
	var item models.TodoItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, notFound(err, "todo item", id)
	}
	return &item, nil
}

// ListItems returns the items of one list in id order.
func (s *Store) ListItems(ctx context.Context, listID uint, filter ItemFilter) ([]models.TodoItem, error) {
	items := []models.TodoItem{}
	err := s.tx(ctx, func(tx *gorm.DB) error {
		ok, err := listExists(tx, listID)
		if err != nil {
			return err
		}
		if !ok {
			return &models.ReferenceError{Field: "todo_list_id", ID: listID}
		}

		query := tx.Where("todo_list_id = ?", listID)
		if filter.Completed != nil {
			query = query.Where("completed = ?", *filter.Completed)
		}
		if err := query.Order("id").Find(&items).Error; err != nil {
			return fmt.Errorf("failed to list items of todo list %d: %w", listID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateItem applies changes, re-validates content and, when the item moves,
// checks the target list exists.
func (s *Store) UpdateItem(ctx context.Context, id uint, changes ItemChanges) (*models.TodoItem, error) {
	var item models.TodoItem
	err := s.tx(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			return notFound(err, "todo item", id)
		}

		if changes.Content != nil {
			item.Content = *changes.Content
		}
		if changes.Completed != nil {
			item.Completed = *changes.Completed
		}
		if err := item.Validate(); err != nil {
			return err
		}

		if changes.TodoListID != nil && *changes.TodoListID != item.TodoListID {
			ok, err := listExists(tx, *changes.TodoListID)
			if err != nil {
				return err
			}
			if !ok {
				return &models.ReferenceError{Field: "todo_list_id", ID: *changes.TodoListID}
			}
			item.TodoListID = *changes.TodoListID
		}

		if err := tx.Save(&item).Error; err != nil {
			return fmt.Errorf("failed to update todo item %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes a single item. Its list and siblings are untouched.
func (s *Store) DeleteItem(ctx context.Context, id uint) error {
	return s.tx(ctx, func(tx *gorm.DB) error {
		result := tx.Delete(&models.TodoItem{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete todo item %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("todo item %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

// ClearCompleted deletes the completed items of one list and returns how
// many were removed.
func (s *Store) ClearCompleted(ctx context.Context, listID uint) (int64, error) {
	var removed int64
	err := s.tx(ctx, func(tx *gorm.DB) error {
		ok, err := listExists(tx, listID)
		if err != nil {
			return err
		}
		if !ok {
			return &models.ReferenceError{Field: "todo_list_id", ID: listID}
		}

		result := tx.Where("todo_list_id = ? AND completed = ?", listID, true).Delete(&models.TodoItem{})
		if result.Error != nil {
			return fmt.Errorf("failed to clear completed items of todo list %d: %w", listID, result.Error)
		}
		removed = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
