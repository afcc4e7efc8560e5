package models

import (
	"strings"
	"time"
)

// TodoItem represents a single entry of a TodoList
type TodoItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Content    string    `gorm:"size:255" json:"content"`
	Completed  bool      `json:"completed"`
	TodoListID uint      `gorm:"not null;index" json:"todo_list_id"`
	TodoList   *TodoList `gorm:"foreignKey:TodoListID" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (i *TodoItem) Validate() error {
	if strings.TrimSpace(i.Content) == "" {
		return &ValidationError{Field: "content", Rule: RuleBlank}
	}
	return nil
}
