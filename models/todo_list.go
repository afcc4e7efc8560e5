package models

import (
	"strings"
	"time"
)

// TodoList represents a named collection of todo items
type TodoList struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255" json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Items are owned by the list and removed with it
	Items []TodoItem `gorm:"foreignKey:TodoListID" json:"todo_items"`
}

// Validate checks the presence of the title.
func (l *TodoList) Validate() error {
	if strings.TrimSpace(l.Title) == "" {
		return &ValidationError{Field: "title", Rule: RuleBlank}
	}
	return nil
}
