package migrations

import (
	"fmt"
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// TableName is where applied migration ids are recorded.
const TableName = "schema_migrations"

// Tables are snapshotted per migration so later model changes never
// rewrite history.

type todoList20200709 struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (todoList20200709) TableName() string { return "todo_lists" }

type todoItem20200709 struct {
	ID         uint   `gorm:"primaryKey"`
	Content    string `gorm:"size:255"`
	Completed  bool
	TodoListID uint             `gorm:"not null;index"`
	TodoList   todoList20200709 `gorm:"foreignKey:TodoListID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (todoItem20200709) TableName() string { return "todo_items" }

// All returns every migration in the order it must be applied.
func All() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "20200709135700_create_todo_lists",
			Migrate: func(tx *gorm.DB) error {
				return tx.Migrator().CreateTable(&todoList20200709{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("todo_lists")
			},
		},
		{
			ID: "20200709135728_create_todo_items",
			Migrate: func(tx *gorm.DB) error {
				return tx.Migrator().CreateTable(&todoItem20200709{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("todo_items")
			},
		},
	}
}

func newMigrator(db *gorm.DB) *gormigrate.Gormigrate {
	opts := *gormigrate.DefaultOptions
	opts.TableName = TableName
	opts.UseTransaction = true
	return gormigrate.New(db, &opts, All())
}

// Up applies every pending migration.
func Up(db *gorm.DB) error {
	if err := newMigrator(db).Migrate(); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Down rolls back the most recently applied migration.
func Down(db *gorm.DB) error {
	if err := newMigrator(db).RollbackLast(); err != nil {
		return fmt.Errorf("failed to roll back: %w", err)
	}
	return nil
}

// Status reports whether a migration has been applied.
type Status struct {
	ID      string
	Applied bool
}

// List returns the status of every known migration.
func List(db *gorm.DB) ([]Status, error) {
	applied := map[string]bool{}
	if db.Migrator().HasTable(TableName) {
		var ids []string
		if err := db.Table(TableName).Pluck("id", &ids).Error; err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", TableName, err)
		}
		for _, id := range ids {
			applied[id] = true
		}
	}

	var statuses []Status
	for _, m := range All() {
		statuses = append(statuses, Status{ID: m.ID, Applied: applied[m.ID]})
	}
	return statuses, nil
}
