package migrations

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "migrations.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestUpCreatesTables(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Up(db))

	m := db.Migrator()
	assert.True(t, m.HasTable("todo_lists"))
	assert.True(t, m.HasTable("todo_items"))
	for _, column := range []string{"id", "content", "completed", "todo_list_id", "created_at", "updated_at"} {
		assert.True(t, m.HasColumn("todo_items", column), "missing column %s", column)
	}
	for _, column := range []string{"id", "title", "created_at", "updated_at"} {
		assert.True(t, m.HasColumn("todo_lists", column), "missing column %s", column)
	}

	// Idempotent
	require.NoError(t, Up(db))
}

func TestTodoItemsRequireExistingList(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Up(db))

	err := db.Exec(`INSERT INTO todo_items (content, todo_list_id, created_at, updated_at) VALUES ('Milk', 99, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`).Error
	assert.Error(t, err, "foreign key must reject a missing list")

	err = db.Exec(`INSERT INTO todo_items (content, created_at, updated_at) VALUES ('Milk', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`).Error
	assert.Error(t, err, "todo_list_id must be NOT NULL")
}

func TestContentAndCompletedAreNullable(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Up(db))

	require.NoError(t, db.Exec(`INSERT INTO todo_lists (title, created_at, updated_at) VALUES ('Groceries', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`).Error)
	err := db.Exec(`INSERT INTO todo_items (todo_list_id, created_at, updated_at) VALUES (1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`).Error
	assert.NoError(t, err)
}

func TestDownRollsBackLast(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Up(db))

	require.NoError(t, Down(db))
	assert.False(t, db.Migrator().HasTable("todo_items"))
	assert.True(t, db.Migrator().HasTable("todo_lists"))

	statuses, err := List(db)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, Status{ID: "20200709135700_create_todo_lists", Applied: true}, statuses[0])
	assert.Equal(t, Status{ID: "20200709135728_create_todo_items", Applied: false}, statuses[1])
}

func TestListBeforeAnyMigration(t *testing.T) {
	db := openTestDB(t)

	statuses, err := List(db)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	for _, s := range statuses {
		assert.False(t, s.Applied)
	}
}
