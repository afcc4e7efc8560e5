package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	return New(db), mock
}

var (
	deleteItemsSQL = regexp.QuoteMeta(`DELETE FROM "todo_items" WHERE todo_list_id = $1`)
	deleteListSQL  = regexp.QuoteMeta(`DELETE FROM "todo_lists" WHERE "todo_lists"."id" = $1`)
)

func TestDeleteListCommitsBothDeletes(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(deleteItemsSQL).WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(deleteListSQL).WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.DeleteList(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteListRollsBackWhenItemsFail(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(deleteItemsSQL).WithArgs(7).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := s.DeleteList(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteListRollsBackWhenListMissing(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(deleteItemsSQL).WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(deleteListSQL).WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := s.DeleteList(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
