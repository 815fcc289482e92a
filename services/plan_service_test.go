package services

import (
	"testing"

	"healthtrack/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usePlanMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock := newMockDB(t)
	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
	return mock
}

func TestDeletePlanClearsActivePointer(t *testing.T) {
	mock := usePlanMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "plans"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(5, 9))
	mock.ExpectExec(`UPDATE "plans" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// the owner's pointer must be nulled in the same transaction
	mock.ExpectExec(`UPDATE "users" SET "active_plan_id"`).
		WithArgs(nil, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, DeletePlan(9, 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePlanMissingRollsBack(t *testing.T) {
	mock := usePlanMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "plans"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))
	mock.ExpectRollback()

	assert.ErrorIs(t, DeletePlan(9, 5), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
