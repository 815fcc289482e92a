package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"healthtrack/config"
	"healthtrack/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func useMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	prev := config.DB
	config.DB = db
	services.InitUsage(db)
	t.Cleanup(func() {
		config.DB = prev
		services.InitUsage(prev)
	})
	return mock
}

func followActionContext(t *testing.T, w *httptest.ResponseRecorder, action string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/follow-requests/tok/"+action, nil)
	c.Params = gin.Params{{Key: "token", Value: "tok"}}
	c.Set("userID", uint(7))
	c.Set("email", "target@example.com")
	return c
}

func expectPendingRequestLookup(mock sqlmock.Sqlmock, status string) {
	mock.ExpectQuery(`SELECT \* FROM "follow_requests"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "token", "requester_id", "target_email", "target_id", "status", "expires_at"}).
			AddRow(3, "tok", 1, "target@example.com", nil, status, time.Now().Add(time.Hour)))
}

func TestAcceptFollowRequestEmitsUsageEvent(t *testing.T) {
	mock := useMockDB(t)

	mock.ExpectBegin()
	expectPendingRequestLookup(mock, "PENDING")
	mock.ExpectExec(`UPDATE "follow_requests"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "follows"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "follows"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()
	// metering happens after the transaction commits
	mock.ExpectQuery(`INSERT INTO "usage_events"`).
		WithArgs(sqlmock.AnyArg(), "follow_request.accepted", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	w := httptest.NewRecorder()
	AcceptFollowRequest(followActionContext(t, w, "accept"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectFollowRequestEmitsUsageEvent(t *testing.T) {
	mock := useMockDB(t)

	mock.ExpectBegin()
	expectPendingRequestLookup(mock, "PENDING")
	mock.ExpectExec(`UPDATE "follow_requests"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`INSERT INTO "usage_events"`).
		WithArgs(sqlmock.AnyArg(), "follow_request.rejected", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	w := httptest.NewRecorder()
	RejectFollowRequest(followActionContext(t, w, "reject"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptFollowRequestAlreadyProcessedEmitsNothing(t *testing.T) {
	mock := useMockDB(t)

	mock.ExpectBegin()
	expectPendingRequestLookup(mock, "ACCEPTED")
	mock.ExpectRollback()

	w := httptest.NewRecorder()
	AcceptFollowRequest(followActionContext(t, w, "accept"))

	assert.Equal(t, http.StatusGone, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
