package services

import (
	"testing"
	"time"

	"healthtrack/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckActionable(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	target := uint(7)

	pending := func() *models.FollowRequest {
		return &models.FollowRequest{
			RequesterID: 1,
			TargetEmail: "target@example.com",
			Status:      models.FollowPending,
			ExpiresAt:   now.Add(24 * time.Hour),
		}
	}

	t.Run("ok for addressed email", func(t *testing.T) {
		assert.NoError(t, checkActionable(pending(), target, "target@example.com", now))
	})

	t.Run("email match is case-insensitive", func(t *testing.T) {
		assert.NoError(t, checkActionable(pending(), target, "Target@Example.COM", now))
	})

	t.Run("wrong email", func(t *testing.T) {
		err := checkActionable(pending(), target, "other@example.com", now)
		assert.ErrorIs(t, err, ErrWrongTarget)
	})

	t.Run("resolved target id wins over email", func(t *testing.T) {
		req := pending()
		req.TargetID = &target
		assert.NoError(t, checkActionable(req, target, "whatever@example.com", now))
		assert.ErrorIs(t, checkActionable(req, 99, "target@example.com", now), ErrWrongTarget)
	})

	t.Run("already accepted", func(t *testing.T) {
		req := pending()
		req.Status = models.FollowAccepted
		assert.ErrorIs(t, checkActionable(req, target, "target@example.com", now), ErrAlreadyProcessed)
	})

	t.Run("already rejected", func(t *testing.T) {
		req := pending()
		req.Status = models.FollowRejected
		assert.ErrorIs(t, checkActionable(req, target, "target@example.com", now), ErrAlreadyProcessed)
	})

	t.Run("expired pending request", func(t *testing.T) {
		req := pending()
		req.ExpiresAt = now.Add(-time.Minute)
		assert.ErrorIs(t, checkActionable(req, target, "target@example.com", now), ErrRequestExpired)
		// read-time expiry does not rewrite the stored status
		assert.Equal(t, models.FollowPending, req.Status)
	})

	t.Run("processed beats expired on re-submission", func(t *testing.T) {
		req := pending()
		req.Status = models.FollowAccepted
		req.ExpiresAt = now.Add(-time.Minute)
		assert.ErrorIs(t, checkActionable(req, target, "target@example.com", now), ErrAlreadyProcessed)
	})

	t.Run("stranger cannot act on a processed request", func(t *testing.T) {
		req := pending()
		req.Status = models.FollowAccepted
		assert.ErrorIs(t, checkActionable(req, target, "other@example.com", now), ErrWrongTarget)
	})
}

func followRequestColumns() []string {
	return []string{"id", "token", "requester_id", "target_email", "target_id", "status", "expires_at"}
}

func TestAcceptCreatesFollowEdge(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFollowService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "follow_requests"`).
		WillReturnRows(sqlmock.NewRows(followRequestColumns()).
			AddRow(3, "tok", 1, "target@example.com", nil, "PENDING", time.Now().Add(time.Hour)))
	mock.ExpectExec(`UPDATE "follow_requests"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// FirstOrCreate: no existing edge, so exactly one insert
	mock.ExpectQuery(`SELECT \* FROM "follows"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "follower_id", "following_id"}))
	mock.ExpectQuery(`INSERT INTO "follows"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	req, err := svc.Accept("tok", 7, "target@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.FollowAccepted, req.Status)
	require.NotNil(t, req.TargetID)
	assert.Equal(t, uint(7), *req.TargetID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptReusesExistingFollowEdge(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFollowService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "follow_requests"`).
		WillReturnRows(sqlmock.NewRows(followRequestColumns()).
			AddRow(3, "tok", 1, "target@example.com", nil, "PENDING", time.Now().Add(time.Hour)))
	mock.ExpectExec(`UPDATE "follow_requests"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// the pair already has an edge; no insert may follow the lookup
	mock.ExpectQuery(`SELECT \* FROM "follows"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "follower_id", "following_id"}).
			AddRow(11, 1, 7))
	mock.ExpectCommit()

	_, err := svc.Accept("tok", 7, "target@example.com")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSecondAcceptAddsNoEdge(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFollowService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "follow_requests"`).
		WillReturnRows(sqlmock.NewRows(followRequestColumns()).
			AddRow(3, "tok", 1, "target@example.com", 7, "ACCEPTED", time.Now().Add(time.Hour)))
	mock.ExpectRollback()

	_, err := svc.Accept("tok", 7, "target@example.com")
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	// nothing was written: no request update, no follows insert
	assert.NoError(t, mock.ExpectationsWereMet())
}
