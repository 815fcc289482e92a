package services

import (
	"strings"
	"time"

	"healthtrack/models"
	"healthtrack/utils"

	"gorm.io/gorm"
)

type FollowService struct{ db *gorm.DB }

func NewFollowService(db *gorm.DB) *FollowService { return &FollowService{db: db} }

func (s *FollowService) CreateRequest(requesterID uint, targetEmail string, ttl time.Duration) (*models.FollowRequest, error) {
	req := &models.FollowRequest{
		Token:       utils.GenerateFollowToken(),
		RequesterID: requesterID,
		TargetEmail: strings.ToLower(strings.TrimSpace(targetEmail)),
		Status:      models.FollowPending,
		ExpiresAt:   time.Now().Add(ttl),
	}
	if err := s.db.Create(req).Error; err != nil {
		return nil, err
	}
	return req, nil
}

// ListIncoming returns the pending, unexpired requests addressed to email.
func (s *FollowService) ListIncoming(email string) ([]models.FollowRequest, error) {
	var reqs []models.FollowRequest
	err := s.db.
		Where("target_email = ? AND status = ? AND expires_at > ?",
			strings.ToLower(email), models.FollowPending, time.Now()).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

// checkActionable guards the PENDING → ACCEPTED/REJECTED transition. Order
// matters: a re-submitted request must report "already processed" even when it
// has also expired since, and only the addressed target may act at all.
func checkActionable(req *models.FollowRequest, userID uint, email string, now time.Time) error {
	if req.TargetID != nil {
		if *req.TargetID != userID {
			return ErrWrongTarget
		}
	} else if !strings.EqualFold(req.TargetEmail, email) {
		return ErrWrongTarget
	}
	if req.Status != models.FollowPending {
		return ErrAlreadyProcessed
	}
	if now.After(req.ExpiresAt) {
		// expiry is read-time only; the stored status stays PENDING
		return ErrRequestExpired
	}
	return nil
}

// Accept moves the request to ACCEPTED and creates the follower → following
// edge. FirstOrCreate on the unique pair keeps a racing double-submit from
// producing a second edge.
func (s *FollowService) Accept(token string, userID uint, email string) (*models.FollowRequest, error) {
	var req models.FollowRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("token = ?", token).First(&req).Error; err != nil {
			return notFoundOr(err)
		}
		if err := checkActionable(&req, userID, email, time.Now()); err != nil {
			return err
		}

		req.Status = models.FollowAccepted
		req.TargetID = &userID
		if err := tx.Save(&req).Error; err != nil {
			return err
		}

		edge := models.Follow{FollowerID: req.RequesterID, FollowingID: userID}
		return tx.Where("follower_id = ? AND following_id = ?", req.RequesterID, userID).
			FirstOrCreate(&edge).Error
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *FollowService) Reject(token string, userID uint, email string) (*models.FollowRequest, error) {
	var req models.FollowRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("token = ?", token).First(&req).Error; err != nil {
			return notFoundOr(err)
		}
		if err := checkActionable(&req, userID, email, time.Now()); err != nil {
			return err
		}

		req.Status = models.FollowRejected
		req.TargetID = &userID
		return tx.Save(&req).Error
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

type FollowerInfo struct {
	UserID     uint      `json:"user_id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	FollowedAt time.Time `json:"followed_at"`
}

// Followers lists the users following userID.
func (s *FollowService) Followers(userID uint) ([]FollowerInfo, error) {
	var rows []FollowerInfo
	err := s.db.
		Table("follows").
		Select("users.id AS user_id, users.email, users.full_name, follows.created_at AS followed_at").
		Joins("JOIN users ON users.id = follows.follower_id").
		Where("follows.following_id = ?", userID).
		Order("follows.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (s *FollowService) RemoveFollower(userID, followerID uint) error {
	res := s.db.
		Where("follower_id = ? AND following_id = ?", followerID, userID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
