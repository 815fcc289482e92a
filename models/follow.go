package models

import (
	"time"

	"gorm.io/gorm"
)

type FollowRequestStatus string

const (
	FollowPending  FollowRequestStatus = "PENDING"
	FollowAccepted FollowRequestStatus = "ACCEPTED"
	FollowRejected FollowRequestStatus = "REJECTED"
)

// FollowRequest is a token-addressed invitation. Expiry is evaluated at read
// time against ExpiresAt; the stored status stays PENDING until acted on.
type FollowRequest struct {
	gorm.Model
	Token       string              `gorm:"uniqueIndex;size:64;not null" json:"token"`
	RequesterID uint                `gorm:"index;not null" json:"requester_id"`
	TargetEmail string              `gorm:"index;not null" json:"target_email"` // stored lower-cased
	TargetID    *uint               `json:"target_id,omitempty"`                // resolved on acceptance
	Status      FollowRequestStatus `gorm:"size:16;default:PENDING" json:"status"`
	ExpiresAt   time.Time           `json:"expires_at"`
}

// Follow is the durable follower → following edge created on acceptance.
// Hard-deleted on unfollow so the unique pair index never blocks a re-follow.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"index:idx_follow_edge,unique;not null" json:"follower_id"`
	FollowingID uint      `gorm:"index:idx_follow_edge,unique;not null" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}
