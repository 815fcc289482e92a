package utils

import "github.com/google/uuid"

// GenerateFollowToken returns the capability token a follow request is
// addressed by.
func GenerateFollowToken() string {
	return uuid.NewString()
}
