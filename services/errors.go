package services

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinels the controllers translate to HTTP statuses. An entity that exists
// but is owned by someone else surfaces as ErrNotFound on purpose.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyProcessed = errors.New("already processed")
	ErrRequestExpired   = errors.New("request expired")
	ErrWrongTarget      = errors.New("wrong target")
)

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
