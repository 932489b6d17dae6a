package timer

import (
	"errors"
	"time"
)

var (
	ErrMissingDescription = errors.New("description is required")
	ErrForbidden          = errors.New("forbidden")
	ErrAlreadyStopped     = errors.New("timer already stopped")
)

type Timer struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Description string     `json:"description"`
	Start       time.Time  `json:"start"`
	IsActive    bool       `json:"isActive"`
	Progress    int        `json:"progress"`
	End         *time.Time `json:"end,omitempty"`
	Duration    *int64     `json:"duration,omitempty"`
}

type Repository interface {
	Create(timer *Timer) error
	GetByUser(userID string, isActive bool) ([]*Timer, error)
	Stop(userID, timerID string) (*Timer, error)
}
