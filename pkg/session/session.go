package session

import (
	"context"
	"errors"
)

type contextKey string

const (
	SessionContextKey contextKey = "session"
)

var ErrNoSession = errors.New("session not found")

type Session struct {
	UserID string `json:"userId"`
}

type Repository interface {
	Create(userID string) (string, error)
	Resolve(sessionID string) (*Session, error)
	Revoke(sessionID string) error
}

func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(SessionContextKey).(*Session)
	return sess, ok
}
