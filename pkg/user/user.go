package user

import "errors"

var (
	ErrMissingFields      = errors.New("username and password are required")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	Username string `json:"username"`
	ID       string `json:"id"`
	Password string `json:"-"`
}

type Repository interface {
	Create(user *User) error
	FindByUsername(username string) (*User, error)
}
