package user

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"timekeeper/pkg/session"
)

type ServiceInterface interface {
	Register(username, password string) (*User, string, error)
	Login(username, password string) (*User, string, error)
}

type Service struct {
	Repo    Repository
	Session session.Repository
}

func NewService(repo Repository, session session.Repository) *Service {
	return &Service{Repo: repo, Session: session}
}

func (s *Service) Register(username, password string) (*User, string, error) {
	if username == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	_, err := s.Repo.FindByUsername(username)
	if err == nil {
		return nil, "", ErrUserExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password error: %w", err)
	}

	user := &User{
		ID:       uuid.NewString(),
		Username: username,
		Password: string(hashedPassword),
	}

	if err := s.Repo.Create(user); err != nil {
		return nil, "", err
	}

	sessionID, err := s.Session.Create(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	return user, sessionID, nil
}

func (s *Service) Login(username, password string) (*User, string, error) {
	if username == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	user, err := s.Repo.FindByUsername(username)
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	/* прежние сессии не трогаем — у пользователя может быть
	несколько параллельных сессий */
	sessionID, err := s.Session.Create(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	return user, sessionID, nil
}
