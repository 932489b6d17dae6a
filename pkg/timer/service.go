package timer

import (
	"time"

	"github.com/google/uuid"
)

type ServiceTimer interface {
	List(userID string, isActive bool) ([]*Timer, error)
	Start(userID, description string) (*Timer, error)
	Stop(userID, timerID string) (*Timer, error)
}

type TimerService struct {
	Repo Repository
}

func NewService(repo Repository) *TimerService {
	return &TimerService{Repo: repo}
}

func (s *TimerService) List(userID string, isActive bool) ([]*Timer, error) {
	return s.Repo.GetByUser(userID, isActive)
}

func (s *TimerService) Start(userID, description string) (*Timer, error) {
	if description == "" {
		return nil, ErrMissingDescription
	}

	timer := &Timer{
		ID:          uuid.NewString(),
		UserID:      userID,
		Description: description,
		Start:       time.Now(),
		IsActive:    true,
		Progress:    0,
	}

	if err := s.Repo.Create(timer); err != nil {
		return nil, err
	}
	return timer, nil
}

func (s *TimerService) Stop(userID, timerID string) (*Timer, error) {
	return s.Repo.Stop(userID, timerID)
}
