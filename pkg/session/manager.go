package session

import (
	"fmt"

	"timekeeper/internal/filestore"
	"timekeeper/pkg/generator"
)

type FileRepo struct {
	Store *filestore.Collection[map[string]Session]
}

func NewFileRepo(dataDir string) *FileRepo {
	return &FileRepo{
		Store: filestore.New(dataDir, "sessions", map[string]Session{}),
	}
}

func (r *FileRepo) Create(userID string) (string, error) {
	sessionID, err := generator.NewToken()
	if err != nil {
		return "", err
	}

	sessions, err := r.Store.Read()
	if err != nil {
		return "", err
	}
	sessions[sessionID] = Session{UserID: userID}

	if err := r.Store.Write(sessions); err != nil {
		return "", fmt.Errorf("persist session: %w", err)
	}
	return sessionID, nil
}

func (r *FileRepo) Resolve(sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}

	sessions, err := r.Store.Read()
	if err != nil {
		return nil, err
	}

	sess, ok := sessions[sessionID]
	if !ok {
		return nil, ErrNoSession
	}
	return &sess, nil
}

func (r *FileRepo) Revoke(sessionID string) error {
	sessions, err := r.Store.Read()
	if err != nil {
		return err
	}

	if _, ok := sessions[sessionID]; !ok {
		return nil
	}
	delete(sessions, sessionID)

	return r.Store.Write(sessions)
}
