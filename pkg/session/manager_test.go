package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"timekeeper/pkg/session"
)

func TestFileRepo_CreateAndResolve(t *testing.T) {
	repo := session.NewFileRepo(t.TempDir())

	sessionID, err := repo.Create("user123")
	assert.NoError(t, err)
	assert.NotEmpty(t, sessionID)

	sess, err := repo.Resolve(sessionID)
	assert.NoError(t, err)
	assert.Equal(t, "user123", sess.UserID)

	// два токена подряд не должны совпасть
	secondID, err := repo.Create("user123")
	assert.NoError(t, err)
	assert.NotEqual(t, sessionID, secondID)
}

func TestFileRepo_ResolveUnknown(t *testing.T) {
	repo := session.NewFileRepo(t.TempDir())

	_, err := repo.Resolve("no-such-token")
	assert.ErrorIs(t, err, session.ErrNoSession)

	_, err = repo.Resolve("")
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestFileRepo_Revoke(t *testing.T) {
	repo := session.NewFileRepo(t.TempDir())

	sessionID, err := repo.Create("user123")
	assert.NoError(t, err)

	err = repo.Revoke(sessionID)
	assert.NoError(t, err)

	_, err = repo.Resolve(sessionID)
	assert.ErrorIs(t, err, session.ErrNoSession)

	// повторный revoke — no-op
	err = repo.Revoke(sessionID)
	assert.NoError(t, err)
}

func TestFileRepo_RevokeKeepsOtherSessions(t *testing.T) {
	repo := session.NewFileRepo(t.TempDir())

	first, err := repo.Create("user123")
	assert.NoError(t, err)
	second, err := repo.Create("user456")
	assert.NoError(t, err)

	assert.NoError(t, repo.Revoke(first))

	sess, err := repo.Resolve(second)
	assert.NoError(t, err)
	assert.Equal(t, "user456", sess.UserID)
}
