package timer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"timekeeper/pkg/timer"
)

func seedTimers(t *testing.T, repo *timer.FileRepo) {
	t.Helper()

	timers := []*timer.Timer{
		{ID: "t1", UserID: "alice", Description: "first", Start: time.Now(), IsActive: true},
		{ID: "t2", UserID: "bob", Description: "other user", Start: time.Now(), IsActive: true},
		{ID: "t3", UserID: "alice", Description: "second", Start: time.Now(), IsActive: true},
	}
	for _, tm := range timers {
		assert.NoError(t, repo.Create(tm))
	}
}

func TestFileRepo_GetByUser(t *testing.T) {
	repo := timer.NewFileRepo(t.TempDir())
	seedTimers(t, repo)

	active, err := repo.GetByUser("alice", true)
	assert.NoError(t, err)
	assert.Len(t, active, 2)

	// порядок вставки, без сортировки
	assert.Equal(t, "t1", active[0].ID)
	assert.Equal(t, "t3", active[1].ID)

	inactive, err := repo.GetByUser("alice", false)
	assert.NoError(t, err)
	assert.Empty(t, inactive)

	none, err := repo.GetByUser("nobody", true)
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestFileRepo_Stop(t *testing.T) {
	repo := timer.NewFileRepo(t.TempDir())
	seedTimers(t, repo)

	stopped, err := repo.Stop("alice", "t1")
	assert.NoError(t, err)
	assert.False(t, stopped.IsActive)
	assert.NotNil(t, stopped.End)
	assert.NotNil(t, stopped.Duration)
	assert.GreaterOrEqual(t, *stopped.Duration, int64(0))

	// остановленный ушёл из активных и появился в неактивных
	active, err := repo.GetByUser("alice", true)
	assert.NoError(t, err)
	assert.Len(t, active, 1)
	assert.Equal(t, "t3", active[0].ID)

	inactive, err := repo.GetByUser("alice", false)
	assert.NoError(t, err)
	assert.Len(t, inactive, 1)
	assert.Equal(t, "t1", inactive[0].ID)
}

func TestFileRepo_StopForeignTimer(t *testing.T) {
	repo := timer.NewFileRepo(t.TempDir())
	seedTimers(t, repo)

	stopped, err := repo.Stop("alice", "t2")
	assert.ErrorIs(t, err, timer.ErrForbidden)
	assert.Nil(t, stopped)

	// чужой таймер не должен быть задет
	bobTimers, err := repo.GetByUser("bob", true)
	assert.NoError(t, err)
	assert.Len(t, bobTimers, 1)
	assert.True(t, bobTimers[0].IsActive)
	assert.Nil(t, bobTimers[0].End)
}

func TestFileRepo_StopUnknownTimer(t *testing.T) {
	repo := timer.NewFileRepo(t.TempDir())
	seedTimers(t, repo)

	stopped, err := repo.Stop("alice", "no-such-id")

	// несуществующий и чужой неотличимы
	assert.ErrorIs(t, err, timer.ErrForbidden)
	assert.Nil(t, stopped)
}

func TestFileRepo_DoubleStop(t *testing.T) {
	repo := timer.NewFileRepo(t.TempDir())
	seedTimers(t, repo)

	first, err := repo.Stop("alice", "t1")
	assert.NoError(t, err)

	second, err := repo.Stop("alice", "t1")
	assert.ErrorIs(t, err, timer.ErrAlreadyStopped)
	assert.Nil(t, second)

	// поля не пересчитались
	inactive, err := repo.GetByUser("alice", false)
	assert.NoError(t, err)
	assert.Len(t, inactive, 1)
	assert.Equal(t, *first.Duration, *inactive[0].Duration)
	assert.True(t, first.End.Equal(*inactive[0].End))
}
