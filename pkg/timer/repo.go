package timer

import (
	"fmt"
	"time"

	"timekeeper/internal/filestore"
)

type FileRepo struct {
	Store *filestore.Collection[[]Timer]
}

func NewFileRepo(dataDir string) *FileRepo {
	return &FileRepo{
		Store: filestore.New(dataDir, "timers", []Timer{}),
	}
}

func (r *FileRepo) Create(timer *Timer) error {
	timers, err := r.Store.Read()
	if err != nil {
		return err
	}

	timers = append(timers, *timer)

	if err := r.Store.Write(timers); err != nil {
		return fmt.Errorf("persist timer: %w", err)
	}
	return nil
}

// GetByUser сохраняет порядок вставки, без сортировки.
func (r *FileRepo) GetByUser(userID string, isActive bool) ([]*Timer, error) {
	timers, err := r.Store.Read()
	if err != nil {
		return nil, err
	}

	result := make([]*Timer, 0)
	for i := range timers {
		if timers[i].UserID == userID && timers[i].IsActive == isActive {
			result = append(result, &timers[i])
		}
	}
	return result, nil
}

func (r *FileRepo) Stop(userID, timerID string) (*Timer, error) {
	timers, err := r.Store.Read()
	if err != nil {
		return nil, err
	}

	for i := range timers {
		if timers[i].ID != timerID {
			continue
		}
		// чужой таймер и несуществующий выглядят одинаково,
		// чтобы не палить чужие id
		if timers[i].UserID != userID {
			return nil, ErrForbidden
		}
		if !timers[i].IsActive {
			return nil, ErrAlreadyStopped
		}

		end := time.Now()
		duration := end.Sub(timers[i].Start).Milliseconds()

		timers[i].IsActive = false
		timers[i].End = &end
		timers[i].Duration = &duration

		if err := r.Store.Write(timers); err != nil {
			return nil, fmt.Errorf("persist timer: %w", err)
		}

		stopped := timers[i]
		return &stopped, nil
	}

	return nil, ErrForbidden
}
