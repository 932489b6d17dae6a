package user

import (
	"fmt"

	"timekeeper/internal/filestore"
)

// record — то, что реально лежит в users.json; хэш пароля
// туда попадает, а в json самого User — никогда.
type record struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

type FileRepo struct {
	Store *filestore.Collection[[]record]
}

func NewFileRepo(dataDir string) *FileRepo {
	return &FileRepo{
		Store: filestore.New(dataDir, "users", []record{}),
	}
}

func (r *FileRepo) Create(user *User) error {
	records, err := r.Store.Read()
	if err != nil {
		return err
	}

	records = append(records, record{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.Password,
	})

	if err := r.Store.Write(records); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	return nil
}

func (r *FileRepo) FindByUsername(username string) (*User, error) {
	records, err := r.Store.Read()
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if rec.Username == username {
			return &User{
				ID:       rec.ID,
				Username: rec.Username,
				Password: rec.PasswordHash,
			}, nil
		}
	}
	return nil, ErrUserNotFound
}
