package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

/*
	Collection хранит одну коллекцию целиком в одном json-файле:
	каждое чтение и каждая запись — это весь файл сразу, никаких
	частичных апдейтов. Мьютекс защищает сам файл от порванной
	записи, но НЕ цикл read-modify-write вызывающего кода.
*/

type Collection[T any] struct {
	mu      sync.Mutex
	path    string
	initial T
}

func New[T any](dir, name string, initial T) *Collection[T] {
	return &Collection[T]{
		path:    filepath.Join(dir, name+".json"),
		initial: initial,
	}
}

func (c *Collection[T]) Read() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var value T

	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		if data, err = c.seed(); err != nil {
			return value, err
		}
	} else if err != nil {
		return value, fmt.Errorf("filestore: read %s: %w", c.path, err)
	}

	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("filestore: parse %s: %w", c.path, err)
	}
	return value, nil
}

func (c *Collection[T]) Write(value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: encode %s: %w", c.path, err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("filestore: write %s: %w", c.path, err)
	}
	return nil
}

func (c *Collection[T]) seed() ([]byte, error) {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return nil, fmt.Errorf("filestore: mkdir for %s: %w", c.path, err)
	}
	data, err := json.MarshalIndent(c.initial, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("filestore: encode initial %s: %w", c.path, err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return nil, fmt.Errorf("filestore: seed %s: %w", c.path, err)
	}
	return data, nil
}
