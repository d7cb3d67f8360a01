// Package theme persists the single user preference: the dark or light theme.
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Theme — выбранная тема оформления.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Parse возвращает тему; неизвестное или пустое значение даёт Dark.
func Parse(s string) Theme {
	if Theme(s) == Light {
		return Light
	}
	return Dark
}

// Toggled возвращает противоположную тему.
func (t Theme) Toggled() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

type document struct {
	Theme string `yaml:"theme"`
}

// Store хранит предпочтение в YAML-файле с единственным ключом theme.
type Store struct {
	path string
}

// NewStore создаёт хранилище по пути path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load читает тему. Отсутствующий файл даёт Dark без ошибки; повреждённый
// файл даёт Dark вместе с ошибкой, чтобы вызывающий мог её залогировать.
func (s *Store) Load() (Theme, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Dark, nil
	}
	if err != nil {
		return Dark, fmt.Errorf("failed to read preference file: %w", err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Dark, fmt.Errorf("failed to unmarshal preference file: %w", err)
	}
	return Parse(doc.Theme), nil
}

// Save записывает тему.
func (s *Store) Save(t Theme) error {
	data, err := yaml.Marshal(document{Theme: string(Parse(string(t)))})
	if err != nil {
		return fmt.Errorf("failed to marshal preference: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create preference dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preference file: %w", err)
	}
	return nil
}

// Toggle переключает тему и сохраняет её.
func (s *Store) Toggle(current Theme) (Theme, error) {
	next := current.Toggled()
	return next, s.Save(next)
}
