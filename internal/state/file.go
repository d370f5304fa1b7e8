package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/slazien/trackguard/internal/models"
)

type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (models.ValidationState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultValidationState(), nil
		}
		return models.ValidationState{}, fmt.Errorf("read state file %s: %w", s.path, err)
	}

	var st models.ValidationState
	if err := json.Unmarshal(data, &st); err != nil {
		return models.ValidationState{}, fmt.Errorf("parse state file %s: %w", s.path, err)
	}

	if st.CurrentInterval < models.MinInterval || st.CurrentInterval > models.MaxInterval {
		return models.ValidationState{}, fmt.Errorf("state file %s: interval %d out of range", s.path, st.CurrentInterval)
	}

	return st, nil
}

// Save writes the state to a sibling temp file and renames it into place,
// so a crash mid-write cannot leave a truncated state file behind.
func (s *FileStore) Save(st models.ValidationState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
