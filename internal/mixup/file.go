package mixup

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"traductor/internal/domain"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const fileVersion = 1

type fileDocument struct {
	Version int               `json:"version"`
	Mixups  domain.MixupTable `json:"mixups"`
}

// FileStore persists the table as a JSON document on disk
type FileStore struct {
	path string
	now  func() time.Time
}

// NewFileStore creates a store backed by path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Load reads the table. A missing file is an empty table.
func (s *FileStore) Load() (domain.MixupTable, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.MixupTable{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read mixup file: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("mixup file %s is not valid JSON", s.path)
	}

	table := domain.MixupTable{}
	gjson.GetBytes(data, "mixups").ForEach(func(expected, wrongs gjson.Result) bool {
		wrongs.ForEach(func(wrong, count gjson.Result) bool {
			if n := int(count.Int()); n > 0 {
				if table[expected.String()] == nil {
					table[expected.String()] = make(map[string]int)
				}
				table[expected.String()][wrong.String()] = n
			}
			return true
		})
		return true
	})
	return table, nil
}

// Save writes the whole table, stamping the save time
func (s *FileStore) Save(table domain.MixupTable) error {
	data, err := json.MarshalIndent(fileDocument{Version: fileVersion, Mixups: table}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode mixup table: %w", err)
	}
	data, err = sjson.SetBytes(data, "saved_at", s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to stamp mixup table: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create mixup dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mixup file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace mixup file: %w", err)
	}
	return nil
}
