package daystore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
)

// DirSuffix is appended to keys to form file names
const DirSuffix = ".json"

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// DirMedium stores each key as its own file inside a directory.
// Writes go to a temp file that is renamed over the target, so a crash never
// leaves a half-written day behind.
type DirMedium struct {
	dir string
	mu  sync.Mutex
}

// NewDirMedium creates a DirMedium rooted at dir, creating it if needed
func NewDirMedium(dir string) (*DirMedium, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating day directory: %w", err)
	}
	return &DirMedium{dir: dir}, nil
}

// Dir returns the directory holding the day files
func (m *DirMedium) Dir() string {
	return m.dir
}

// Path returns the file path used for key
func (m *DirMedium) Path(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(m.dir, key+DirSuffix), nil
}

// Get implements Medium
func (m *DirMedium) Get(key string) (string, bool, error) {
	path, err := m.Path(key)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

// Set implements Medium
func (m *DirMedium) Set(key, value string) error {
	path, err := m.Path(key)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, []byte(value), 0644); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}
	return nil
}
