package gantt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// FileSnapshotStore implements SnapshotSink as a pure storage layer over a
// single JSON file. No caching - always reads/writes the file. File locking
// prevents races between host processes.
type FileSnapshotStore struct {
	filePath string
}

// NewFileSnapshotStore creates a snapshot store at
// <workspaceDir>/.gantt/board.json, creating the directory if needed.
func NewFileSnapshotStore(workspaceDir string) (*FileSnapshotStore, error) {
	filePath := filepath.Join(workspaceDir, ".gantt", "board.json")

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create .gantt directory: %w", err)
	}

	return &FileSnapshotStore{filePath: filePath}, nil
}

// Save writes the snapshot, replacing any previous one.
// Lock → Truncate → Write → Unlock.
func (s *FileSnapshotStore) Save(snap Snapshot) error {
	return s.withFileLock(func(file *os.File) error {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}

		if err := file.Truncate(0); err != nil {
			return fmt.Errorf("failed to truncate file: %w", err)
		}
		if _, err := file.Seek(0, 0); err != nil {
			return fmt.Errorf("failed to seek: %w", err)
		}
		if _, err := file.Write(data); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		return nil
	})
}

// Load returns the stored snapshot, or nil when nothing has been saved yet.
// Lock → Read → Unmarshal → Unlock → Return.
func (s *FileSnapshotStore) Load() (*Snapshot, error) {
	var snap *Snapshot

	err := s.withFileLock(func(file *os.File) error {
		fileInfo, err := file.Stat()
		if err != nil {
			return fmt.Errorf("failed to stat file: %w", err)
		}

		// Empty file: no snapshot yet
		if fileInfo.Size() == 0 {
			return nil
		}

		data := make([]byte, fileInfo.Size())
		if _, err := file.ReadAt(data, 0); err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		snap = &Snapshot{}
		if err := json.Unmarshal(data, snap); err != nil {
			return fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// withFileLock executes a function with the file exclusively locked.
func (s *FileSnapshotStore) withFileLock(fn func(*os.File) error) error {
	file, err := os.OpenFile(s.filePath, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("failed to lock file: %w", err)
	}
	defer syscall.Flock(int(file.Fd()), syscall.LOCK_UN)

	return fn(file)
}
