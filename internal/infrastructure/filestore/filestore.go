// Package filestore provides the local storage backends for folder
// emission: an OS-backed store for production and an in-memory store for
// tests.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// OS writes folders and files to the local filesystem.
type OS struct{}

// NewOS creates an OS-backed file store.
func NewOS() *OS {
	return &OS{}
}

// EnsureDir creates the directory and any missing parents. Existing
// directories are a no-op.
func (s *OS) EnsureDir(path string) error {
	if err := os.MkdirAll(path, dirMode); err != nil {
		return fmt.Errorf("filestore: create dir: %w", err)
	}
	return nil
}

// WriteTextFile writes content to path as UTF-8, replacing any existing
// file.
func (s *OS) WriteTextFile(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), fileMode); err != nil {
		return fmt.Errorf("filestore: write file: %w", err)
	}
	return nil
}

// Memory is an in-memory file store for tests. Write failures can be
// injected per path.
type Memory struct {
	mu    sync.Mutex
	dirs  map[string]bool
	files map[string]string

	// FailDir and FailFile make the matching call fail with FailErr.
	FailDir  string
	FailFile string
	FailErr  error
}

// NewMemory creates an empty in-memory file store.
func NewMemory() *Memory {
	return &Memory{
		dirs:  make(map[string]bool),
		files: make(map[string]string),
	}
}

// EnsureDir records the directory and all of its parents.
func (s *Memory) EnsureDir(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if path == s.FailDir {
		return s.FailErr
	}
	for p := path; p != "." && p != string(filepath.Separator) && p != ""; p = filepath.Dir(p) {
		s.dirs[p] = true
	}
	return nil
}

// WriteTextFile records the file content, replacing any previous value.
func (s *Memory) WriteTextFile(path string, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if path == s.FailFile {
		return s.FailErr
	}
	s.files[path] = content
	return nil
}

// HasDir reports whether the directory was created.
func (s *Memory) HasDir(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirs[path]
}

// FileContent returns the content of a written file.
func (s *Memory) FileContent(path string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.files[path]
	return content, ok
}

// FilePaths returns the sorted paths of all written files.
func (s *Memory) FilePaths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	paths := make([]string, 0, len(s.files))
	for p := range s.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
