package fulfillment

import (
	"fmt"
	"path/filepath"
)

// FileStore is the port to local storage. Implementations must make
// EnsureDir idempotent and WriteTextFile an unconditional UTF-8 overwrite.
type FileStore interface {
	// EnsureDir creates the directory and any missing parents; existing
	// directories are a no-op
	EnsureDir(path string) error
	// WriteTextFile writes content to path, replacing any existing file
	WriteTextFile(path string, content string) error
}

// Emitter executes folder plans against a FileStore. It carries no state
// beyond the store; a failed write aborts the current plan mid-way and
// leaves already-written folders in place.
type Emitter struct {
	store FileStore
}

// NewEmitter creates an Emitter backed by the given store.
func NewEmitter(store FileStore) *Emitter {
	return &Emitter{store: store}
}

// Emit creates every planned folder and writes its files, in plan order.
func (e *Emitter) Emit(plan FolderPlan) error {
	for _, folder := range plan.Folders {
		if err := e.store.EnsureDir(folder.Path); err != nil {
			return fmt.Errorf("creating folder %s: %w", folder.Path, err)
		}
		for _, file := range folder.Files {
			target := filepath.Join(folder.Path, file.Name)
			if err := e.store.WriteTextFile(target, file.Content); err != nil {
				return fmt.Errorf("writing file %s: %w", target, err)
			}
		}
	}
	return nil
}
