package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/mededu/internal/model"
)

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Store loads and saves the whole study document as one unit. There is no
// locking: two interleaved load/save cycles lose the first writer's changes.
type Store interface {
	// Load returns the persisted document, or a fresh default document if
	// nothing has been saved yet.
	Load(ctx context.Context) (*model.Document, error)

	// Save overwrites the persisted document.
	Save(ctx context.Context, doc *model.Document) error

	// Close releases any resources held by the store.
	Close() error
}

// Open creates the Store for backend at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", BackendJSON:
		return NewFileStore(path)
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown store backend: %q", backend)
	}
}

// DefaultDataPath resolves the data file path for backend under
// $XDG_DATA_HOME/mededu, falling back to ~/.local/share/mededu.
func DefaultDataPath(backend string) (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	name := "mededu_data.json"
	if backend == BackendSQLite {
		name = "mededu.db"
	}
	p := filepath.Join(dataHome, "mededu", name)
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
