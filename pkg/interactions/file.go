package interactions

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/utils"
)

// FileStore keeps the log as a single JSON array rewritten on each append.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) load() []Interaction {
	list, err := utils.Load[[]Interaction](f.path)
	switch {
	case err == nil:
		return list
	case errors.Is(err, fs.ErrNotExist):
	default:
		log.Warn("interaction log unreadable, starting fresh", "path", f.path, "err", err)
	}
	return []Interaction{}
}

// Append loads the log, adds rec and rewrites the file.
func (f *FileStore) Append(_ context.Context, rec Interaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	list := append(f.load(), rec)
	if err := utils.Save(f.path, list, "    "); err != nil {
		return fmt.Errorf("error saving interaction to %s: %w", f.path, err)
	}
	return nil
}

func (f *FileStore) List(context.Context) ([]Interaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load(), nil
}

func (f *FileStore) Close(context.Context) error { return nil }
