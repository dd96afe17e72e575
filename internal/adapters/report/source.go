package report

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/okian/podium/internal/domain/types"
)

// FileSource serves views from a views.json on disk and reloads it when the
// file's modification time changes.
type FileSource struct {
	path string

	mu      sync.Mutex
	modTime time.Time
	cached  *types.Views
}

// NewFileSource returns a FileSource reading path.
func NewFileSource(path string) *FileSource { return &FileSource{path: path} }

// Views returns the latest views written to the file.
func (s *FileSource) Views(ctx context.Context) (*types.Views, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	st, err := os.Stat(s.path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil && st.ModTime().Equal(s.modTime) {
		return s.cached, nil
	}
	v, err := ReadJSON(s.path)
	if err != nil {
		return nil, err
	}
	s.cached, s.modTime = v, st.ModTime()
	return v, nil
}
