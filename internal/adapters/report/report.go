// Package report persists view results and table profiles: one XLSX workbook
// with a sheet per view, a JSON document, and plain-text profiles.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/okian/podium/internal/domain/profile"
	"github.com/okian/podium/internal/domain/types"
)

// Output file names.
const (
	FileViewsJSON     = "views.json"
	FileViewsWorkbook = "views.xlsx"
)

// Writer writes reports into one directory.
type Writer struct {
	dir string
}

// NewWriter returns a Writer rooted at dir.
func NewWriter(dir string) *Writer { return &Writer{dir: dir} }

// Dir returns the report directory.
func (w *Writer) Dir() string { return w.dir }

func (w *Writer) ensureDir() error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteReport, w.dir, err)
	}
	return nil
}

// WriteJSON writes every view to views.json.
func (w *Writer) WriteJSON(v *types.Views) (string, error) {
	if err := w.ensureDir(); err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: json: %w", ErrWriteReport, err)
	}
	path := filepath.Join(w.dir, FileViewsJSON)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWriteReport, path, err)
	}
	return path, nil
}

// ReadJSON loads a views.json written by WriteJSON.
func ReadJSON(path string) (*types.Views, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v types.Views
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &v, nil
}

// WriteProfile writes the plain rendering of r to profile_<label>.txt.
func (w *Writer) WriteProfile(r *profile.Report) (string, error) {
	if err := w.ensureDir(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, true); err != nil {
		return "", fmt.Errorf("%w: profile %s: %w", ErrWriteReport, r.Label, err)
	}
	path := filepath.Join(w.dir, "profile_"+r.Label+".txt")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWriteReport, path, err)
	}
	return path, nil
}
