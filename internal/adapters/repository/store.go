// Package repository stores the pipeline tables as CSV files and decodes
// them into typed records.
package repository

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/okian/podium/internal/domain/tabular"
	"github.com/okian/podium/pkg/metrics"
)

// Store provides read/write access to named tables.
type Store interface {
	// Read loads the table stored under name.
	// Returns ErrTableNotFound if no such table exists.
	Read(ctx context.Context, name string) (dataframe.DataFrame, error)

	// Write replaces the table stored under name with df.
	Write(ctx context.Context, name string, df dataframe.DataFrame) error
}

// DefaultNaNValues are the cell texts loaded as missing values.
var DefaultNaNValues = []string{"", "NA", "NaN", "<nil>", "null"}

// CSVStore keeps each table as one CSV file with a header row in a directory.
type CSVStore struct {
	dir       string
	nanValues []string
}

var _ Store = (*CSVStore)(nil)

// NewCSVStore returns a store rooted at dir.
func NewCSVStore(dir string, opts ...Option) *CSVStore {
	s := &CSVStore{
		dir:       dir,
		nanValues: DefaultNaNValues,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the directory backing the store.
func (s *CSVStore) Dir() string { return s.dir }

// Path returns the file path of the table stored under name.
func (s *CSVStore) Path(name string) string { return filepath.Join(s.dir, name) }

func (s *CSVStore) Read(ctx context.Context, name string) (dataframe.DataFrame, error) {
	if err := ctx.Err(); err != nil {
		return dataframe.DataFrame{}, err
	}
	path := s.Path(name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s", ErrTableNotFound, path)
	}
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %w", ErrReadTable, path, err)
	}

	df := dataframe.ReadCSV(bytes.NewReader(data), dataframe.NaNValues(s.nanValues))
	if df.Err != nil {
		header, ok := headerOnly(data)
		if !ok {
			metrics.RecordError("repository", "read")
			return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %w", ErrReadTable, path, df.Err)
		}
		df = tabular.EmptyFrame(header)
	}
	metrics.RecordRowsLoaded(tableLabel(name), df.Nrow())
	return df, nil
}

// Write stores df atomically: the CSV is written to a temporary file that
// replaces the target only once complete.
func (s *CSVStore) Write(ctx context.Context, name string, df dataframe.DataFrame) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if df.Err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteTable, name, df.Err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteTable, s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteTable, name, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	w := bufio.NewWriter(tmp)
	if err := df.WriteCSV(w); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %s: %w", ErrWriteTable, name, err)
	}
	if err := w.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %s: %w", ErrWriteTable, name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteTable, name, err)
	}
	if err := os.Rename(tmp.Name(), s.Path(name)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteTable, name, err)
	}
	metrics.RecordRowsExported(tableLabel(name), df.Nrow())
	return nil
}

// headerOnly returns the header of a CSV that holds no data rows. gota
// refuses to load such a file, but Write produces one for a table that
// cleaning emptied.
func headerOnly(data []byte) ([]string, bool) {
	recs, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil || len(recs) != 1 {
		return nil, false
	}
	return recs[0], true
}

// tableLabel turns "olympic_hosts.csv" into "hosts".
func tableLabel(name string) string {
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return strings.TrimPrefix(name, "olympic_")
}
