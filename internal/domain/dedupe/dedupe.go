// Package dedupe tracks row fingerprints to detect repeated table rows.
package dedupe

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// Deduper records seen row fingerprints.
type Deduper interface {
	// SeenAndRecord atomically checks if row was seen and records it if not.
	// Returns true if an identical row was already recorded.
	SeenAndRecord(ctx context.Context, row []string) bool

	Size() int64
}

// fieldSep separates cells inside a fingerprint so that ["ab","c"] and
// ["a","bc"] hash differently.
const fieldSep = 0x1f

// Fingerprint hashes the cells of a row in order.
func Fingerprint(row []string) uint64 {
	d := xxhash.New()
	for _, cell := range row {
		_, _ = d.WriteString(cell)
		_, _ = d.Write([]byte{fieldSep})
	}
	return d.Sum64()
}

// inMemoryDeduper implements Deduper over an exact fingerprint set.
type inMemoryDeduper struct {
	mu   sync.Mutex
	seen map[uint64]struct{}
	size atomic.Int64
}

// NewInMemoryDeduper creates an empty in-memory deduper.
func NewInMemoryDeduper() Deduper {
	return &inMemoryDeduper{seen: make(map[uint64]struct{})}
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, row []string) bool {
	fp := Fingerprint(row)

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.seen[fp]; exists {
		return true
	}
	d.seen[fp] = struct{}{}
	d.size.Add(1)
	return false
}

// Size returns the current number of fingerprints held.
func (d *inMemoryDeduper) Size() int64 {
	return d.size.Load()
}

// CountDuplicates returns how many rows are identical to an earlier row.
func CountDuplicates(ctx context.Context, rows [][]string) int {
	d := NewInMemoryDeduper()
	dups := 0
	for _, r := range rows {
		if d.SeenAndRecord(ctx, r) {
			dups++
		}
	}
	return dups
}
