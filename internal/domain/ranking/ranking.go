// Package ranking counts keyed occurrences and orders them deterministically.
package ranking

import "sort"

// Entry is one ranked key.
type Entry struct {
	Rank  int
	Key   string
	Count int
}

// Tally accumulates counts per key. The zero value is not usable; use NewTally.
type Tally struct {
	counts map[string]int
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add increments key by n.
func (t *Tally) Add(key string, n int) {
	t.counts[key] += n
}

// Inc increments key by one.
func (t *Tally) Inc(key string) { t.Add(key, 1) }

// Count returns the count of key, zero when absent.
func (t *Tally) Count(key string) int { return t.counts[key] }

// Len returns the number of distinct keys.
func (t *Tally) Len() int { return len(t.counts) }

// Total returns the sum of all counts.
func (t *Tally) Total() int {
	n := 0
	for _, c := range t.counts {
		n += c
	}
	return n
}

// Entries returns every key ordered by count desc then key asc, with ranks
// starting at 1.
func (t *Tally) Entries() []Entry {
	out := make([]Entry, 0, len(t.counts))
	for k, c := range t.counts {
		out = append(out, Entry{Key: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// TopN returns at most n entries in rank order. A non-positive n yields nil.
func (t *Tally) TopN(n int) []Entry {
	if n <= 0 {
		return nil
	}
	e := t.Entries()
	if len(e) > n {
		e = e[:n]
	}
	return e
}

// Keys returns the keys of TopN(n).
func (t *Tally) Keys(n int) []string {
	top := t.TopN(n)
	keys := make([]string, len(top))
	for i, e := range top {
		keys[i] = e.Key
	}
	return keys
}

func less(a, b Entry) bool {
	if a.Count != b.Count {
		return a.Count > b.Count // higher count ranks earlier
	}
	return a.Key < b.Key // tie-breaker by key asc
}
