package sqrt

import (
	"fmt"
	"math"
)

// Table is a read-only sequence of precomputed square roots. Index i holds
// the square root of i. A Table is immutable after construction and safe
// for concurrent readers.
type Table struct {
	roots []float64
}

// NewTable precomputes a table of the square roots of 0..size-1.
// The size must be at least 1 so that index 0 always exists.
func NewTable(size int) (*Table, error) {
	if size < 1 {
		return nil, fmt.Errorf("sqrt: table size must be >= 1: %d", size)
	}

	roots := make([]float64, size)
	for i := range roots {
		roots[i] = math.Sqrt(float64(i))
	}

	return &Table{roots: roots}, nil
}

// NewTableFromRoots builds a table from caller-supplied values. The slice
// must be non-empty; its contents are copied, so later mutation of roots
// does not affect the table.
func NewTableFromRoots(roots []float64) (*Table, error) {
	if len(roots) == 0 {
		return nil, errEmptyTable
	}

	cp := make([]float64, len(roots))
	copy(cp, roots)

	return &Table{roots: cp}, nil
}

// Len returns the number of entries in the table.
func (t *Table) Len() int { return len(t.roots) }

// At returns the entry at index i. It panics if i is out of range, like a
// slice access.
func (t *Table) At(i int) float64 { return t.roots[i] }
