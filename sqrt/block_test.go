package sqrt

import (
	"testing"
)

func TestSqrtBlockMatchesScalar(t *testing.T) {
	calc, err := New()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	src := []float64{0, 1, 2, 4, 9, 0.25, 1e6}
	dst := make([]float64, len(src))

	if err := calc.SqrtBlock(dst, src); err != nil {
		t.Fatalf("SqrtBlock error: %v", err)
	}

	for i, x := range src {
		if dst[i] != calc.Sqrt(x) {
			t.Fatalf("index %d: block %v, scalar %v", i, dst[i], calc.Sqrt(x))
		}
	}
}

func TestSqrtBlockZeroUsesTable(t *testing.T) {
	table, err := NewTableFromRoots([]float64{7.25})
	if err != nil {
		t.Fatalf("NewTableFromRoots error: %v", err)
	}

	calc, err := New(WithTable(table))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	src := []float64{0, 4, 0}
	dst := make([]float64, len(src))

	if err := calc.SqrtBlock(dst, src); err != nil {
		t.Fatalf("SqrtBlock error: %v", err)
	}

	if dst[0] != 7.25 || dst[2] != 7.25 {
		t.Fatalf("zero entries = %v, %v; want table value 7.25", dst[0], dst[2])
	}
}

func TestSqrtBlockLengthMismatch(t *testing.T) {
	calc, err := New()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if err := calc.SqrtBlock(make([]float64, 2), make([]float64, 3)); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestSqrtBlockTraceOncePerBlock(t *testing.T) {
	count := 0

	calc, err := New(WithTrace(func(string) { count++ }))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	dst := make([]float64, 4)

	if err := calc.SqrtBlock(dst, []float64{1, 2, 3, 4}); err != nil {
		t.Fatalf("SqrtBlock error: %v", err)
	}
	if count != 1 {
		t.Fatalf("trace fired %d times, want 1", count)
	}

	// An all-zero block never computes and must not trace.
	if err := calc.SqrtBlock(dst, []float64{0, 0, 0, 0}); err != nil {
		t.Fatalf("SqrtBlock error: %v", err)
	}
	if count != 1 {
		t.Fatalf("trace fired on table-only block: %d calls", count)
	}
}

func TestSquaredResiduals(t *testing.T) {
	roots := []float64{1, 2, 3}
	inputs := []float64{1, 4, 9}
	dst := make([]float64, 3)

	if err := SquaredResiduals(dst, roots, inputs); err != nil {
		t.Fatalf("SquaredResiduals error: %v", err)
	}

	for i, r := range dst {
		if r != 0 {
			t.Fatalf("index %d: residual %v, want 0 for exact roots", i, r)
		}
	}
}

func TestSquaredResidualsLengthMismatch(t *testing.T) {
	if err := SquaredResiduals(make([]float64, 2), make([]float64, 3), make([]float64, 3)); err == nil {
		t.Fatal("expected error for dst length mismatch")
	}
	if err := SquaredResiduals(make([]float64, 3), make([]float64, 3), make([]float64, 2)); err == nil {
		t.Fatal("expected error for inputs length mismatch")
	}
}
