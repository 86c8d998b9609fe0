//go:build !fastmath

package accuracy

import (
	"testing"
)

func TestSweepDefaultBuildIsAccurate(t *testing.T) {
	res, err := Sweep(newCalc(t), 0, 1e6, 4096)
	if err != nil {
		t.Fatalf("Sweep error: %v", err)
	}

	if res.MaxRelative > 1e-9 {
		t.Fatalf("MaxRelative = %v, want <= 1e-9", res.MaxRelative)
	}
}
