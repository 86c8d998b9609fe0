package accuracy

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-sqrt/sqrt"
)

const minSamples = 2

var errNilCalculator = errors.New("accuracy: calculator must not be nil")

// Result summarizes the residual-based relative error of a sweep. All
// error figures use |root^2 - x| / max(1, x).
type Result struct {
	// MaxRelative is the largest relative residual observed.
	MaxRelative float64

	// MeanRelative is the arithmetic mean of the relative residuals.
	MeanRelative float64

	// RMS is the root mean square of the relative residuals.
	RMS float64

	// Samples is the number of points evaluated.
	Samples int
}

// Sweep evaluates calc over n uniformly spaced points in [lo, hi] and
// reports how far the squared results drift from the inputs. The bounds
// must satisfy 0 <= lo < hi and n must be at least 2.
func Sweep(calc *sqrt.Calculator, lo, hi float64, n int) (Result, error) {
	if calc == nil {
		return Result{}, errNilCalculator
	}
	if lo < 0 {
		return Result{}, fmt.Errorf("accuracy: lower bound must be >= 0: %g", lo)
	}
	if hi <= lo {
		return Result{}, fmt.Errorf("accuracy: upper bound must exceed lower bound: [%g, %g]", lo, hi)
	}
	if n < minSamples {
		return Result{}, fmt.Errorf("accuracy: need at least %d samples: %d", minSamples, n)
	}

	inputs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range inputs {
		inputs[i] = lo + float64(i)*step
	}

	roots := make([]float64, n)
	if err := calc.SqrtBlock(roots, inputs); err != nil {
		return Result{}, err
	}

	residuals := make([]float64, n)
	if err := sqrt.SquaredResiduals(residuals, roots, inputs); err != nil {
		return Result{}, err
	}

	res := Result{Samples: n}

	var sum, sumSq float64
	for i, r := range residuals {
		rel := math.Abs(r) / math.Max(1, inputs[i])
		if rel > res.MaxRelative {
			res.MaxRelative = rel
		}

		sum += rel
		sumSq += rel * rel
	}

	res.MeanRelative = sum / float64(n)
	res.RMS = math.Sqrt(sumSq / float64(n))

	return res, nil
}
