package sqrt

import (
	"github.com/cwbudde/algo-vecmath"
)

// SqrtBlock fills dst with the square roots of src, element by element.
// Zero entries are read from the lookup table like the scalar path. The
// trace hook, if set, fires once per block that computed at least one root.
func (c *Calculator) SqrtBlock(dst, src []float64) error {
	if len(dst) != len(src) {
		return errMismatchedLength
	}

	computed := false
	for i, x := range src {
		if x == 0 {
			dst[i] = c.table.At(0)
			continue
		}

		dst[i] = compute(x)
		computed = true
	}

	if computed && c.trace != nil {
		c.trace(strategyName)
	}

	return nil
}

// SquaredResiduals fills dst with roots[i]*roots[i] - inputs[i]. A block
// of correct roots leaves residuals near zero, which makes this the
// reference-free error measure for a computed block.
func SquaredResiduals(dst, roots, inputs []float64) error {
	if len(dst) != len(roots) || len(dst) != len(inputs) {
		return errMismatchedLength
	}

	vecmath.MulBlock(dst, roots, roots)
	for i := range dst {
		dst[i] -= inputs[i]
	}

	return nil
}
