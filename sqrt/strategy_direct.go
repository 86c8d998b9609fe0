//go:build !logexp

package sqrt

// strategyName identifies the direct strategy in traces.
const strategyName = "direct"

// compute returns sqrt(x) via the platform square-root primitive.
func compute(x float64) float64 {
	return mathSqrt(x)
}
