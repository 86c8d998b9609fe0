//go:build logexp

package sqrt

// strategyName identifies the log/exp composition strategy in traces.
const strategyName = "logexp"

// compute returns sqrt(x) using the identity sqrt(x) = exp(log(x) * 0.5),
// valid for positive x. Negative input yields NaN from the logarithm.
func compute(x float64) float64 {
	return mathExp(mathLog(x) * 0.5)
}
