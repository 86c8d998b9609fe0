package sqrt

const defaultTableSize = 16

// TraceFunc receives the name of the active strategy each time a root is
// computed. It is diagnostic only; results never depend on it.
type TraceFunc func(strategy string)

type config struct {
	table *Table
	trace TraceFunc
}

func defaultConfig() config {
	return config{table: defaultTable}
}

// Option configures a [Calculator].
type Option func(*config) error

// WithTable sets the lookup table consulted for zero input (default: a
// precomputed table of the roots of 0..15). The table must be non-nil.
func WithTable(t *Table) Option {
	return func(cfg *config) error {
		if t == nil {
			return errNilTable
		}

		cfg.table = t

		return nil
	}
}

// WithTrace installs a diagnostic hook invoked with the active strategy
// name whenever a root is computed. The zero fast path does not trace.
func WithTrace(fn TraceFunc) Option {
	return func(cfg *config) error {
		cfg.trace = fn
		return nil
	}
}

// Calculator computes square roots using the build-selected strategy and a
// lookup table for the zero fast path. A Calculator is immutable after
// [New] and safe for concurrent use.
type Calculator struct {
	table *Table
	trace TraceFunc
}

// New returns a Calculator configured by opts.
func New(opts ...Option) (*Calculator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Calculator{table: cfg.table, trace: cfg.trace}, nil
}

// Sqrt returns the square root of x. Exact zero is read from the lookup
// table; any other value goes through the build-selected strategy. The
// input is assumed non-negative: negative values propagate whatever the
// underlying primitive produces (NaN), with no error signaled.
func (c *Calculator) Sqrt(x float64) float64 {
	if x == 0 {
		return c.table.At(0)
	}

	if c.trace != nil {
		c.trace(strategyName)
	}

	return compute(x)
}

// Strategy returns the name of the build-selected strategy.
func (c *Calculator) Strategy() string { return strategyName }

var (
	defaultTable = mustTable(defaultTableSize)
	defaultCalc  = &Calculator{table: defaultTable}
)

func mustTable(size int) *Table {
	t, err := NewTable(size)
	if err != nil {
		panic(err)
	}

	return t
}

// Sqrt returns the square root of x using a default calculator.
func Sqrt(x float64) float64 { return defaultCalc.Sqrt(x) }

// Strategy returns the name of the build-selected strategy.
func Strategy() string { return strategyName }
