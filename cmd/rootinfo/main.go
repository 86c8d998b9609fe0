// Command rootinfo prints information about the square-root strategy
// compiled into this binary.
//
// Usage:
//
//	rootinfo [flags] [value ...]
//
// Values given as arguments are evaluated individually. Without arguments
// it runs an accuracy sweep over the configured range.
//
// Examples:
//
//	rootinfo 2 4 9
//	rootinfo -from 0 -to 1e6 -samples 4096
//	rootinfo -trace 2
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-sqrt/measure/accuracy"
	"github.com/cwbudde/algo-sqrt/sqrt"
)

func main() {
	from := flag.Float64("from", 0, "sweep lower bound (inclusive)")
	to := flag.Float64("to", 1e4, "sweep upper bound (inclusive)")
	samples := flag.Int("samples", 1024, "number of sweep samples")
	tableSize := flag.Int("table", 16, "lookup table size")
	trace := flag.Bool("trace", false, "print strategy diagnostics to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rootinfo [flags] [value ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the active square-root strategy and its accuracy.\n")
		fmt.Fprintf(os.Stderr, "Values given as arguments are evaluated individually.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	table, err := sqrt.NewTable(*tableSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rootinfo:", err)
		os.Exit(2)
	}

	opts := []sqrt.Option{sqrt.WithTable(table)}
	if *trace {
		opts = append(opts, sqrt.WithTrace(func(strategy string) {
			fmt.Fprintf(os.Stderr, "strategy=%s\n", strategy)
		}))
	}

	calc, err := sqrt.New(opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rootinfo:", err)
		os.Exit(2)
	}

	fmt.Printf("strategy: %s\n", calc.Strategy())

	if args := flag.Args(); len(args) > 0 {
		evaluate(calc, args)
		return
	}

	sweep(calc, *from, *to, *samples)
}

func evaluate(calc *sqrt.Calculator, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "x\tsqrt(x)")

	for _, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rootinfo: invalid value %q\n", arg)
			os.Exit(2)
		}

		fmt.Fprintf(w, "%g\t%.12g\n", x, calc.Sqrt(x))
	}

	w.Flush()
}

func sweep(calc *sqrt.Calculator, from, to float64, samples int) {
	res, err := accuracy.Sweep(calc, from, to, samples)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rootinfo:", err)
		os.Exit(2)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "metric\tvalue")
	fmt.Fprintf(w, "samples\t%d\n", res.Samples)
	fmt.Fprintf(w, "max relative\t%.3g\n", res.MaxRelative)
	fmt.Fprintf(w, "mean relative\t%.3g\n", res.MeanRelative)
	fmt.Fprintf(w, "rms\t%.3g\n", res.RMS)
	w.Flush()
}
