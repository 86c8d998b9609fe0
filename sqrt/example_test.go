//go:build !fastmath && !logexp

package sqrt_test

import (
	"fmt"

	"github.com/cwbudde/algo-sqrt/sqrt"
)

func ExampleSqrt() {
	fmt.Printf("%.4f\n", sqrt.Sqrt(2))
	fmt.Printf("%.4f\n", sqrt.Sqrt(4))

	// Output:
	// 1.4142
	// 2.0000
}

func ExampleCalculator_Sqrt() {
	table, _ := sqrt.NewTable(4)
	calc, _ := sqrt.New(sqrt.WithTable(table))

	fmt.Printf("%.4f\n", calc.Sqrt(0))
	fmt.Printf("%.4f\n", calc.Sqrt(9))

	// Output:
	// 0.0000
	// 3.0000
}

func ExampleWithTrace() {
	calc, _ := sqrt.New(sqrt.WithTrace(func(strategy string) {
		fmt.Println("computed via", strategy)
	}))

	calc.Sqrt(0) // table read, no trace
	calc.Sqrt(16)

	// Output:
	// computed via direct
}
