// Package accuracy measures how closely the build-selected square-root
// strategy tracks the mathematical square root. The measurement squares
// each result and compares it against the input, so it needs no external
// reference implementation and works for any strategy.
package accuracy
