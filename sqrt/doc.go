// Package sqrt computes square roots with a computation strategy fixed at
// build time. The default build uses the platform square-root primitive;
// the logexp build tag switches to the exp(log(x)/2) composition, and the
// fastmath tag swaps the underlying log/exp/sqrt primitives for fast
// approximations. Inputs are assumed non-negative; exact zero is served
// from a precomputed lookup table instead of being computed.
package sqrt
