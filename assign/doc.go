// Package assign solves the maximum-weight bipartite assignment problem:
// given an m×n matrix of integer weights, choose at most one element per row
// and per column so that the sum of the chosen elements is maximal.
//
// It includes three strategies over a matrix.Matrix:
//
//   - SolveGreedy — row-by-row local maximization.
//     Complexity: O(H·W). Fast, deterministic, NOT guaranteed optimal.
//
//   - SolveBacktrack — exhaustive depth-first search with true backtracking.
//     Complexity: O(H!·W) worst case. Guaranteed optimal; feasible for small
//     matrices only (H ≲ 10).
//
//   - SolveHungarian — cost-reduction + exact zero covering + augmentation.
//     Complexity: O(min(H,W)·H·W) per matching round. Guaranteed optimal; the
//     covering step computes an exact minimum vertex cover over the zero
//     cells (König), so the reduction loop provably terminates within
//     min(H,W) rounds.
//
// All solvers are synchronous, single-threaded, and never mutate the caller's
// matrix: Hungarian reduces a private copy, Greedy and Backtrack only read.
// Each call returns a fresh Solution owned by the caller.
//
// Use Solve with Options to route by Algorithm, or call the strategy
// entry points directly.
package assign
