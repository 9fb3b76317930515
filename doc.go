// Package matchmax solves the maximum-weight assignment problem: given a
// rectangular matrix of int64 weights, pick at most one cell per row and per
// column so the selected total is as large as possible.
//
// 🚀 What is matchmax?
//
//	A small, deterministic solver library organized under three subpackages:
//		• matrix/   — the weight grid: Dense row-major storage behind a
//		  minimal Matrix interface (At/Set/Clone/RowMin/ColMin)
//		• assign/   — the solvers: Greedy (fast heuristic), Backtrack
//		  (exhaustive, optimal), Hungarian (polynomial, optimal)
//		• matrixio/ — loader & printer for ';'-separated matrix text files
//
// ✨ Guarantees
//
//   - Deterministic — identical inputs yield identical selections, no RNG
//   - Strict sentinel errors matched via errors.Is; no panics on bad input
//   - Solvers only read the caller's matrix, never mutate it
//   - Backtrack and Hungarian always agree on the optimal sum; Greedy may
//     fall short but never exceeds it
//
// Quick example:
//
//	m, err := matrixio.Load("weights.txt")
//	if err != nil { ... }
//	sol, err := assign.Solve(m, assign.DefaultOptions())
//	if err != nil { ... }
//	fmt.Println(sol.Sum)
//
// See cmd/matchmax for the command-line front-end.
//
//	go get github.com/matchmax/matchmax
package matchmax
