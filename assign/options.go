// Package assign: solver selection and governing options.
package assign

// Algorithm selects the solving strategy used by Solve.
//
//   - Greedy    — row-by-row local maximization; fast, not guaranteed optimal.
//   - Backtrack — exhaustive search; optimal, exponential.
//   - Hungarian — reduction + exact covering + augmentation; optimal,
//     polynomial.
type Algorithm int

const (
	// Greedy routes Solve to SolveGreedy.
	Greedy Algorithm = iota

	// Backtrack routes Solve to SolveBacktrack.
	Backtrack

	// Hungarian routes Solve to SolveHungarian.
	Hungarian
)

// String returns the lowercase algorithm name (used by CLI flags and logs).
func (a Algorithm) String() string {
	switch a {
	case Greedy:
		return "greedy"
	case Backtrack:
		return "backtrack"
	case Hungarian:
		return "hungarian"
	default:
		return "unknown"
	}
}

// Options configures Solve.
//
// Fields:
//   - Algo          — which strategy to run.
//   - MaxIterations — hard bound on Hungarian matching-growth rounds.
//     Zero or negative means the mandatory default bound min(H,W); exceeding
//     the bound yields ErrNonConvergence. Ignored by Greedy and Backtrack.
//
// Example:
//
//	sol, err := assign.Solve(m, assign.Options{Algo: assign.Hungarian})
//	if err != nil {
//	  // handle ErrInvalidMatrix / ErrNonConvergence / ErrExtractionFailure
//	}
//	fmt.Println("best sum:", sol.Sum)
type Options struct {
	Algo          Algorithm
	MaxIterations int
}

// DefaultOptions returns the recommended configuration: the Hungarian solver
// with the mandatory min(H,W) iteration bound.
func DefaultOptions() Options {
	return Options{Algo: Hungarian, MaxIterations: 0}
}
