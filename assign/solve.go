// Package assign - unified dispatcher for assignment solvers.
//
// Solve is the canonical entry point: it validates the shared input
// contract once, routes to the strategy selected by Options.Algo, and
// returns the strategy's Solution unchanged.
//
// Design principles:
//   - Deterministic: no randomness anywhere in the package.
//   - Strict sentinels: only errors from types.go (or matrix sentinels
//     propagated from cell access); no fmt.Errorf where a sentinel suffices.
//   - Hot-path discipline: logging happens here at the dispatch boundary,
//     never inside solver loops.
package assign

import (
	"github.com/rs/zerolog/log"

	"github.com/matchmax/matchmax/matrix"
)

// Solve routes to the solver selected by opts.Algo.
//
// Contracts:
//   - m must be non-nil with positive dimensions (ErrInvalidMatrix).
//   - opts.MaxIterations governs only the Hungarian fixpoint loop.
//
// Errors: strict sentinels from types.go; see each solver for specifics.
//
// Complexity: per chosen algorithm (see greedy.go, backtrack.go,
// hungarian.go).
func Solve(m matrix.Matrix, opts Options) (Solution, error) {
	// Shared shape validation; solvers re-check cheaply but fail here first.
	rows, cols, err := validateMatrix(m)
	if err != nil {
		return Solution{}, err
	}

	log.Trace().
		Str("algo", opts.Algo.String()).
		Int("rows", rows).
		Int("cols", cols).
		Msg("dispatching assignment solver")

	switch opts.Algo {
	case Greedy:
		return SolveGreedy(m)

	case Backtrack:
		return SolveBacktrack(m)

	case Hungarian:
		sol, _, herr := solveHungarian(m, opts)

		return sol, herr

	default:
		return Solution{}, ErrUnsupportedAlgorithm
	}
}
