// matchmax solves the maximum-weight assignment problem for a matrix read
// from a text file.
//
// Usage:
//
//	matchmax --file weights.txt [--algo greedy|backtrack|hungarian] [--all]
//
// Flags are also readable from the environment with a MATCHMAX_ prefix
// (MATCHMAX_FILE, MATCHMAX_ALGO, ...).
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/matchmax/matchmax/assign"
	"github.com/matchmax/matchmax/matrixio"
)

// algorithms maps flag values to solver selectors, in display order.
var algorithms = []struct {
	name string
	algo assign.Algorithm
}{
	{"greedy", assign.Greedy},
	{"backtrack", assign.Backtrack},
	{"hungarian", assign.Hungarian},
}

func algorithmFromName(name string) (assign.Algorithm, error) {
	for _, a := range algorithms {
		if a.name == name {
			return a.algo, nil
		}
	}

	return 0, fmt.Errorf("unknown algorithm %q (want greedy, backtrack or hungarian)", name)
}

func setupConfig() *viper.Viper {
	pflag.String("file", "", "path to the ';'-separated weight matrix")
	pflag.String("algo", assign.Hungarian.String(), "solver: greedy, backtrack or hungarian")
	pflag.Bool("all", false, "run all three solvers and compare their sums")
	pflag.Bool("debug", false, "enable debug logging")
	pflag.Bool("no-color", false, "disable styled output")
	pflag.Parse()

	v := viper.New()
	_ = v.BindPFlags(pflag.CommandLine)
	v.SetEnvPrefix("matchmax")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = logger
}

func main() {
	v := setupConfig()
	setupLogging(v.GetBool("debug"))

	r := newRenderer(!v.GetBool("no-color"))
	if err := run(v, r); err != nil {
		fmt.Fprintln(os.Stderr, r.errorLine(err))
		os.Exit(1)
	}
}

func run(v *viper.Viper, r *renderer) error {
	path := v.GetString("file")
	if path == "" {
		return fmt.Errorf("no input file: pass --file or set MATCHMAX_FILE")
	}

	m, err := matrixio.Load(path)
	if err != nil {
		return err
	}
	log.Debug().Str("file", path).Msg("matrix loaded")

	fmt.Print(r.matrixBlock(m))

	if v.GetBool("all") {
		results := make([]solverResult, 0, len(algorithms))
		for _, a := range algorithms {
			sol, serr := assign.Solve(m, assign.Options{Algo: a.algo})
			if serr != nil {
				return fmt.Errorf("%s: %w", a.name, serr)
			}
			results = append(results, solverResult{name: a.name, sol: sol})
		}
		fmt.Print(r.comparisonBlock(results))

		return nil
	}

	algo, err := algorithmFromName(v.GetString("algo"))
	if err != nil {
		return err
	}
	sol, err := assign.Solve(m, assign.Options{Algo: algo})
	if err != nil {
		return err
	}
	fmt.Print(r.solutionBlock(algo.String(), sol))

	return nil
}
