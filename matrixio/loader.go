// Package matrixio — text → matrix.Dense loader.
//
// The loader is deliberately strict: the first line fixes the width, and any
// later line with a different cell count is a structural error surfaced as
// matrix.ErrOutOfRange (the same sentinel an out-of-bounds Set would raise).

package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/matchmax/matchmax/matrix"
)

// cellSeparator splits cells within a line.
const cellSeparator = ";"

// Parse reads a ';'-separated matrix from r.
//
// Stage 1 (Validate): collect non-blank lines; none at all is ErrEmptyInput.
// Stage 2 (Prepare): allocate a Dense sized by line count × first-line width.
// Stage 3 (Finalize): parse and set every cell.
//
// Errors: ErrEmptyInput, ErrBadCell, matrix.ErrOutOfRange (width mismatch),
// plus any read error from r.
//
// Complexity: O(H·W) time and memory.
func Parse(r io.Reader) (*matrix.Dense, error) {
	scanner := bufio.NewScanner(r)

	var lines []string
	for scanner.Scan() {
		// Blank lines (including a trailing newline) carry no cells.
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("matrixio: read: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	width := strings.Count(lines[0], cellSeparator) + 1
	m, err := matrix.NewDense(len(lines), width)
	if err != nil {
		return nil, err
	}

	for i, line := range lines {
		cells := strings.Split(line, cellSeparator)
		if len(cells) != width {
			return nil, fmt.Errorf("matrixio: line %d has %d cells, want %d: %w",
				i+1, len(cells), width, matrix.ErrOutOfRange)
		}
		for j, cell := range cells {
			v, perr := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
			if perr != nil {
				return nil, fmt.Errorf("matrixio: line %d cell %d %q: %w",
					i+1, j+1, cell, ErrBadCell)
			}
			if serr := m.Set(i, j, v); serr != nil {
				return nil, serr
			}
		}
	}

	log.Debug().
		Int("rows", m.Rows()).
		Int("cols", m.Cols()).
		Msg("matrix parsed")

	return m, nil
}

// Load reads a matrix from the file at path. See Parse for the format.
func Load(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}
