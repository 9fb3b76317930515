package matrixio

import (
	"fmt"
	"io"
	"strings"

	"github.com/matchmax/matchmax/matrix"
)

// Fprint writes m to w as tab-separated rows, one line per matrix row.
//
// Errors: matrix.ErrNilMatrix on a nil matrix; write errors from w.
// Complexity: O(H·W).
func Fprint(w io.Writer, m matrix.Matrix) error {
	if m == nil {
		return matrix.ErrNilMatrix
	}

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			sep := "\t"
			if j == m.Cols()-1 {
				sep = "\n"
			}
			if _, err = fmt.Fprintf(w, "%d%s", v, sep); err != nil {
				return fmt.Errorf("matrixio: write: %w", err)
			}
		}
	}

	return nil
}

// Sprint renders m via Fprint into a string. A nil matrix yields "".
func Sprint(m matrix.Matrix) string {
	var sb strings.Builder
	if err := Fprint(&sb, m); err != nil {
		return ""
	}

	return sb.String()
}
