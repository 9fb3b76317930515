// SPDX-License-Identifier: MIT
// Package matrixio: sentinel error set.

package matrixio

import "errors"

var (
	// ErrEmptyInput is returned when the source contains no matrix rows at
	// all (empty file or only blank lines).
	ErrEmptyInput = errors.New("matrixio: empty input")

	// ErrBadCell is returned when a cell cannot be parsed as a base-10
	// int64. The wrapping error carries the line/column position.
	ErrBadCell = errors.New("matrixio: cell is not an integer")
)
