// Package matrixio loads weight matrices from text and prints them back.
//
// Input format: one matrix row per line, cells separated by ';'. The first
// line fixes the width; every following line must carry exactly the same
// number of cells. Values are base-10 int64.
//
// Example input:
//
//	5;4;1
//	4;1;9
//
// Parse reads from any io.Reader; Load is the path convenience. Fprint and
// Sprint render a matrix as tab-separated rows for terminal display.
//
// Errors are strict sentinels (ErrEmptyInput, ErrBadCell) plus
// matrix.ErrOutOfRange for structural mismatches, all matchable via
// errors.Is.
package matrixio
