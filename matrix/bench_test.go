package matrix_test

import (
	"testing"

	"github.com/matchmax/matchmax/matrix"
)

// newBenchDense builds an n×n matrix with deterministic values.
func newBenchDense(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, int64((i*31+j*17)%101))
		}
	}
	return m
}

func BenchmarkDense_At(b *testing.B) {
	m := newBenchDense(b, 128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.At(i%128, (i*7)%128)
	}
}

func BenchmarkDense_Clone(b *testing.B) {
	m := newBenchDense(b, 128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Clone()
	}
}

func BenchmarkDense_RowMin(b *testing.B) {
	m := newBenchDense(b, 128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.RowMin(i % 128)
	}
}
