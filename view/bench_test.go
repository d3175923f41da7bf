package view_test

import (
	"testing"

	"github.com/katalvlaran/lvarray/view"
)

const benchLen = 4096

func benchVector(b *testing.B) view.Vector {
	b.Helper()
	v, err := view.Zeros(benchLen)
	if err != nil {
		b.Fatal(err)
	}
	return v
}

// BenchmarkAt measures the checked-read hot path (bounds check + mapping).
func BenchmarkAt(b *testing.B) {
	v := benchVector(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_, _ = v.At(n % benchLen)
	}
}

// BenchmarkSet measures the checked-write hot path.
func BenchmarkSet(b *testing.B) {
	v := benchVector(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = v.Set(n%benchLen, 1)
	}
}

// BenchmarkScale measures bulk delegation against the element loop it replaces.
func BenchmarkScale(b *testing.B) {
	v := benchVector(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = v.Scale(1.0000001)
	}
}

// BenchmarkDotStrided measures a strided inner product through the backend.
func BenchmarkDotStrided(b *testing.B) {
	base := benchVector(b)
	x, err := base.ViewStrided(0, benchLen, 2)
	if err != nil {
		b.Fatal(err)
	}
	y, err := base.ViewStrided(1, benchLen, 2)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_, _ = x.Dot(&y)
	}
}
