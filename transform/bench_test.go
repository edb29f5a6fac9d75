package transform_test

import (
	"testing"

	"github.com/katalvlaran/tessera/grid"
	"github.com/katalvlaran/tessera/transform"
)

// BenchmarkApplyRotate90Dense measures a quarter turn of a 1024×1024 byte
// grid in flat storage, default (row-major) traversal.
func BenchmarkApplyRotate90Dense(b *testing.B) {
	const n = 1024
	src, err := grid.MakeDense[byte](n, n)
	if err != nil {
		b.Fatalf("setup MakeDense failed: %v", err)
	}
	op := transform.Rotate(90)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := transform.Apply(src, op); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkApplyRotate90Blocked measures the same turn over blocked storage
// driven block-major, the tile-friendly pairing.
func BenchmarkApplyRotate90Blocked(b *testing.B) {
	const n = 1024
	src, err := grid.MakeBlocked64K[byte](n, n)
	if err != nil {
		b.Fatalf("setup MakeBlocked64K failed: %v", err)
	}
	op := transform.Rotate(90)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := transform.Apply(src, op, transform.WithOrder(grid.OrderBlockMajor)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkApplyRotate90BlockedAgainstGrain measures blocked storage driven
// row-major: every step strides across tiles.
func BenchmarkApplyRotate90BlockedAgainstGrain(b *testing.B) {
	const n = 1024
	src, err := grid.MakeBlocked64K[byte](n, n)
	if err != nil {
		b.Fatalf("setup MakeBlocked64K failed: %v", err)
	}
	op := transform.Rotate(90)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := transform.Apply(src, op, transform.WithOrder(grid.OrderRowMajor)); err != nil {
			b.Fatal(err)
		}
	}
}
