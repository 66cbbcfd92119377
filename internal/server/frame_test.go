package server

import (
	"slices"
	"testing"
)

func TestPackCells(t *testing.T) {
	cells := []float32{1, 0, 0, 1, 0, 0, 0, 1, 1, 0}
	got := packCells(cells)

	// 10 cells round up to 2 bytes, MSB first.
	want := []byte{0b10010001, 0b10000000}
	if !slices.Equal(got, want) {
		t.Fatalf("packCells = %08b, want %08b", got, want)
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	cells := make([]float32, 67)
	for i := range cells {
		if i%3 == 0 || i == 66 {
			cells[i] = 1
		}
	}

	got := unpackCells(packCells(cells), len(cells))
	if !slices.Equal(got, cells) {
		t.Fatal("pack/unpack round trip altered the cells")
	}
}

func TestPackedFrameLength(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 640 * 400} {
		got := len(packCells(make([]float32, n)))
		want := (n + 7) / 8
		if got != want {
			t.Fatalf("n=%d: frame length %d, want %d", n, got, want)
		}
	}
}
