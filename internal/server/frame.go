package server

// Frames are sent as one bit per cell to keep broadcast payloads small: a
// 640x400 grid packs into 32 KB instead of a 256 KB float buffer.

// packCells packs cell values (0 dead, non-zero alive) into a bitmap, most
// significant bit first within each byte.
func packCells(cells []float32) []byte {
	buf := make([]byte, (len(cells)+7)/8)
	for i, c := range cells {
		if c != 0 {
			buf[i>>3] |= 1 << (7 - uint(i&7))
		}
	}
	return buf
}

// unpackCells expands a bitmap produced by packCells back into n cell values.
func unpackCells(buf []byte, n int) []float32 {
	cells := make([]float32, n)
	for i := range cells {
		if buf[i>>3]&(1<<(7-uint(i&7))) != 0 {
			cells[i] = 1
		}
	}
	return cells
}
