package core

import "slices"

// Texture stores a 2D grid of single-channel float cell values in row-major
// order. Cell values are semantically boolean: every store is exactly 0 or 1.
//
// Out-of-range access follows a clamp-to-edge policy: Load clamps the
// coordinates to the nearest valid cell and Store drops the write. This
// matches the robust-access contract of a GPU storage texture and is the
// documented edge semantics for neighbor lookups at the grid boundary, where
// an edge cell sees its own row or column duplicated in place of the missing
// neighbors.
type Texture struct {
	w, h int
	data []float32
}

// NewTexture allocates a zeroed texture with the given dimensions.
func NewTexture(w, h int) *Texture {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Texture{w: w, h: h, data: make([]float32, w*h)}
}

// Size returns the texture dimensions.
func (t *Texture) Size() Size { return Size{W: t.w, H: t.h} }

// Cells exposes the backing slice so hosts can read values directly.
func (t *Texture) Cells() []float32 { return t.data }

// Load reads the value at (x, y), clamping out-of-range coordinates to the
// nearest edge cell.
func (t *Texture) Load(x, y int) float32 {
	if x < 0 {
		x = 0
	} else if x >= t.w {
		x = t.w - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.h {
		y = t.h - 1
	}
	return t.data[y*t.w+x]
}

// Store writes the value at (x, y). Out-of-range writes are dropped.
func (t *Texture) Store(x, y int, v float32) {
	if x < 0 || x >= t.w || y < 0 || y >= t.h {
		return
	}
	t.data[y*t.w+x] = v
}

// At reads the value at (x, y) without clamping. Host-side use only; the
// caller is responsible for the coordinates being in range.
func (t *Texture) At(x, y int) float32 { return t.data[y*t.w+x] }

// Clear fills the texture with zeros.
func (t *Texture) Clear() {
	for i := range t.data {
		t.data[i] = 0
	}
}

// Clone returns an independent copy of the texture.
func (t *Texture) Clone() *Texture {
	return &Texture{w: t.w, h: t.h, data: slices.Clone(t.data)}
}

// Equal reports whether two textures have identical dimensions and contents.
func (t *Texture) Equal(o *Texture) bool {
	return t.w == o.w && t.h == o.h && slices.Equal(t.data, o.data)
}
