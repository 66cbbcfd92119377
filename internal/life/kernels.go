package life

import "emberlife/internal/core"

const (
	// seedThreshold is the hash value a cell must exceed to start alive.
	seedThreshold = 0.9
	// reseedChance is the per-cell probability of a rule-dead cell being
	// flipped alive while the population gate is open.
	reseedChance = 0.001
	// reseedDivisor sets the population gate: reseeding activates only
	// while the counted population is below totalCells/reseedDivisor.
	reseedDivisor = 10
)

// hash mixes a 32-bit key into a decorrelated 32-bit value. The exact
// constant and shift sequence is load-bearing: seeded boards and reseed
// decisions are reproducible bit-for-bit across runs and invocation orders
// because every random draw is a pure function of its key.
func hash(key uint32) uint32 {
	state := key ^ 2747636419
	state *= 2654435769
	state ^= state >> 16
	state *= 2654435769
	state ^= state >> 16
	state *= 2654435769
	return state
}

// randFloat maps a key to a pseudo-random float32 in [0, 1].
func randFloat(key uint32) float32 {
	return float32(hash(key)) / 4294967295.0
}

// cellKey packs coordinates into a hash key, x in the low 16 bits and y in
// the next 16. Grid axes are capped at 1<<16 so the packing is unambiguous.
func cellKey(x, y int) uint32 {
	return uint32(y)<<16 | uint32(x)
}

// seedCell decides the initial state of a cell purely from its coordinates.
func seedCell(x, y int) float32 {
	if randFloat(cellKey(x, y)) > seedThreshold {
		return 1
	}
	return 0
}

// countAlive sums the live cells in the Moore neighborhood of (x, y). Reads
// at the grid boundary rely on the texture's clamp-to-edge policy, so edge
// cells see duplicated edge samples rather than wrapped or zeroed ones.
func countAlive(src *core.Texture, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if src.Load(x+dx, y+dy) != 0 {
				n++
			}
		}
	}
	return n
}

// stepCell computes the next state of one cell: the standard birth/survival
// rule first, then the reseed perturbation for rule-dead cells while the
// population snapshot is below the gate. population is the frozen result of
// the count pass that preceded this step; total is the cell count of the
// grid. Pure function of its arguments, independent of every other cell's
// invocation in the same pass.
func stepCell(src *core.Texture, x, y int, population, total uint32) float32 {
	n := countAlive(src, x, y)

	alive := false
	switch {
	case n == 3:
		alive = true
	case n == 2:
		alive = src.Load(x, y) != 0
	}

	if !alive && population < total/reseedDivisor {
		if randFloat(cellKey(x, y)+uint32(n)) < reseedChance {
			alive = true
		}
	}

	if alive {
		return 1
	}
	return 0
}

// seedKernel is the init pass: overwrite every destination cell from the
// coordinate hash. No reads of prior state occur.
func seedKernel(dst *core.Texture) core.Kernel {
	return func(x, y int) {
		dst.Store(x, y, seedCell(x, y))
	}
}

// stepKernel is the update pass: read src, write dst. src and dst must be
// distinct textures; the host upholds that invariant via the ping-pong swap.
func stepKernel(src, dst *core.Texture, population uint32) core.Kernel {
	total := uint32(src.Size().Total())
	return func(x, y int) {
		dst.Store(x, y, stepCell(src, x, y, population, total))
	}
}

// countKernel is the reduction pass: one atomic increment per live cell.
// Invocations beyond the texture bounds (the index space is rounded up to
// whole workgroups) are skipped so the final value is exactly the number of
// live cells regardless of scheduling order.
func countKernel(src *core.Texture, counter *core.Counter) core.Kernel {
	size := src.Size()
	return func(x, y int) {
		if x >= size.W || y >= size.H {
			return
		}
		if src.At(x, y) != 0 {
			counter.Inc()
		}
	}
}
