package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Total returns the number of cells in the grid.
func (s Size) Total() int { return s.W * s.H }

// Sim is the contract the front-ends (viewer, stream server) consume.
// There is exactly one automaton in this repository; the interface only
// decouples the presentation layers from the simulation package.
type Sim interface {
	Name() string
	Size() Size
	Reset()
	Step()
	Cells() []float32
	Population() uint32
	Generation() uint64
}
