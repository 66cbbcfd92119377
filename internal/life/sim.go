package life

import "emberlife/internal/core"

// Sim runs a self-reseeding Game of Life over two ping-pong textures. Each
// Step counts the live population of the current texture, then applies the
// update rule reading the current texture and writing the other, and swaps
// their roles. The count pass always completes before the step pass that
// consumes its snapshot; a texture is never source and destination of the
// same pass.
type Sim struct {
	size core.Size

	tex [2]*core.Texture
	cur int // index of the texture holding the most recent state

	counter    core.Counter
	dispatcher *core.Dispatcher

	population uint32 // snapshot produced by the last count pass
	generation uint64
}

// New constructs a simulation for the provided configuration.
func New(cfg Config) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Sim{
		size:       core.Size{W: cfg.Width, H: cfg.Height},
		dispatcher: core.NewDispatcher(cfg.Workers),
	}
	s.tex[0] = core.NewTexture(cfg.Width, cfg.Height)
	s.tex[1] = core.NewTexture(cfg.Width, cfg.Height)
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "emberlife" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return s.size }

// Cells exposes the most recently written state texture.
func (s *Sim) Cells() []float32 { return s.tex[s.cur].Cells() }

// Population returns the live-cell count snapshot from the last count pass.
func (s *Sim) Population() uint32 { return s.population }

// Generation returns the number of steps applied since the last Reset.
func (s *Sim) Generation() uint64 { return s.generation }

// Reset seeds the current texture from the coordinate hash. The seeder is a
// pure function of coordinates, so Reset is deterministic and idempotent:
// there is no seed parameter and no hidden generator state.
func (s *Sim) Reset() {
	s.dispatcher.Dispatch(s.size.W, s.size.H, seedKernel(s.tex[s.cur]))
	s.generation = 0
	s.refreshPopulation()
}

// Step advances the simulation by one generation.
func (s *Sim) Step() {
	s.refreshPopulation()

	src := s.tex[s.cur]
	dst := s.tex[1-s.cur]
	s.dispatcher.Dispatch(s.size.W, s.size.H, stepKernel(src, dst, s.population))

	s.cur = 1 - s.cur
	s.generation++
}

// refreshPopulation runs the count pass over the current texture. The
// counter is reset here, on the host side, before every dispatch; the
// snapshot is taken only after the dispatch barrier.
func (s *Sim) refreshPopulation() {
	s.counter.Reset()
	s.dispatcher.Dispatch(s.size.W, s.size.H, countKernel(s.tex[s.cur], &s.counter))
	s.population = s.counter.Value()
}
