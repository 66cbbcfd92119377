//go:build ebiten

package ui

import (
	"fmt"

	"emberlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws a small status readout on top of the simulation view:
// generation, live population, and whether the reseed gate is open.
type Overlay struct {
	sim     core.Sim
	visible bool
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, visible: true}
}

// Update processes overlay key bindings.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
}

// Draw renders the status readout.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	pop := o.sim.Population()
	total := o.sim.Size().Total()
	gate := "closed"
	if int(pop) < total/10 {
		gate = "open"
	}
	msg := fmt.Sprintf("gen %d  pop %d/%d  reseed %s", o.sim.Generation(), pop, total, gate)
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}
