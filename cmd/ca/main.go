//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"emberlife/internal/app"
	"emberlife/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := life.New(cfg.Life)
	if err != nil {
		log.Fatalf("configuring simulation: %v", err)
	}
	sim.Reset()

	game := app.New(sim, cfg.Scale)
	size := sim.Size()

	ebiten.SetWindowTitle("emberlife")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
