package main

import (
	"flag"
	"log"
	"net/http"

	"emberlife/internal/life"
	"emberlife/internal/server"
)

func main() {
	cfg := life.DefaultConfig()
	addr := flag.String("addr", ":8080", "listen address")
	tps := flag.Int("tps", 30, "simulation ticks per second")
	flag.IntVar(&cfg.Width, "w", cfg.Width, "grid width in cells")
	flag.IntVar(&cfg.Height, "h", cfg.Height, "grid height in cells")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "dispatch worker count (0 = one per CPU)")
	flag.Parse()

	sim, err := life.New(cfg)
	if err != nil {
		log.Fatalf("configuring simulation: %v", err)
	}

	hub := server.New(sim, *tps)
	go hub.Run()

	log.Printf("streaming %dx%d grid on ws://%s/ws", cfg.Width, cfg.Height, *addr)
	log.Fatal(http.ListenAndServe(*addr, hub.Handler()))
}
