package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"emberlife/internal/core"

	"github.com/gorilla/websocket"
)

// FrameMeta precedes every binary grid frame on the wire.
type FrameMeta struct {
	Type       string `json:"type"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Generation uint64 `json:"generation"`
	Population uint32 `json:"population"`
}

// Hub runs the simulation on a fixed tick and broadcasts each generation to
// the connected websocket clients as a JSON metadata message followed by a
// bit-packed binary grid frame.
type Hub struct {
	sim core.Sim
	tps int

	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex
}

// New constructs a Hub driving the provided simulation at the given TPS.
func New(sim core.Sim, tps int) *Hub {
	return &Hub{
		sim: sim,
		tps: tps,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Handler returns the HTTP handler exposing the websocket endpoint at /ws.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.handleWebSocket)
	return mux
}

func (h *Hub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("websocket upgrade:", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = &sync.Mutex{}
	h.mu.Unlock()
	log.Printf("client connected (%d total)", h.clientCount())

	// Drain reads so close frames and pings are processed; the simulation
	// stream is one-way.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
	h.mu.Unlock()
}

// Run steps the simulation at the configured tick rate and broadcasts each
// generation. It never returns; callers run it on its own goroutine.
func (h *Hub) Run() {
	h.sim.Reset()
	fs := core.NewFixedStep(h.tps)
	for {
		if !fs.ShouldStep() {
			time.Sleep(fs.Idle())
			continue
		}
		h.sim.Step()
		h.broadcast()
	}
}

func (h *Hub) broadcast() {
	if h.clientCount() == 0 {
		return
	}

	size := h.sim.Size()
	meta := FrameMeta{
		Type:       "frame",
		Width:      size.W,
		Height:     size.H,
		Generation: h.sim.Generation(),
		Population: h.sim.Population(),
	}
	frame := packCells(h.sim.Cells())

	h.mu.RLock()
	conns := make(map[*websocket.Conn]*sync.Mutex, len(h.clients))
	for conn, mu := range h.clients {
		conns[conn] = mu
	}
	h.mu.RUnlock()

	for conn, mu := range conns {
		mu.Lock()
		err := conn.WriteJSON(meta)
		if err == nil {
			err = conn.WriteMessage(websocket.BinaryMessage, frame)
		}
		mu.Unlock()
		if err != nil {
			log.Println("client write:", err)
			h.drop(conn)
		}
	}
}
