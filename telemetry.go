package main

import (
	"encoding/json"
	"log"
	"math"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// telemetryCounters tracks propagation activity with lock-free counters. All
// methods are nil-safe so the core can run without diagnostics attached.
type telemetryCounters struct {
	emissions       atomic.Uint64
	candidates      atomic.Uint64
	deliveries      atomic.Uint64
	reactions       atomic.Uint64
	lastRadiusMilli atomic.Uint64
}

type telemetrySnapshot struct {
	Emissions  uint64  `json:"emissions"`
	Candidates uint64  `json:"candidates"`
	Deliveries uint64  `json:"deliveries"`
	Reactions  uint64  `json:"reactions"`
	LastRadius float64 `json:"lastRadius"`
}

func newTelemetryCounters() *telemetryCounters {
	return &telemetryCounters{}
}

func (t *telemetryCounters) RecordEmission(radius float64, candidates int) {
	if t == nil {
		return
	}
	if candidates < 0 {
		candidates = 0
	}
	t.emissions.Add(1)
	t.candidates.Add(uint64(candidates))
	t.lastRadiusMilli.Store(uint64(math.Round(radius * 1000)))
}

func (t *telemetryCounters) RecordDeliveries(n int) {
	if t == nil || n <= 0 {
		return
	}
	t.deliveries.Add(uint64(n))
}

func (t *telemetryCounters) RecordReaction() {
	if t == nil {
		return
	}
	t.reactions.Add(1)
}

func (t *telemetryCounters) Snapshot() telemetrySnapshot {
	if t == nil {
		return telemetrySnapshot{}
	}
	return telemetrySnapshot{
		Emissions:  t.emissions.Load(),
		Candidates: t.candidates.Load(),
		Deliveries: t.deliveries.Load(),
		Reactions:  t.reactions.Load(),
		LastRadius: float64(t.lastRadiusMilli.Load()) / 1000,
	}
}

// emissionEvent is the wire record for one propagated sound.
type emissionEvent struct {
	Type     string  `json:"type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	VX       float64 `json:"vx"`
	VY       float64 `json:"vy"`
	Loudness float64 `json:"loudness"`
	Quality  float64 `json:"quality"`
	Radius   float64 `json:"radius"`
	At       int64   `json:"at"`
}

// reactionEvent is the wire record for one triggered listener reaction.
type reactionEvent struct {
	Type     string  `json:"type"`
	Guard    string  `json:"guard"`
	Loudness float64 `json:"loudness"`
	SourceX  float64 `json:"sourceX"`
	SourceY  float64 `json:"sourceY"`
	Quality  float64 `json:"quality"`
	At       int64   `json:"at"`
}

// eventHub fans emission and reaction events out to websocket observers. A
// nil hub drops everything, so gameplay code can broadcast unconditionally.
type eventHub struct {
	mu   sync.Mutex
	subs map[*websocket.Conn]struct{}
}

func newEventHub() *eventHub {
	return &eventHub{subs: make(map[*websocket.Conn]struct{})}
}

func (h *eventHub) subscribe(conn *websocket.Conn) {
	h.mu.Lock()
	h.subs[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *eventHub) unsubscribe(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.subs, conn)
	h.mu.Unlock()
}

// Broadcast marshals the event once and writes it to every observer. Dead
// connections are dropped in place.
func (h *eventHub) Broadcast(v any) {
	if h == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("telemetry event encode failed: %v", err)
		return
	}
	h.mu.Lock()
	for conn := range h.subs {
		conn.SetWriteDeadline(time.Now().Add(telemetryWriteWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.subs, conn)
		}
	}
	h.mu.Unlock()
}

// startTelemetryServer serves the diagnostics snapshot and the websocket
// event feed on addr. It never blocks the caller.
func startTelemetryServer(addr string, counters *telemetryCounters, hub *eventHub) {
	mux := http.NewServeMux()

	mux.HandleFunc("/diagnostics", func(w http.ResponseWriter, r *http.Request) {
		payload := struct {
			Status     string            `json:"status"`
			ServerTime int64             `json:"serverTime"`
			Counters   telemetrySnapshot `json:"counters"`
		}{
			Status:     "ok",
			ServerTime: time.Now().UnixMilli(),
			Counters:   counters.Snapshot(),
		}
		data, err := json.Marshal(payload)
		if err != nil {
			http.Error(w, "failed to encode", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	mux.HandleFunc("/events", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("telemetry upgrade failed: %v", err)
			return
		}
		hub.subscribe(conn)
		// Observers only listen; the read loop exists to notice closes.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.unsubscribe(conn)
				conn.Close()
				return
			}
		}
	})

	go func() {
		log.Printf("telemetry server listening on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("telemetry server stopped: %v", err)
		}
	}()
}
