// Package stream broadcasts draw commands to websocket viewers as JSON.
package stream

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"procgen/internal/core"
	"procgen/internal/draw"
)

// clientBuffer is the number of frames queued per viewer before new frames
// are dropped for that viewer.
const clientBuffer = 8

// Frame is the message sent for each tick.
type Frame struct {
	Index    int            `json:"frame"`
	Sketch   string         `json:"sketch"`
	Commands []draw.Command `json:"commands"`
}

// Info describes the stream to a viewer before it connects.
type Info struct {
	Sketch string `json:"sketch"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Hub is a draw.Sink that fans frames out to connected viewers. Slow viewers
// lose frames instead of stalling the animation.
type Hub struct {
	info     Info
	upgrader websocket.Upgrader

	mutex   sync.RWMutex
	viewers map[int]*viewer
	nextID  int
	frame   int
	closed  bool

	dropped atomic.Int64
}

type viewer struct {
	ch   chan []byte
	conn *websocket.Conn
}

// NewHub returns a hub for the named sketch.
func NewHub(name string, size core.Size) *Hub {
	return &Hub{
		info:    Info{Sketch: name, Width: size.W, Height: size.H},
		viewers: make(map[int]*viewer),
	}
}

// addViewer registers v and reports false once the hub is closed.
func (h *Hub) addViewer(v *viewer) (int, bool) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.closed {
		return 0, false
	}
	id := h.nextID
	h.nextID++
	h.viewers[id] = v
	return id, true
}

func (h *Hub) delViewer(id int) {
	h.mutex.Lock()
	if v, ok := h.viewers[id]; ok {
		close(v.ch)
		delete(h.viewers, id)
	}
	h.mutex.Unlock()
}

// Clients returns the number of connected viewers.
func (h *Hub) Clients() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.viewers)
}

// Dropped returns how many frame deliveries were skipped for slow viewers.
func (h *Hub) Dropped() int64 { return h.dropped.Load() }

// Draw encodes cmds as the next frame and queues it for every viewer.
func (h *Hub) Draw(cmds []draw.Command) error {
	h.mutex.Lock()
	idx := h.frame
	h.frame++
	h.mutex.Unlock()

	js, err := json.Marshal(Frame{Index: idx, Sketch: h.info.Sketch, Commands: cmds})
	if err != nil {
		return err
	}
	h.mutex.RLock()
	for _, v := range h.viewers {
		select {
		case v.ch <- js:
		default:
			h.dropped.Add(1)
		}
	}
	h.mutex.RUnlock()
	return nil
}

// Close disconnects every viewer and refuses new ones. Hijacked websocket
// connections outlive http.Server.Shutdown, so they are closed here.
func (h *Hub) Close() {
	h.mutex.Lock()
	h.closed = true
	viewers := h.viewers
	h.viewers = make(map[int]*viewer)
	h.mutex.Unlock()

	deadline := time.Now().Add(time.Second)
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "stream closed")
	for _, v := range viewers {
		close(v.ch)
		_ = v.conn.WriteControl(websocket.CloseMessage, msg, deadline)
		_ = v.conn.Close()
	}
}

// WebsocketHandler upgrades the request and streams frames until the viewer
// goes away.
func (h *Hub) WebsocketHandler(w http.ResponseWriter, r *http.Request) {
	s, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		core.Logger().Warn("websocket upgrade failed", "err", err)
		return
	}
	defer s.Close()

	ch := make(chan []byte, clientBuffer)
	id, ok := h.addViewer(&viewer{ch: ch, conn: s})
	if !ok {
		return
	}
	core.Logger().Info("viewer connected", "id", id, "remote", r.RemoteAddr)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for js := range ch {
			if err := s.WriteMessage(websocket.TextMessage, js); err != nil {
				core.Logger().Warn("websocket write failed", "id", id, "err", err)
				return
			}
		}
	}()

	for {
		if _, _, err := s.ReadMessage(); err != nil {
			break
		}
	}
	h.delViewer(id)
	<-done
	core.Logger().Info("viewer disconnected", "id", id)
}

// InfoHandler serves the stream description as JSON.
func (h *Hub) InfoHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.info); err != nil {
		core.Logger().Warn("encode stream info", "err", err)
	}
}

// Handler returns a mux serving /ws and /info.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.WebsocketHandler)
	mux.HandleFunc("/info", h.InfoHandler)
	return mux
}
