package server

import (
	"io/fs"
	"log"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadMessage is the event pushed to browsers when content changes.
type reloadMessage struct {
	Type string `json:"type"`
}

// Hub tracks connected live-reload clients and broadcasts reload events.
type Hub struct {
	mu      sync.Mutex
	clients map[string]*websocket.Conn
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[string]*websocket.Conn)}
}

// ServeWS upgrades the request and keeps the connection registered until
// the client disconnects. Clients never send meaningful messages; the read
// loop only detects closure.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("reload: websocket upgrade: %v", err)
		return
	}

	id := uuid.NewString()
	h.mu.Lock()
	h.clients[id] = conn
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, id)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast sends a reload event to every connected client. Clients that
// fail the write are dropped.
func (h *Hub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range h.clients {
		if err := conn.WriteJSON(reloadMessage{Type: "reload"}); err != nil {
			log.Printf("reload: dropping client %s: %v", id, err)
			conn.Close()
			delete(h.clients, id)
		}
	}
}

// ClientCount reports how many browsers are connected.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// debounceWindow coalesces bursts of filesystem events (editors often write
// several times per save) into one reload.
const debounceWindow = 200 * time.Millisecond

// WatchContent watches dir recursively and invokes onChange, debounced,
// whenever files are created, written, renamed, or removed. It returns a
// stop function that ends the watch.
func WatchContent(dir string, onChange func()) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	addRecursive := func(root string) error {
		return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return watcher.Add(path)
			}
			return nil
		})
	}
	if err := addRecursive(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		var timer *time.Timer
		for {
			select {
			case <-done:
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				// New directories must be added to the watch.
				if event.Has(fsnotify.Create) {
					_ = addRecursive(event.Name)
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounceWindow, onChange)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("reload: watcher: %v", err)
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}
