package wsview

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/smasonuk/geodesic"
	"github.com/smasonuk/geodesic/config"
)

type MarkerData struct {
	Position   [3]float64 `json:"position"`
	Color      string     `json:"color"`
	Glossiness float64    `json:"glossiness"`
}

type ScenePayload struct {
	Type    string       `json:"type"`
	Markers []MarkerData `json:"markers"`
	Lights  [][3]float64 `json:"lights"`
	Ground  bool         `json:"ground"`
	Count   int          `json:"count"`
}

type message struct {
	Type string `json:"type"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server streams a scene to websocket clients. The scene must not change once
// the server is created.
type Server struct {
	payload ScenePayload

	clientsMu sync.Mutex
	clients   map[*websocket.Conn]*sync.Mutex
}

func NewServer(scene *geodesic.Scene) *Server {
	return &Server{
		payload: NewScenePayload(scene),
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}
}

func NewScenePayload(scene *geodesic.Scene) ScenePayload {
	markers := scene.Markers()
	p := ScenePayload{
		Type:    "scene",
		Markers: make([]MarkerData, 0, len(markers)),
		Ground:  scene.HasGround(),
		Count:   len(markers),
	}
	for _, m := range markers {
		p.Markers = append(p.Markers, MarkerData{
			Position:   m.Position.Array(),
			Color:      config.FormatColor(m.Color),
			Glossiness: m.Glossiness,
		})
	}
	for _, l := range scene.Lights() {
		p.Lights = append(p.Lights, l.Array())
	}
	return p
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// Clients returns the number of open connections.
func (s *Server) Clients() int {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	return len(s.clients)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	connMu := &sync.Mutex{}
	s.clientsMu.Lock()
	s.clients[conn] = connMu
	s.clientsMu.Unlock()
	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.clientsMu.Unlock()
	}()

	if err := s.write(conn, connMu, s.payload); err != nil {
		log.Println("WebSocket write error:", err)
		return
	}

	for {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Println("WebSocket read error:", err)
			}
			return
		}

		var reply any
		switch msg.Type {
		case "refresh":
			reply = s.payload
		case "ping":
			reply = message{Type: "pong"}
		default:
			reply = message{Type: "error"}
		}
		if err := s.write(conn, connMu, reply); err != nil {
			log.Println("WebSocket write error:", err)
			return
		}
	}
}

func (s *Server) write(conn *websocket.Conn, mu *sync.Mutex, v any) error {
	mu.Lock()
	defer mu.Unlock()
	return conn.WriteJSON(v)
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down %s: %w", addr, err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Println("Server stopped.")
	return nil
}
