// Package ws serves tilemerge games over WebSocket. Each connection owns
// one session; the client sends JSON requests and receives the game state
// after every one of them.
package ws

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tilemerge/internal/session"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// Options configures a Server.
type Options struct {
	DefaultWidth  int
	DefaultHeight int
}

// Server upgrades HTTP requests and plays one game per connection.
type Server struct {
	sessions *session.Manager
	logger   *log.Logger
	opts     Options
	upgrader websocket.Upgrader
}

// NewServer creates a server backed by the given session manager.
func NewServer(sessions *session.Manager, logger *log.Logger, opts Options) *Server {
	if opts.DefaultWidth == 0 {
		opts.DefaultWidth = 4
	}
	if opts.DefaultHeight == 0 {
		opts.DefaultHeight = 4
	}
	return &Server{
		sessions: sessions,
		logger:   logger,
		opts:     opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Handler returns the HTTP routes: /ws and /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.ServeWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting WebSocket server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Stopping WebSocket server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// ServeWS creates a session sized by the width/height query parameters and
// upgrades the connection.
func (s *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	width, err := queryInt(r, "width", s.opts.DefaultWidth)
	if err != nil {
		http.Error(w, "bad width", http.StatusBadRequest)
		return
	}
	height, err := queryInt(r, "height", s.opts.DefaultHeight)
	if err != nil {
		http.Error(w, "bad height", http.StatusBadRequest)
		return
	}

	st, err := s.sessions.Create(width, height, 0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.sessions.Pin(st.ID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.sessions.Delete(st.ID)
		s.logger.Warn("WebSocket upgrade failed", "err", err)
		return
	}

	c := &client{
		server:    s,
		conn:      conn,
		send:      make(chan Response, 16),
		done:      make(chan struct{}),
		sessionID: st.ID,
	}
	s.logger.Info("Client connected", "session", st.ID, "remote", r.RemoteAddr)

	c.send <- stateResponse(st)
	go c.writePump()
	go c.readPump()
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
