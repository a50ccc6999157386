// Package preview serves the HTML projection of the invoice on loopback so
// the browser's print dialog can be used on the live document. A websocket
// pushes a reload after every render, keeping the page in step with the
// editor keystroke by keystroke.
package preview

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
)

type Server struct {
	surface *HTMLSurface
	printFn func()
	log     *slog.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewServer builds the preview server. printFn is the opaque platform
// print capability; it takes no arguments and reports nothing.
func NewServer(surface *HTMLSurface, printFn func(), log *slog.Logger) *Server {
	return &Server{
		surface: surface,
		printFn: printFn,
		log:     log,
		conns:   make(map[*websocket.Conn]struct{}),
	}
}

var upgrader = websocket.Upgrader{
	// Loopback-only server; the page itself is the only expected client.
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (s *Server) Router() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}))

	router.Get("/", s.handlePage)
	router.Get("/ws", s.handleWS)
	router.Post("/print", s.handlePrint)

	return router
}

// Start blocks serving the preview; run it on its own goroutine.
func (s *Server) Start(addr string) error {
	s.log.Info("preview server listening", "addr", addr)

	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := s.surface.WriteTo(w); err != nil {
		s.log.Error("failed to render preview page", "error", err)
	}
}

func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	s.printFn()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("websocket upgrade failed", "error", err)
		return
	}

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()

	// Drain the connection to observe the close.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.drop(conn)
				return
			}
		}
	}()
}

// NotifyReload pings every connected preview page. Hooked into the session
// so each render pushes exactly one reload.
func (s *Server) NotifyReload() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for conn := range s.conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			conn.Close()
			delete(s.conns, conn)
		}
	}
}

func (s *Server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conn.Close()
	delete(s.conns, conn)
}
