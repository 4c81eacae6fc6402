package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/cors"
)

const (
	maxHeaderBytes    = 1 << 20 // 1 MB
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
)

// Server owns the HTTP listener lifecycle and the CORS policy in front of the API.
type Server struct {
	httpServer     *http.Server
	allowedOrigins []string
}

func New(allowedOrigins []string) *Server {
	return &Server{allowedOrigins: allowedOrigins}
}

// Handler wraps api with the CORS policy. Browsers may send the bearer token
// and read back X-Request-ID.
func (s *Server) Handler(api http.Handler) http.Handler {
	if len(s.allowedOrigins) == 0 {
		return api
	}
	return cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler(api)
}

// listenAddr accepts "8080" or ":8080"; empty falls back to :8080.
func listenAddr(port string) string {
	switch {
	case port == "":
		return ":8080"
	case strings.HasPrefix(port, ":"):
		return port
	default:
		return ":" + port
	}
}

// Run blocks serving api on port until Shutdown is called.
func (s *Server) Run(port string, api http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              listenAddr(port),
		Handler:           s.Handler(api),
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown waits for in-flight requests until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
