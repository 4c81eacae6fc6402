package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListenAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":8080",
		"8080":  ":8080",
		":9090": ":9090",
	}
	for in, want := range cases {
		if got := listenAddr(in); got != want {
			t.Errorf("listenAddr(%q) = %q, want %q", in, got, want)
		}
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestHandler_CORS(t *testing.T) {
	h := New([]string{"http://app.example"}).Handler(okHandler())

	// preflight from an allowed origin
	req := httptest.NewRequest(http.MethodOptions, "/courses", nil)
	req.Header.Set("Origin", "http://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "authorization")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://app.example" {
		t.Fatalf("allow-origin: got %q", got)
	}

	// simple request from another origin gets no CORS headers
	req = httptest.NewRequest(http.MethodGet, "/courses", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected allow-origin %q", got)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("request should still reach the handler, got %d", w.Code)
	}
}

func TestHandler_NoOriginsDisablesCORS(t *testing.T) {
	h := New(nil).Handler(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	req.Header.Set("Origin", "http://app.example")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected allow-origin %q", got)
	}
}

func TestShutdown_NotStarted(t *testing.T) {
	if err := New(nil).Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown on idle server: %v", err)
	}
}
