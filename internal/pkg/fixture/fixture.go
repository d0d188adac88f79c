// Package fixture serves the fixed set of routes geturl is exercised against.
package fixture

import (
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
)

const (
	HelloPath    = "/hello"
	EmptyPath    = "/empty"
	BinaryPath   = "/binary"
	RedirectPath = "/redirect"
	MissingPath  = "/missing"
	BrokenPath   = "/broken"

	HelloBody   = "hello world"
	MissingBody = "no such fixture"
	BrokenBody  = "fixture failed on purpose"
)

// BinaryBody returns every byte value 0x00..0xff in order.
func BinaryBody() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func NewRouter() chi.Router {
	logger := httplog.NewLogger("geturl-fixture", httplog.Options{
		JSON:     true,
		LogLevel: slog.LevelWarn,
		Concise:  true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))

	r.Get(HelloPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(HelloBody))
	})
	r.Get(EmptyPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get(BinaryPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(BinaryBody())
	})
	r.Get(RedirectPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, HelloPath, http.StatusFound)
	})
	r.Get(MissingPath, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, MissingBody, http.StatusNotFound)
	})
	r.Get(BrokenPath, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, BrokenBody, http.StatusInternalServerError)
	})

	return r
}

// NewServer starts an httptest server for NewRouter. Callers must Close it.
func NewServer() *httptest.Server {
	return httptest.NewServer(NewRouter())
}
