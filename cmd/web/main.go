package main

import (
	_ "embed"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tomz197/wormhole/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

func main() {
	logger := config.NewLogger(os.Stderr)

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")

	srv := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           newMux(renderPage(htmlPage, sshHost)),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("starting web server", "addr", "http://"+srv.Addr, "sshHost", sshHost)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// newMux serves the landing page at the root and a liveness probe.
func newMux(page string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, page)
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok\n")
	})
	return mux
}

// renderPage fills the SSH host into the landing page template.
func renderPage(page, sshHost string) string {
	return strings.ReplaceAll(page, "{{.SSHHost}}", sshHost)
}
