package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/levenlabs/go-lflag"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ecovolt/internal/chart"
	"ecovolt/internal/content"
	"ecovolt/internal/log"
	"ecovolt/internal/simulator"
	"ecovolt/internal/waveform"
	"ecovolt/internal/ws"
)

const (
	wsPath       = "/ws"
	chartSVGPath = "/chart.svg"
	chartPNGPath = "/chart.png"
)

// Server serves the landing page, the live demo socket and the chart endpoints.
type Server struct {
	listenAddr       string
	tickInterval     time.Duration
	webCacheDuration time.Duration
	demoURL          string
	serverName       string

	hub        *ws.Hub
	httpServer *http.Server
}

// Config holds the settings of a Server built without flags.
type Config struct {
	ListenAddr       string
	TickInterval     time.Duration
	WebCacheDuration time.Duration
	DemoURL          string
	ServerName       string
}

// New builds a Server from an explicit config.
func New(cfg Config) *Server {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = simulator.DefaultTickInterval
	}
	if cfg.DemoURL == "" {
		cfg.DemoURL = content.DemoURL
	}
	return &Server{
		listenAddr:       cfg.ListenAddr,
		tickInterval:     cfg.TickInterval,
		webCacheDuration: cfg.WebCacheDuration,
		demoURL:          cfg.DemoURL,
		serverName:       cfg.ServerName,
		hub:              ws.NewHub(),
	}
}

// Configured registers the server's flags with lflag and returns a Server that
// is filled in once lflag.Configure runs.
func Configured() *Server {
	srv := New(Config{ServerName: "ecovolt"})
	if revision := os.Getenv("K_REVISION"); revision != "" {
		srv.serverName = revision
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	listenAddr := lflag.String("http-listen", ":"+port, "HTTP server listen address")
	tickInterval := lflag.Duration("tick-interval", simulator.DefaultTickInterval, "How often each live demo view regenerates its series")
	webCacheDuration := lflag.Duration("web-cache-duration", 0, "Duration to cache the landing page (e.g. 1h, 5m). 0 means no cache.")
	demoURL := lflag.String("demo-url", content.DemoURL, "URL opened by the call-to-action buttons")

	lflag.Do(func() {
		srv.listenAddr = *listenAddr
		if *tickInterval <= 0 {
			log.Ctx(context.Background()).Error("tick-interval must be positive", slog.Duration("tick_interval", *tickInterval))
			os.Exit(1)
		}
		srv.tickInterval = *tickInterval
		srv.webCacheDuration = *webCacheDuration
		srv.demoURL = *demoURL
	})

	return srv
}

// Hub returns the registry of mounted views.
func (s *Server) Hub() *ws.Hub {
	return s.hub
}

func (s *Server) setupHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.Handle("GET "+wsPath, ws.NewHandler(s.hub, simulator.WithInterval(s.tickInterval)))
	mux.HandleFunc("GET "+chartSVGPath, s.handleChart)
	mux.HandleFunc("GET "+chartPNGPath, s.handleChart)
	mux.HandleFunc("GET /api/series", s.handleSeries)
	mux.HandleFunc("GET /api/content", s.handleContent)
	mux.HandleFunc("/healthz", s.handleHealthz)

	// The socket needs the raw writer for the upgrade and promhttp negotiates
	// its own compression, so neither goes through gzip.
	root := http.NewServeMux()
	root.Handle(wsPath, s.securityHeadersMiddleware(mux))
	root.Handle("GET /metrics", promhttp.Handler())
	root.Handle("/", gziphandler.GzipHandler(s.securityHeadersMiddleware(mux)))
	return s.revisionMiddleware(root)
}

// Run starts the HTTP server and blocks until the context is canceled or an error occurs.
// Open views are closed on shutdown so their tick drivers stop.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:        s.listenAddr,
		Handler:     s.setupHandler(),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 15 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		defer close(errChan)
		log.Ctx(ctx).InfoContext(ctx, "starting server", slog.String("addr", s.listenAddr), slog.Duration("tick_interval", s.tickInterval))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Ctx(ctx).InfoContext(ctx, "shutting down server", slog.Int("views", s.hub.ClientCount()))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.httpServer.Shutdown(shutdownCtx)
		// Hijacked sockets are not tracked by Shutdown. The listener is closed
		// by now, so no view can mount after this.
		s.hub.CloseAll()
		if err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to write response", slog.Any("error", err))
		panic(http.ErrAbortHandler)
	}
}

func writeJSONError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: msg}); err != nil {
		slog.Warn("failed to write error response", slog.Any("error", err))
		panic(http.ErrAbortHandler)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		panic(http.ErrAbortHandler)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.webCacheDuration > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(s.webCacheDuration.Seconds())))
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := content.NewPageData(content.Default(s.demoURL), waveform.Generate(0), wsPath, chartSVGPath)
	if err := content.RenderPage(w, data); err != nil {
		log.Ctx(r.Context()).ErrorContext(r.Context(), "failed to render page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// parseOffset reads the optional offset query parameter.
func parseOffset(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("offset")
	if raw == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q", raw)
	}
	return offset, nil
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	offset, err := parseOffset(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, ws.SeriesPayload{Offset: offset, Samples: waveform.Generate(offset)})
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, content.Default(s.demoURL))
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	sel := chart.Default
	if raw := r.URL.Query().Get("selection"); raw != "" {
		var err error
		sel, err = chart.ParseSelection(raw)
		if err != nil {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	offset, err := parseOffset(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	render, contentType := chart.RenderSVG, "image/svg+xml"
	if r.URL.Path == chartPNGPath {
		render, contentType = chart.RenderPNG, "image/png"
	}

	// Buffer the image so a render failure can still produce an error response.
	var buf bytes.Buffer
	if err := render(&buf, waveform.Generate(offset), sel, chart.RenderOptions{}); err != nil {
		log.Ctx(r.Context()).ErrorContext(r.Context(), "failed to render chart", "selection", sel, "error", err)
		writeJSONError(w, "failed to render chart", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	if _, err := buf.WriteTo(w); err != nil {
		panic(http.ErrAbortHandler)
	}
}

func (s *Server) revisionMiddleware(next http.Handler) http.Handler {
	if s.serverName == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", s.serverName)
		next.ServeHTTP(w, r)
	})
}
