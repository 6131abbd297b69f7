// Package server wires the translation API and the web page into one HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/traductor/traductor/app/i18n"
	"github.com/traductor/traductor/app/server/api"
	"github.com/traductor/traductor/app/server/web"
	"github.com/traductor/traductor/app/translator"
)

// Translator translates text, source "auto" asks for detection.
type Translator interface {
	Translate(ctx context.Context, source, target, text string) (translator.Result, error)
}

// KVStore holds server-wide preference defaults, the web page reads its default theme from it.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Validator checks translation requests.
type Validator interface {
	Struct(v any) error
	SupportedTargets() []string
}

// Config holds server settings. Zero values are replaced by defaults.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Version         string
	BaseURL         string // path prefix when served behind a proxy, e.g. /translator
	Locale          string // web page locale

	BodySizeLimit  int64 // max request body, bytes
	RequestsPerSec int64 // max requests processed at once
}

func (c Config) withDefaults() Config {
	if c.BodySizeLimit <= 0 {
		c.BodySizeLimit = 64 * 1024
	}
	if c.RequestsPerSec <= 0 {
		c.RequestsPerSec = 100
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 5 * time.Second
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	return c
}

// Server serves POST /translate, the web page and its static assets.
type Server struct {
	cfg    Config
	api    *api.Handler
	web    *web.Handler
	static fs.FS
}

// New makes a Server. st may be nil, the web page then starts in light mode.
func New(tr Translator, val Validator, st KVStore, bundle *i18n.Bundle, cfg Config) (*Server, error) {
	cfg = cfg.withDefaults()
	static, err := web.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("failed to load static files: %w", err)
	}

	apiHandler := api.New(tr, val)
	// the page submits through the same handler, without a network hop
	webHandler, err := web.New(apiHandler.Local(), st, bundle, web.Config{BaseURL: cfg.BaseURL, Locale: cfg.Locale})
	if err != nil {
		return nil, fmt.Errorf("failed to create web handler: %w", err)
	}
	return &Server{cfg: cfg, api: apiHandler, web: webHandler, static: static}, nil
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.handler(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()
	log.Printf("[INFO] listening on %s%s/", s.cfg.Address, s.cfg.BaseURL)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Address, err)
	case <-ctx.Done():
	}

	log.Printf("[INFO] shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil { //nolint:contextcheck // ctx is already done here
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handler() http.Handler {
	return mount(s.cfg.BaseURL, s.routes())
}

// mount serves h under base, stripping the prefix. Requests for the bare prefix are redirected to base + "/".
func mount(base string, h http.Handler) http.Handler {
	if base == "" {
		return h
	}
	mux := http.NewServeMux()
	mux.Handle(base, http.RedirectHandler(base+"/", http.StatusMovedPermanently))
	mux.Handle(base+"/", http.StripPrefix(base, h))
	return mux
}

func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())
	router.Use(
		rest.Recoverer(log.Default()),
		rest.RealIP, // before Throttle, limits apply per real client
		rest.Throttle(s.cfg.RequestsPerSec),
		rest.Trace,
		rest.SizeLimit(s.cfg.BodySizeLimit),
		rest.AppInfo("traductor", "traductor", s.cfg.Version),
		rest.Ping,
	)

	router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(s.static))))
	router.Group().Route(s.web.Register)
	router.Group().Route(s.api.Register)
	return router
}
