// SPDX-License-Identifier: MIT

// Package server exposes route queries over HTTP.
//
// Routes:
//
//	GET  /healthz     dataset reachability
//	POST /v1/search   run one query against the configured dataset
//	GET  /metrics     Prometheus exposition
//
// Every response carries an X-Request-ID header, echoed from the request
// or generated.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/flightpath/config"
	"github.com/katalvlaran/flightpath/logging"
	"github.com/katalvlaran/flightpath/search"
)

// Server is the HTTP front of a search.Service.
type Server struct {
	cfg    config.ServerConfig
	svc    *search.Service
	log    *slog.Logger
	engine *gin.Engine
}

// New wires the routes. A nil logger discards logs.
func New(cfg config.ServerConfig, svc *search.Service, log *slog.Logger) *Server {
	if log == nil {
		log = logging.Discard()
	}
	s := &Server{cfg: cfg, svc: svc, log: log}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), s.accessLog())
	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	v1 := r.Group("/v1")
	v1.POST("/search", s.handleSearch)
	s.engine = r

	return s
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is done, then shuts down gracefully within
// ShutdownTimeout. A listen failure is returned as is.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("listening", "addr", s.cfg.Addr, "dataset", s.cfg.Dataset)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
