// Package server exposes stored cubes over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/SeamusWaldron/cubeengine/internal/config"
	"github.com/SeamusWaldron/cubeengine/internal/session"
)

const shutdownTimeout = 5 * time.Second

// Server serves the cube API.
type Server struct {
	svc            *session.Service
	cfg            config.Server
	scrambleLength int
	log            *zap.Logger
	router         *gin.Engine
}

// New builds the router. scrambleLength is the move count used when a
// scramble request omits one.
func New(svc *session.Service, cfg config.Server, scrambleLength int, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		svc:            svc,
		cfg:            cfg,
		scrambleLength: scrambleLength,
		log:            log,
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log))
	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1", RateLimit(rate.Limit(cfg.RateLimit), cfg.Burst))
	RegisterRoutes(v1, s)

	s.router = router
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// RegisterRoutes registers the session endpoints on rg.
//
//	POST   /sessions                create a solved cube
//	GET    /sessions                list recent sessions
//	POST   /sessions/import         store an exported document
//	GET    /sessions/:id            current state
//	DELETE /sessions/:id            delete a session
//	POST   /sessions/:id/rotate     apply moves
//	POST   /sessions/:id/scramble   apply random moves
//	POST   /sessions/:id/revert     revert to a history index
//	POST   /sessions/:id/undo       revert the last move
//	POST   /sessions/:id/solve      run the daisy step
//	GET    /sessions/:id/export     portable document
//	GET    /sessions/:id/phases     recorded phase transitions
//	GET    /sessions/:id/wireframe  sticker outlines
//	GET    /sessions/:id/mesh       triangle mesh (?per_quad=false for vertex colors)
//	GET    /sessions/:id/labels     face labels
//	GET    /sessions/:id/stats      move history statistics
func RegisterRoutes(rg *gin.RouterGroup, s *Server) {
	sessions := rg.Group("/sessions")
	sessions.POST("", s.handleCreate)
	sessions.GET("", s.handleList)
	sessions.POST("/import", s.handleImport)
	sessions.GET("/:id", s.handleGet)
	sessions.DELETE("/:id", s.handleDelete)
	sessions.POST("/:id/rotate", s.handleRotate)
	sessions.POST("/:id/scramble", s.handleScramble)
	sessions.POST("/:id/revert", s.handleRevert)
	sessions.POST("/:id/undo", s.handleUndo)
	sessions.POST("/:id/solve", s.handleSolve)
	sessions.GET("/:id/export", s.handleExport)
	sessions.GET("/:id/phases", s.handlePhases)
	sessions.GET("/:id/wireframe", s.handleWireframe)
	sessions.GET("/:id/mesh", s.handleMesh)
	sessions.GET("/:id/labels", s.handleLabels)
	sessions.GET("/:id/stats", s.handleStats)
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
