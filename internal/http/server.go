package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/workforce-analytics-backend/internal/config"
)

type Server struct {
	srv *http.Server
}

func NewServer(cfg config.HTTPConfig, engine *gin.Engine) *Server {
	return &Server{srv: &http.Server{
		Addr:              cfg.Addr,
		Handler:           engine,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}}
}

func (s *Server) Addr() string { return s.srv.Addr }

// ListenAndServe blocks until the server stops. A graceful Shutdown is not
// reported as an error.
func (s *Server) ListenAndServe() error {
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
