// Package server exposes the lesson and roadmap workflows over HTTP.
// Long-running generation endpoints stream their output incrementally
// instead of buffering it.
package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server wraps the configured gin engine.
type Server struct {
	Engine *gin.Engine
	addr   string
}

// New builds a ready-to-run server.
func New(h *Handler, cfg Config, log *zap.Logger) *Server {
	return &Server{Engine: NewRouter(h, cfg, log), addr: cfg.Addr}
}

// Run blocks serving HTTP on the configured address.
func (s *Server) Run() error {
	return s.Engine.Run(s.addr)
}
