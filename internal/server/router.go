package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter assembles the gin engine: CORS, request IDs, request logging
// and the API routes.
func NewRouter(h *Handler, cfg Config, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(requestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", requestIDHeader},
		AllowCredentials: true,
	}))

	r.GET("/health", h.Health)

	r.POST("/generate-lesson", h.GenerateLesson)
	r.POST("/stream-content", h.StreamContent)
	r.POST("/generate-roadmap", h.GenerateRoadmap)
	r.POST("/topic-content", h.TopicContent)

	return r
}
