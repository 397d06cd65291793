package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/visualearn/internal/lesson"
	"github.com/abhisek/visualearn/internal/roadmap"
)

// Handler serves the lesson and roadmap endpoints. Streaming endpoints
// emit NDJSON: one JSON record per line, flushed as produced.
type Handler struct {
	workflow *lesson.Workflow
	roadmaps *roadmap.Generator
	log      *zap.Logger
}

// NewHandler creates a Handler.
func NewHandler(workflow *lesson.Workflow, roadmaps *roadmap.Generator, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{workflow: workflow, roadmaps: roadmaps, log: log}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// progressRecord is one NDJSON line of the lesson stream.
type progressRecord struct {
	Type    string `json:"type"`
	Stage   string `json:"stage,omitempty"`
	Percent int    `json:"progress,omitempty"`
	Message string `json:"message,omitempty"`
}

type completeRecord struct {
	Type string       `json:"type"`
	Data lesson.State `json:"data"`
}

// GenerateLesson runs the full lesson pipeline, streaming progress
// records followed by one complete record carrying the final state.
func (h *Handler) GenerateLesson(c *gin.Context) {
	var input lesson.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}

	c.Header("Content-Type", "application/x-ndjson")
	c.Status(http.StatusOK)

	final := h.workflow.Run(c.Request.Context(), input, func(p lesson.Progress) {
		h.writeLine(c, progressRecord{
			Type:    "progress",
			Stage:   string(p.Stage),
			Percent: p.Percent,
			Message: p.Message,
		})
	})

	h.writeLine(c, completeRecord{Type: "complete", Data: final})
}

type streamContentRequest struct {
	lesson.Input
	Point             lesson.KeyPoint `json:"point"`
	VisionDescription string          `json:"vision_description"`
}

// StreamContent streams the prose for one key point as plain text chunks.
func (h *Handler) StreamContent(c *gin.Context) {
	var req streamContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Point.PointTitle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "point is required"})
		return
	}

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Status(http.StatusOK)

	for fragment := range h.workflow.StreamSection(c.Request.Context(), req.Point, req.Input, req.VisionDescription) {
		if _, err := c.Writer.WriteString(fragment); err != nil {
			return
		}
		c.Writer.Flush()
	}
}

type roadmapRequest struct {
	Topic string `json:"topic"`
}

// GenerateRoadmap streams roadmap events as NDJSON: one metadata record,
// then phase records in order, or a terminal error record.
func (h *Handler) GenerateRoadmap(c *gin.Context) {
	var req roadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}

	c.Header("Content-Type", "application/x-ndjson")
	c.Status(http.StatusOK)

	for ev := range h.roadmaps.Run(c.Request.Context(), req.Topic) {
		h.writeLine(c, ev)
	}
}

type topicContentRequest struct {
	Topic      string `json:"topic"`
	Phase      string `json:"phase"`
	TopicTitle string `json:"topic_title"`
}

// TopicContent returns deep-dive content for one roadmap topic as a
// single JSON response.
func (h *Handler) TopicContent(c *gin.Context) {
	var req topicContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Topic == "" || req.TopicTitle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic and topic_title are required"})
		return
	}

	content, err := h.roadmaps.TopicContent(c.Request.Context(), req.Topic, req.Phase, req.TopicTitle)
	if err != nil {
		h.log.Warn("topic content failed",
			zap.String("request_id", c.GetString("request_id")), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content})
}

// writeLine marshals v, writes it as one NDJSON line and flushes so the
// client sees the record immediately.
func (h *Handler) writeLine(c *gin.Context, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		h.log.Error("marshal stream record", zap.Error(err))
		return
	}
	if _, err := c.Writer.Write(append(b, '\n')); err != nil {
		return
	}
	c.Writer.Flush()
}
