package redactions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"discovery-backend/internal/documents"
	"discovery-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches redaction routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/:id/redactions", h.add)
	rg.GET("/documents/:id/redactions", h.list)
	rg.GET("/documents/:id/text", h.text)
	rg.DELETE("/redactions/:id", h.remove)
}

type addRequest struct {
	Kind   string  `json:"kind"`
	Text   string  `json:"text"`
	Reason string  `json:"reason"`
	Page   int     `json:"page"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (h *Handler) add(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	red, err := h.Svc.Add(c.Request.Context(), c.Param("id"), AddInput{
		Kind:   Kind(req.Kind),
		Text:   req.Text,
		Reason: req.Reason,
		Page:   req.Page,
		X:      req.X,
		Y:      req.Y,
		Width:  req.Width,
		Height: req.Height,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.Created(c, red)
}

func (h *Handler) list(c *gin.Context) {
	regions, err := h.Svc.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if regions == nil {
		regions = []Redaction{}
	}

	respond.JSON(c, http.StatusOK, regions)
}

func (h *Handler) text(c *gin.Context) {
	doc, text, err := h.Svc.RedactedText(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"documentId": doc.ID,
		"redacted":   doc.Redacted,
		"text":       text,
	})
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Remove(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, documents.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "redaction not found", nil)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, documents.ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "request failed", nil)
	}
}
