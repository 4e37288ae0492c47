package documents

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"discovery-backend/internal/pii"
	"discovery-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
	PII *pii.Detector
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, detector *pii.Detector) *Handler {
	return &Handler{Svc: svc, PII: detector}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents", h.upload)
	rg.GET("/documents", h.list)
	rg.GET("/documents/:id", h.get)
	rg.PATCH("/documents/:id", h.update)
	rg.DELETE("/documents/:id", h.remove)
	rg.GET("/documents/:id/download", h.download)
	rg.POST("/documents/:id/summarize", h.summarize)
	rg.POST("/documents/:id/suggest-tags", h.suggestTags)
	rg.POST("/documents/:id/pii-candidates", h.piiCandidates)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	doc, err := h.Svc.Ingest(c.Request.Context(), fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrFileTooLarge):
			respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", err.Error(), nil)
		case errors.Is(err, ErrUnsupportedType):
			respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_type", err.Error(), nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to upload document", nil)
		}
		return
	}

	respond.Created(c, toResponse(doc, false))
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 100 {
		limit = 100
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	docs, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list documents", nil)
		return
	}

	resp := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, toResponse(doc, false))
	}

	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	doc, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(doc, true))
}

type updateRequest struct {
	Title     *string           `json:"title"`
	Custodian *string           `json:"custodian"`
	Reviewed  *bool             `json:"reviewed"`
	Metadata  map[string]string `json:"metadata"`
}

func (h *Handler) update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	doc, err := h.Svc.Update(c.Request.Context(), c.Param("id"), UpdateInput{
		Title:     req.Title,
		Custodian: req.Custodian,
		Reviewed:  req.Reviewed,
		Metadata:  req.Metadata,
	})
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(doc, true))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondLookupError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) download(c *gin.Context) {
	body, contentType, title, err := h.Svc.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}
	defer body.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", title))
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, body); err != nil {
		// Headers are already written; nothing useful to send back.
		_ = c.Error(err)
	}
}

func (h *Handler) summarize(c *gin.Context) {
	summary, err := h.Svc.Summarize(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		case errors.Is(err, ErrAIUnavailable):
			respond.Error(c, http.StatusBadGateway, "ai_unavailable", "summarization service unavailable", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to summarize document", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"summary": summary})
}

func (h *Handler) suggestTags(c *gin.Context) {
	tags, err := h.Svc.SuggestTags(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		case errors.Is(err, ErrAIUnavailable):
			respond.Error(c, http.StatusBadGateway, "ai_unavailable", "tag suggestion service unavailable", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to suggest tags", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"tags": tags})
}

func (h *Handler) piiCandidates(c *gin.Context) {
	doc, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	candidates := h.PII.Detect(c.Request.Context(), doc.Content)

	respond.JSON(c, http.StatusOK, gin.H{
		"documentId": doc.ID,
		"candidates": candidates,
	})
}

func (h *Handler) respondLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "request failed", nil)
	}
}
