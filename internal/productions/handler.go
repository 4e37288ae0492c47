package productions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

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

// RegisterRoutes attaches production routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/productions", h.assemble)
	rg.GET("/productions/:id", h.get)
}

type assembleRequest struct {
	Name           string       `json:"name"`
	Prefix         string       `json:"prefix"`
	StartNumber    int64        `json:"startNumber"`
	Format         string       `json:"format"`
	LoadFileFormat string       `json:"loadFileFormat"`
	Include        IncludeFlags `json:"includeFlags"`
	DocumentIDs    []string     `json:"documentIds"`
}

func (h *Handler) assemble(c *gin.Context) {
	var req assembleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Svc.Assemble(c.Request.Context(), AssembleInput{
		Name:           req.Name,
		BatesPrefix:    req.Prefix,
		StartNumber:    req.StartNumber,
		Format:         Format(req.Format),
		Include:        req.Include,
		LoadFileFormat: LoadFileFormat(req.LoadFileFormat),
		DocumentIDs:    req.DocumentIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to assemble production", nil)
		}
		return
	}

	resp := gin.H{
		"productionSet": result.Set,
		"assignments":   result.Links,
		"loadFile":      string(result.LoadFile),
	}
	if result.MetadataReport != nil {
		// []byte marshals as base64.
		resp["metadataReport"] = result.MetadataReport
	}
	respond.Created(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	set, links, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "production set not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch production set", nil)
		}
		return
	}
	if links == nil {
		links = []ProductionDocumentLink{}
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"productionSet": set,
		"assignments":   links,
	})
}
