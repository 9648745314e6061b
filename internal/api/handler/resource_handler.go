package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kwon0144/HarborHub/internal/service"
	"github.com/kwon0144/HarborHub/pkg/response"
)

// ResourceHandler serves the self-help resource catalogues.
type ResourceHandler struct {
	resourceSvc service.ResourceService
}

// NewResourceHandler creates a ResourceHandler.
func NewResourceHandler(resourceSvc service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceSvc: resourceSvc}
}

// ListResources lists resources. With no filter the catalogue comes
// back grouped by type; ?type= gives a flat list of one catalogue and
// ?id= looks up a single resource across all three.
// GET /api/resources
func (h *ResourceHandler) ListResources(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		resource, err := h.resourceSvc.GetByID(c.Request.Context(), id)
		if err != nil {
			h.handleResourceError(c, err)
			return
		}
		response.OK(c, resource)
		return
	}

	if resourceType := c.Query("type"); resourceType != "" {
		resources, err := h.resourceSvc.List(c.Request.Context(), resourceType)
		if err != nil {
			h.handleResourceError(c, err)
			return
		}
		response.OKCount(c, resources, len(resources))
		return
	}

	grouped, err := h.resourceSvc.ListGrouped(c.Request.Context())
	if err != nil {
		h.handleResourceError(c, err)
		return
	}
	response.OK(c, grouped)
}

// GetResource returns one resource by ID.
// GET /api/resources/:id
func (h *ResourceHandler) GetResource(c *gin.Context) {
	resource, err := h.resourceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleResourceError(c, err)
		return
	}

	response.OK(c, resource)
}

func (h *ResourceHandler) handleResourceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrResourceNotFound):
		response.NotFound(c, "Resource not found")
	case errors.Is(err, service.ErrUnknownResourceType):
		response.BadRequest(c, "Unknown resource type")
	default:
		response.InternalError(c)
	}
}
