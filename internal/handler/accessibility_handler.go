package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/olympics-access-go/internal/catalog"
	"github.com/jengzang/olympics-access-go/internal/isochrone"
	"github.com/jengzang/olympics-access-go/internal/models"
	"github.com/jengzang/olympics-access-go/internal/service"
	"github.com/jengzang/olympics-access-go/internal/viz"
	"github.com/jengzang/olympics-access-go/pkg/response"
)

// AccessibilityHandler handles HTTP requests for accessibility queries
type AccessibilityHandler struct {
	service *service.AccessibilityService
}

// NewAccessibilityHandler creates a new accessibility handler
func NewAccessibilityHandler(service *service.AccessibilityService) *AccessibilityHandler {
	return &AccessibilityHandler{service: service}
}

// Query handles GET /api/v1/accessibility. Every failure is reduced to one
// user-visible message; the frontend keeps whatever it rendered last.
func (h *AccessibilityHandler) Query(c *gin.Context) {
	var params models.QueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	params.ApplyDefaults()
	if len(params.Venues) == 0 {
		response.Error(c, http.StatusBadRequest, "Select at least one venue", nil)
		return
	}
	if err := params.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	result, err := h.service.Run(c.Request.Context(), params)
	if err != nil {
		h.reportError(c, err)
		return
	}

	response.Success(c, result)
}

// reportError maps the error taxonomy onto HTTP statuses
func (h *AccessibilityHandler) reportError(c *gin.Context, err error) {
	var remoteErr *isochrone.RemoteServiceError
	var malformedErr *isochrone.MalformedResponseError

	switch {
	case errors.Is(err, viz.ErrNoSelection):
		response.Error(c, http.StatusBadRequest, "Select at least one venue", nil)
	case errors.Is(err, catalog.ErrNotFound):
		response.NotFound(c, "Unknown venue", err)
	case errors.As(err, &remoteErr):
		response.BadGateway(c, "The accessibility service reported an error", err)
	case errors.Is(err, isochrone.ErrEmptyResponse):
		response.BadGateway(c, "The accessibility service returned no data", err)
	case errors.As(err, &malformedErr):
		response.BadGateway(c, "The accessibility service returned unreadable data", err)
	default:
		// Transport-level failures (DNS, refused connection, timeout)
		response.BadGateway(c, "Could not reach the accessibility service", err)
	}
}
