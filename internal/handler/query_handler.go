package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/olympics-access-go/internal/repository"
	"github.com/jengzang/olympics-access-go/pkg/response"
)

// QueryHandler handles HTTP requests for the query history
type QueryHandler struct {
	repo *repository.QueryRepository
}

// NewQueryHandler creates a new query history handler
func NewQueryHandler(repo *repository.QueryRepository) *QueryHandler {
	return &QueryHandler{repo: repo}
}

// Recent handles GET /api/v1/queries
func (h *QueryHandler) Recent(c *gin.Context) {
	limit := 20
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			response.Error(c, http.StatusBadRequest, "Invalid limit parameter", err)
			return
		}
		limit = n
	}
	if limit > 200 {
		limit = 200
	}

	entries, err := h.repo.Recent(limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load query history", err)
		return
	}

	response.Success(c, gin.H{
		"data":  entries,
		"count": len(entries),
	})
}
