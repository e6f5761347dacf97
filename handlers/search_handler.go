package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/response"
	"taskboard/services"
)

type SearchHandler struct {
	svc *services.SearchService
}

func NewSearchHandler(svc *services.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search godoc
// @Summary Free-text search across tasks, projects and users
// @Tags search
// @Produce json
// @Param query query string true "Search query"
// @Success 200 {object} dto.SearchResults
// @Failure 400 {object} response.ErrorResponse "Query missing"
// @Failure 500 {object} response.ErrorResponse
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Search query is required"})
		return
	}
	results, err := h.svc.Search(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: fmt.Sprintf("Error performing search: %s", err.Error())})
		return
	}
	c.JSON(http.StatusOK, results)
}
