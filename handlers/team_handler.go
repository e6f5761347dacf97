package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/response"
	"taskboard/services"
)

type TeamHandler struct {
	svc *services.TeamService
}

func NewTeamHandler(svc *services.TeamService) *TeamHandler {
	return &TeamHandler{svc: svc}
}

// GetTeams godoc
// @Summary List all teams with owner and manager usernames resolved
// @Tags teams
// @Produce json
// @Success 200 {array} dto.TeamWithUsernames
// @Failure 500 {object} response.ErrorResponse
// @Router /teams [get]
func (h *TeamHandler) GetTeams(c *gin.Context) {
	teams, err := h.svc.ListTeams()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: fmt.Sprintf("Error retrieving teams: %s", err.Error())})
		return
	}
	c.JSON(http.StatusOK, teams)
}
