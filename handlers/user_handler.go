package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/response"
	"taskboard/services"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} response.ErrorResponse
// @Router /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.svc.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: fmt.Sprintf("Error retrieving users: %s", err.Error())})
		return
	}
	c.JSON(http.StatusOK, users)
}
