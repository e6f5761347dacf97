package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/dto"
	"taskboard/response"
	"taskboard/services"
	"taskboard/utils"
)

type TaskHandler struct {
	svc *services.TaskService
}

func NewTaskHandler(svc *services.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// GetTasks godoc
// @Summary List tasks for a project
// @Tags tasks
// @Produce json
// @Param projectId query uint true "Project ID"
// @Success 200 {array} models.Task
// @Failure 400 {object} response.ErrorResponse "Invalid projectId"
// @Failure 500 {object} response.ErrorResponse
// @Router /tasks [get]
func (h *TaskHandler) GetTasks(c *gin.Context) {
	projectID, err := utils.ParseQueryUintParam(c, "projectId")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: err.Error()})
		return
	}
	tasks, err := h.svc.ListTasksByProject(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: fmt.Sprintf("Error retrieving tasks: %s", err.Error())})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTask godoc
// @Summary Create a new task
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body dto.CreateTaskDTO true "Task"
// @Success 201 {object} models.Task
// @Failure 400 {object} response.ErrorResponse "Required field missing"
// @Failure 500 {object} response.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var input dto.CreateTaskDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: err.Error()})
		return
	}
	if input.Title == "" || input.ProjectID == 0 || input.AuthorUserID == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Title, projectId, and authorUserId are required"})
		return
	}

	task, err := h.svc.CreateTask(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus),
			errors.Is(err, services.ErrInvalidPriority),
			errors.Is(err, services.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: fmt.Sprintf("Error creating a task: %s", err.Error())})
		}
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTaskStatus godoc
// @Summary Update the status of a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskId path uint true "Task ID"
// @Param status body dto.UpdateTaskStatusDTO true "New status"
// @Success 200 {object} models.Task
// @Failure 400 {object} response.ErrorResponse "Invalid status"
// @Failure 500 {object} response.ErrorResponse
// @Router /tasks/{taskId}/status [patch]
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	taskID, err := utils.ParseIDParam(c, "taskId")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "invalid task id"})
		return
	}
	var input dto.UpdateTaskStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: err.Error()})
		return
	}

	task, err := h.svc.UpdateTaskStatus(taskID, input.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: fmt.Sprintf("Error updating tasks: %s", err.Error())})
		return
	}
	c.JSON(http.StatusOK, task)
}
