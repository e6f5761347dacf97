package services

import (
	"errors"

	"go.uber.org/zap"

	"taskboard/dto"
	"taskboard/logger"
	"taskboard/models"
	"taskboard/repositories"
	"taskboard/utils"
)

var (
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPriority = errors.New("invalid priority")
)

type TaskService struct {
	Repos *repositories.Repos
}

func NewTaskService(repos *repositories.Repos) *TaskService {
	return &TaskService{
		Repos: repos,
	}
}

func (s *TaskService) ListTasksByProject(projectID uint) ([]models.Task, error) {
	return s.Repos.Task.ListTasksByProject(projectID)
}

func (s *TaskService) CreateTask(input dto.CreateTaskDTO) (models.Task, error) {
	task := models.Task{
		Title:        input.Title,
		Description:  input.Description,
		Tags:         input.Tags,
		ProjectID:    uint(input.ProjectID),
		AuthorUserID: uint(input.AuthorUserID),
	}

	if input.Status != nil && *input.Status != "" {
		status := models.Status(*input.Status)
		if !status.Valid() {
			return models.Task{}, ErrInvalidStatus
		}
		task.Status = &status
	}
	if input.Priority != nil && *input.Priority != "" {
		priority := models.Priority(*input.Priority)
		if !priority.Valid() {
			return models.Task{}, ErrInvalidPriority
		}
		task.Priority = &priority
	}

	startDate, err := utils.ParseISODate(input.StartDate)
	if err != nil {
		return models.Task{}, ErrInvalidDate
	}
	dueDate, err := utils.ParseISODate(input.DueDate)
	if err != nil {
		return models.Task{}, ErrInvalidDate
	}
	task.StartDate = startDate
	task.DueDate = dueDate

	if input.Points != nil {
		points := int(*input.Points)
		task.Points = &points
	}
	if input.AssignedUserID != nil && *input.AssignedUserID != 0 {
		assigned := uint(*input.AssignedUserID)
		task.AssignedUserID = &assigned
	}

	if err := createWithSequenceRetry(s.Repos.Task.CreateTask, s.Repos.Task.ResyncIDSequence, &task); err != nil {
		return models.Task{}, err
	}

	logger.L().Info("task created",
		zap.Uint("id", task.ID),
		zap.Uint("projectId", task.ProjectID),
	)
	return task, nil
}

// UpdateTaskStatus overwrites the status field only; every other column
// keeps its stored value.
func (s *TaskService) UpdateTaskStatus(id uint, status string) (models.Task, error) {
	parsed := models.Status(status)
	if !parsed.Valid() {
		return models.Task{}, ErrInvalidStatus
	}
	return s.Repos.Task.UpdateTaskStatus(id, parsed)
}
