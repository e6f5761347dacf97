package client

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"taskboard/dto"
	"taskboard/models"
)

var (
	validate = validator.New()

	ErrFormIncomplete = errors.New("required form fields missing")
)

// normalizeISO turns a date-picker value into a complete ISO-8601
// timestamp before submission.
func normalizeISO(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.RFC3339), nil
		}
	}
	return "", errors.New("invalid date: " + s)
}

// ProjectForm holds the ephemeral state of the project-creation modal.
// Submission is blocked until every field is non-empty.
type ProjectForm struct {
	Name        string `validate:"required"`
	Description string `validate:"required"`
	StartDate   string `validate:"required"`
	EndDate     string `validate:"required"`
}

func (f ProjectForm) Valid() bool {
	return validate.Struct(f) == nil
}

func (f ProjectForm) Submit(ctx context.Context, cache *Cache) (models.Project, error) {
	if !f.Valid() {
		return models.Project{}, ErrFormIncomplete
	}
	startDate, err := normalizeISO(f.StartDate)
	if err != nil {
		return models.Project{}, err
	}
	endDate, err := normalizeISO(f.EndDate)
	if err != nil {
		return models.Project{}, err
	}
	return cache.CreateProject(ctx, dto.CreateProjectDTO{
		Name:        f.Name,
		Description: &f.Description,
		StartDate:   &startDate,
		EndDate:     &endDate,
	})
}

// TaskForm holds the ephemeral state of the task-creation modal.
type TaskForm struct {
	Title          string `validate:"required"`
	Description    string
	Status         models.Status
	Priority       models.Priority
	Tags           string
	StartDate      string
	DueDate        string
	Points         int
	ProjectID      uint `validate:"required"`
	AuthorUserID   uint `validate:"required"`
	AssignedUserID uint
}

func (f TaskForm) Valid() bool {
	return validate.Struct(f) == nil
}

func (f TaskForm) Submit(ctx context.Context, cache *Cache) (models.Task, error) {
	if !f.Valid() {
		return models.Task{}, ErrFormIncomplete
	}

	input := dto.CreateTaskDTO{
		Title:        f.Title,
		ProjectID:    dto.FlexUint(f.ProjectID),
		AuthorUserID: dto.FlexUint(f.AuthorUserID),
	}
	if f.Description != "" {
		input.Description = &f.Description
	}
	if f.Status != "" {
		status := string(f.Status)
		input.Status = &status
	}
	if f.Priority != "" {
		priority := string(f.Priority)
		input.Priority = &priority
	}
	if f.Tags != "" {
		input.Tags = &f.Tags
	}

	startDate, err := normalizeISO(f.StartDate)
	if err != nil {
		return models.Task{}, err
	}
	if startDate != "" {
		input.StartDate = &startDate
	}
	dueDate, err := normalizeISO(f.DueDate)
	if err != nil {
		return models.Task{}, err
	}
	if dueDate != "" {
		input.DueDate = &dueDate
	}

	if f.Points != 0 {
		points := dto.FlexInt(f.Points)
		input.Points = &points
	}
	if f.AssignedUserID != 0 {
		assigned := dto.FlexUint(f.AssignedUserID)
		input.AssignedUserID = &assigned
	}

	return cache.CreateTask(ctx, input)
}
