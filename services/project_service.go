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

var ErrInvalidDate = errors.New("invalid date")

type ProjectService struct {
	Repos *repositories.Repos
}

func NewProjectService(repos *repositories.Repos) *ProjectService {
	return &ProjectService{
		Repos: repos,
	}
}

func (s *ProjectService) ListProjects() ([]models.Project, error) {
	return s.Repos.Project.ListProjects()
}

func (s *ProjectService) CreateProject(input dto.CreateProjectDTO) (models.Project, error) {
	startDate, err := utils.ParseISODate(input.StartDate)
	if err != nil {
		return models.Project{}, ErrInvalidDate
	}
	endDate, err := utils.ParseISODate(input.EndDate)
	if err != nil {
		return models.Project{}, ErrInvalidDate
	}

	project := models.Project{
		Name:        input.Name,
		Description: input.Description,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	if err := createWithSequenceRetry(s.Repos.Project.CreateProject, s.Repos.Project.ResyncIDSequence, &project); err != nil {
		return models.Project{}, err
	}

	logger.L().Info("project created",
		zap.Uint("id", project.ID),
		zap.String("name", project.Name),
	)
	return project, nil
}
