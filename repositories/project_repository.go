package repositories

import (
	"taskboard/db"
	"taskboard/models"
)

type ProjectRepo interface {
	ListProjects() ([]models.Project, error)
	CreateProject(p *models.Project) error
	ResyncIDSequence() error
}

type DBProjectRepo struct{}

func (r *DBProjectRepo) ListProjects() ([]models.Project, error) {
	var projects []models.Project
	err := db.DB.Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) CreateProject(p *models.Project) error {
	return db.DB.Create(p).Error
}

func (r *DBProjectRepo) ResyncIDSequence() error {
	return resyncSequence("projects", "id")
}
