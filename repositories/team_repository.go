package repositories

import (
	"taskboard/db"
	"taskboard/models"
)

type TeamRepo interface {
	ListTeams() ([]models.Team, error)
}

type DBTeamRepo struct{}

func (r *DBTeamRepo) ListTeams() ([]models.Team, error) {
	var teams []models.Team
	err := db.DB.Find(&teams).Error
	return teams, err
}
