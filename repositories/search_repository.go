package repositories

import (
	"taskboard/db"
	"taskboard/models"
)

type SearchRepo interface {
	SearchTasks(query string) ([]models.Task, error)
	SearchProjects(query string) ([]models.Project, error)
	SearchUsers(query string) ([]models.User, error)
}

type DBSearchRepo struct{}

func pattern(query string) string {
	return "%" + query + "%"
}

func (r *DBSearchRepo) SearchTasks(query string) ([]models.Task, error) {
	var tasks []models.Task
	err := db.DB.
		Where("title ILIKE ? OR description ILIKE ?", pattern(query), pattern(query)).
		Find(&tasks).Error
	return tasks, err
}

func (r *DBSearchRepo) SearchProjects(query string) ([]models.Project, error) {
	var projects []models.Project
	err := db.DB.
		Where("name ILIKE ? OR description ILIKE ?", pattern(query), pattern(query)).
		Find(&projects).Error
	return projects, err
}

func (r *DBSearchRepo) SearchUsers(query string) ([]models.User, error) {
	var users []models.User
	err := db.DB.
		Where("username ILIKE ?", pattern(query)).
		Find(&users).Error
	return users, err
}
