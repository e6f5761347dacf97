package repositories

import (
	"taskboard/db"
	"taskboard/models"
)

type TaskRepo interface {
	ListTasksByProject(projectID uint) ([]models.Task, error)
	CreateTask(t *models.Task) error
	UpdateTaskStatus(id uint, status models.Status) (models.Task, error)
	ResyncIDSequence() error
}

type DBTaskRepo struct{}

func (r *DBTaskRepo) ListTasksByProject(projectID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := db.DB.
		Preload("Author").
		Preload("Assignee").
		Preload("Comments").
		Preload("Attachments").
		Where("project_id = ?", projectID).
		Find(&tasks).Error
	return tasks, err
}

func (r *DBTaskRepo) CreateTask(t *models.Task) error {
	return db.DB.Create(t).Error
}

// UpdateTaskStatus overwrites the status column only and returns the row
// as stored.
func (r *DBTaskRepo) UpdateTaskStatus(id uint, status models.Status) (models.Task, error) {
	var task models.Task
	if err := db.DB.First(&task, id).Error; err != nil {
		return models.Task{}, err
	}
	if err := db.DB.Model(&task).Update("status", status).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (r *DBTaskRepo) ResyncIDSequence() error {
	return resyncSequence("tasks", "id")
}
