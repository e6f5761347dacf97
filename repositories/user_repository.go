package repositories

import (
	"taskboard/db"
	"taskboard/models"
)

type UserRepo interface {
	ListUsers() ([]models.User, error)
	GetUserByID(id uint) (models.User, error)
}

type DBUserRepo struct{}

func (r *DBUserRepo) ListUsers() ([]models.User, error) {
	var users []models.User
	err := db.DB.Find(&users).Error
	return users, err
}

func (r *DBUserRepo) GetUserByID(id uint) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, id).Error
	return user, err
}
