package services

import (
	"taskboard/models"
	"taskboard/repositories"
)

type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.Repos.User.ListUsers()
}
