package services

import "taskboard/repositories"

type Services struct {
	Project *ProjectService
	Task    *TaskService
	User    *UserService
	Team    *TeamService
	Search  *SearchService
}

func New(repos *repositories.Repos) *Services {
	return &Services{
		Project: NewProjectService(repos),
		Task:    NewTaskService(repos),
		User:    NewUserService(repos),
		Team:    NewTeamService(repos),
		Search:  NewSearchService(repos),
	}
}
