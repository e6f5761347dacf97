package handlers

import "taskboard/services"

type Handlers struct {
	Project *ProjectHandler
	Task    *TaskHandler
	User    *UserHandler
	Team    *TeamHandler
	Search  *SearchHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Project: NewProjectHandler(svc.Project),
		Task:    NewTaskHandler(svc.Task),
		User:    NewUserHandler(svc.User),
		Team:    NewTeamHandler(svc.Team),
		Search:  NewSearchHandler(svc.Search),
	}
}
