package dto

import "taskboard/models"

type SearchResults struct {
	Tasks    []models.Task    `json:"tasks"`
	Projects []models.Project `json:"projects"`
	Users    []models.User    `json:"users"`
}
