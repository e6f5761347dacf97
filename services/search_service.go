package services

import (
	"taskboard/dto"
	"taskboard/repositories"
)

type SearchService struct {
	Repos *repositories.Repos
}

func NewSearchService(repos *repositories.Repos) *SearchService {
	return &SearchService{
		Repos: repos,
	}
}

// Search matches the query as a case-insensitive substring across task
// titles and descriptions, project names and descriptions, and usernames.
func (s *SearchService) Search(query string) (dto.SearchResults, error) {
	tasks, err := s.Repos.Search.SearchTasks(query)
	if err != nil {
		return dto.SearchResults{}, err
	}
	projects, err := s.Repos.Search.SearchProjects(query)
	if err != nil {
		return dto.SearchResults{}, err
	}
	users, err := s.Repos.Search.SearchUsers(query)
	if err != nil {
		return dto.SearchResults{}, err
	}
	return dto.SearchResults{
		Tasks:    tasks,
		Projects: projects,
		Users:    users,
	}, nil
}
