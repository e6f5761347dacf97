package services

import (
	"taskboard/dto"
	"taskboard/repositories"
)

type TeamService struct {
	Repos *repositories.Repos
}

func NewTeamService(repos *repositories.Repos) *TeamService {
	return &TeamService{
		Repos: repos,
	}
}

// ListTeams resolves product-owner and project-manager ids to usernames
// with a per-row lookup. Missing or dangling ids resolve to null.
func (s *TeamService) ListTeams() ([]dto.TeamWithUsernames, error) {
	teams, err := s.Repos.Team.ListTeams()
	if err != nil {
		return nil, err
	}

	rows := make([]dto.TeamWithUsernames, 0, len(teams))
	for _, team := range teams {
		rows = append(rows, dto.TeamWithUsernames{
			TeamID:                 team.TeamID,
			TeamName:               team.TeamName,
			ProductOwnerUserID:     team.ProductOwnerUserID,
			ProjectManagerUserID:   team.ProjectManagerUserID,
			ProductOwnerUsername:   s.lookupUsername(team.ProductOwnerUserID),
			ProjectManagerUsername: s.lookupUsername(team.ProjectManagerUserID),
		})
	}
	return rows, nil
}

func (s *TeamService) lookupUsername(id *uint) *string {
	if id == nil {
		return nil
	}
	user, err := s.Repos.User.GetUserByID(*id)
	if err != nil {
		return nil
	}
	return &user.Username
}
