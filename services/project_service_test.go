package services_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"

	"taskboard/dto"
	"taskboard/models"
	"taskboard/repositories"
	"taskboard/repositories/mock_repositories"
	"taskboard/services"
)

func setupProjectMocks(t *testing.T) (*services.ProjectService, *mock_repositories.MockProjectRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProject := mock_repositories.NewMockProjectRepo(ctrl)
	repos := &repositories.Repos{
		Project: mockProject,
	}
	return services.NewProjectService(repos), mockProject
}

func strPtr(s string) *string { return &s }

func TestProjectServiceCreate(t *testing.T) {

	t.Run("create success echoes fields and parses dates", func(t *testing.T) {
		svc, mockProject := setupProjectMocks(t)
		input := dto.CreateProjectDTO{
			Name:        "Website Redesign",
			Description: strPtr("new brand"),
			StartDate:   strPtr("2025-01-06T00:00:00Z"),
			EndDate:     strPtr("2025-06-30"),
		}

		mockProject.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *models.Project) error {
			p.ID = 4
			return nil
		})

		project, err := svc.CreateProject(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if project.ID != 4 {
			t.Fatalf("expected assigned id 4, got %d", project.ID)
		}
		if project.Name != "Website Redesign" {
			t.Fatalf("expected name echoed, got %s", project.Name)
		}
		if project.StartDate == nil || project.StartDate.Year() != 2025 {
			t.Fatal("expected startDate parsed")
		}
		if project.EndDate == nil || project.EndDate.Month() != 6 {
			t.Fatal("expected endDate parsed from date-only form")
		}
	})

	t.Run("create rejects malformed date", func(t *testing.T) {
		svc, _ := setupProjectMocks(t)
		input := dto.CreateProjectDTO{Name: "p", StartDate: strPtr("not-a-date")}

		_, err := svc.CreateProject(input)
		if !errors.Is(err, services.ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("duplicate id resyncs sequence and retries once", func(t *testing.T) {
		svc, mockProject := setupProjectMocks(t)
		dup := &pgconn.PgError{Code: "23505"}

		gomock.InOrder(
			mockProject.EXPECT().CreateProject(gomock.Any()).Return(dup),
			mockProject.EXPECT().ResyncIDSequence().Return(nil),
			mockProject.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *models.Project) error {
				p.ID = 9
				return nil
			}),
		)

		project, err := svc.CreateProject(dto.CreateProjectDTO{Name: "retry"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if project.ID != 9 {
			t.Fatalf("expected id from retried insert, got %d", project.ID)
		}
	})

	t.Run("second conflict is not retried again", func(t *testing.T) {
		svc, mockProject := setupProjectMocks(t)
		dup := &pgconn.PgError{Code: "23505"}

		gomock.InOrder(
			mockProject.EXPECT().CreateProject(gomock.Any()).Return(dup),
			mockProject.EXPECT().ResyncIDSequence().Return(nil),
			mockProject.EXPECT().CreateProject(gomock.Any()).Return(dup),
		)

		_, err := svc.CreateProject(dto.CreateProjectDTO{Name: "still-broken"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("non-conflict error is returned without retry", func(t *testing.T) {
		svc, mockProject := setupProjectMocks(t)
		mockProject.EXPECT().CreateProject(gomock.Any()).Return(errors.New("connection refused"))

		_, err := svc.CreateProject(dto.CreateProjectDTO{Name: "p"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
