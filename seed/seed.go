package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard/models"
	"taskboard/repositories"
)

//go:embed data/*.json
var fixtureFS embed.FS

// serial sequences to realign after inserting fixture rows with explicit
// ids. Without this the next insert collides with a seeded id.
var sequences = []struct {
	table  string
	column string
}{
	{"teams", "team_id"},
	{"projects", "id"},
	{"project_teams", "id"},
	{"users", "user_id"},
	{"tasks", "id"},
	{"attachments", "id"},
	{"comments", "id"},
	{"task_assignments", "id"},
}

func loadFixture[T any](name string) ([]T, error) {
	raw, err := fixtureFS.ReadFile("data/" + name)
	if err != nil {
		return nil, err
	}
	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return rows, nil
}

func insertAll[T any](gormDB *gorm.DB, name string, l *zap.Logger) error {
	rows, err := loadFixture[T](name)
	if err != nil {
		return err
	}
	for i := range rows {
		if err := gormDB.Create(&rows[i]).Error; err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
	}
	l.Info("seeded fixture", zap.String("file", name), zap.Int("rows", len(rows)))
	return nil
}

// Run clears every table in reverse dependency order, inserts the bundled
// fixtures in dependency order, then resyncs all serial sequences.
func Run(gormDB *gorm.DB, l *zap.Logger) error {
	if l == nil {
		l = zap.NewNop()
	}

	session := gormDB.Session(&gorm.Session{AllowGlobalUpdate: true})
	deleteOrder := []interface{}{
		&models.TaskAssignment{},
		&models.Attachment{},
		&models.Comment{},
		&models.Task{},
		&models.ProjectTeam{},
		&models.User{},
		&models.Project{},
		&models.Team{},
	}
	for _, model := range deleteOrder {
		if err := session.Delete(model).Error; err != nil {
			return fmt.Errorf("clear table: %w", err)
		}
	}

	if err := insertAll[models.Team](gormDB, "team.json", l); err != nil {
		return err
	}
	if err := insertAll[models.Project](gormDB, "project.json", l); err != nil {
		return err
	}
	if err := insertAll[models.ProjectTeam](gormDB, "projectTeam.json", l); err != nil {
		return err
	}
	if err := insertAll[models.User](gormDB, "user.json", l); err != nil {
		return err
	}
	if err := insertAll[models.Task](gormDB, "task.json", l); err != nil {
		return err
	}
	if err := insertAll[models.Attachment](gormDB, "attachment.json", l); err != nil {
		return err
	}
	if err := insertAll[models.Comment](gormDB, "comment.json", l); err != nil {
		return err
	}
	if err := insertAll[models.TaskAssignment](gormDB, "taskAssignment.json", l); err != nil {
		return err
	}

	for _, seq := range sequences {
		if err := repositories.ResyncSequence(gormDB, seq.table, seq.column); err != nil {
			return fmt.Errorf("resync %s: %w", seq.table, err)
		}
	}
	l.Info("sequences resynced", zap.Int("count", len(sequences)))
	return nil
}
