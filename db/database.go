package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"taskboard/config"
	"taskboard/models"
)

var DB *gorm.DB

func createEnums() {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE task_status AS ENUM ('To Do', 'Work In Progress', 'Under Review', 'Completed'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE task_priority AS ENUM ('Urgent', 'High', 'Medium', 'Low', 'Backlog'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := DB.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	if err := InitFromDSN(dsn); err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	log.Println("Database connected and migrated")
}

// InitFromDSN connects with an explicit DSN, creates the enum types and
// runs migrations. Integration tests use this against a throwaway database.
func InitFromDSN(dsn string) error {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}
	DB = gormDB

	createEnums()

	return Migrate(DB)
}

// Migrate runs AutoMigrate in dependency order so foreign keys resolve.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&models.Team{},
		&models.Project{},
		&models.ProjectTeam{},
		&models.User{},
		&models.Task{},
		&models.Attachment{},
		&models.Comment{},
		&models.TaskAssignment{},
	)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
