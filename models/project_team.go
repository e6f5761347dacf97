package models

// ProjectTeam is the join table between projects and teams. Populated by
// seed data only.
type ProjectTeam struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	TeamID    uint `gorm:"not null" json:"teamId"`
	ProjectID uint `gorm:"not null" json:"projectId"`
}
