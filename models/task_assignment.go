package models

// TaskAssignment links extra users to a task beyond the single assignee.
// Populated by seed data only.
type TaskAssignment struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null" json:"userId"`
	TaskID uint `gorm:"not null" json:"taskId"`
}
