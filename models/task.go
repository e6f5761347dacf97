package models

import "time"

type Status string

const (
	StatusToDo           Status = "To Do"
	StatusWorkInProgress Status = "Work In Progress"
	StatusUnderReview    Status = "Under Review"
	StatusCompleted      Status = "Completed"
)

// AllStatuses is the canonical board-column order.
var AllStatuses = []Status{
	StatusToDo,
	StatusWorkInProgress,
	StatusUnderReview,
	StatusCompleted,
}

func (s Status) Valid() bool {
	switch s {
	case StatusToDo, StatusWorkInProgress, StatusUnderReview, StatusCompleted:
		return true
	}
	return false
}

type Priority string

const (
	PriorityUrgent  Priority = "Urgent"
	PriorityHigh    Priority = "High"
	PriorityMedium  Priority = "Medium"
	PriorityLow     Priority = "Low"
	PriorityBacklog Priority = "Backlog"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow, PriorityBacklog:
		return true
	}
	return false
}

type Task struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Title          string     `gorm:"size:255;not null" json:"title"`
	Description    *string    `json:"description,omitempty"`
	Status         *Status    `gorm:"type:task_status" json:"status,omitempty"`
	Priority       *Priority  `gorm:"type:task_priority" json:"priority,omitempty"`
	Tags           *string    `json:"tags,omitempty"` // comma-joined
	StartDate      *time.Time `json:"startDate,omitempty"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	Points         *int       `json:"points,omitempty"`
	ProjectID      uint       `gorm:"not null;index" json:"projectId"`
	AuthorUserID   uint       `gorm:"not null" json:"authorUserId"`
	AssignedUserID *uint      `json:"assignedUserId,omitempty"`

	Project     *Project     `gorm:"foreignKey:ProjectID" json:"-"`
	Author      *User        `gorm:"foreignKey:AuthorUserID;references:UserID" json:"author,omitempty"`
	Assignee    *User        `gorm:"foreignKey:AssignedUserID;references:UserID" json:"assignee,omitempty"`
	Comments    []Comment    `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
	Attachments []Attachment `gorm:"foreignKey:TaskID" json:"attachments,omitempty"`
}
