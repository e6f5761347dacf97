package dto

type CreateTaskDTO struct {
	Title          string    `json:"title"`
	Description    *string   `json:"description,omitempty"`
	Status         *string   `json:"status,omitempty"`
	Priority       *string   `json:"priority,omitempty"`
	Tags           *string   `json:"tags,omitempty"`
	StartDate      *string   `json:"startDate,omitempty"`
	DueDate        *string   `json:"dueDate,omitempty"`
	Points         *FlexInt  `json:"points,omitempty"`
	ProjectID      FlexUint  `json:"projectId"`
	AuthorUserID   FlexUint  `json:"authorUserId"`
	AssignedUserID *FlexUint `json:"assignedUserId,omitempty"`
}

type UpdateTaskStatusDTO struct {
	Status string `json:"status"`
}
