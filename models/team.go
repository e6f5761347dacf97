package models

type Team struct {
	TeamID               uint   `gorm:"primaryKey;column:team_id" json:"teamId"`
	TeamName             string `gorm:"size:100;not null" json:"teamName"`
	ProductOwnerUserID   *uint  `gorm:"column:product_owner_user_id" json:"productOwnerUserId,omitempty"`
	ProjectManagerUserID *uint  `gorm:"column:project_manager_user_id" json:"projectManagerUserId,omitempty"`
}
