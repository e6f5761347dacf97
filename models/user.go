package models

type User struct {
	UserID            uint    `gorm:"primaryKey;column:user_id" json:"userId"`
	Username          string  `gorm:"size:50;not null;unique" json:"username"`
	ProfilePictureURL *string `gorm:"column:profile_picture_url;size:255" json:"profilePictureUrl,omitempty"`
	TeamID            *uint   `gorm:"column:team_id" json:"teamId,omitempty"`
}
