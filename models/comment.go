package models

type Comment struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Text   string `gorm:"not null" json:"text"`
	TaskID uint   `gorm:"not null;index" json:"taskId"`
	UserID uint   `gorm:"not null" json:"userId"`

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"-"`
}
