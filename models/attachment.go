package models

type Attachment struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	FileURL      string  `gorm:"column:file_url;size:255;not null" json:"fileURL"`
	FileName     *string `gorm:"size:255" json:"fileName,omitempty"`
	TaskID       uint    `gorm:"not null;index" json:"taskId"`
	UploadedByID uint    `gorm:"not null" json:"uploadedById"`

	UploadedBy *User `gorm:"foreignKey:UploadedByID;references:UserID" json:"-"`
}
