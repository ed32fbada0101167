package models

import "time"

type Notification struct {
	NotificationID int        `gorm:"primaryKey;column:notification_id" json:"notification_id"`
	UserID         int        `gorm:"column:user_id" json:"user_id"`
	Title          string     `gorm:"column:title" json:"title"`
	Message        string     `gorm:"column:message" json:"message"`
	Type           string     `gorm:"column:type" json:"type"` // JD_Created | CV_Uploaded | CV_Reviewed | Interview_Scheduled
	JobID          *int       `gorm:"column:job_id" json:"job_id,omitempty"`
	SubmissionID   *int       `gorm:"column:submission_id" json:"submission_id,omitempty"`
	IsRead         bool       `gorm:"column:is_read" json:"is_read"`
	IsActive       bool       `gorm:"column:is_active" json:"is_active"`
	CreateAt       time.Time  `gorm:"column:create_at" json:"created_at"`
	UpdateAt       *time.Time `gorm:"column:update_at" json:"-"`
}

func (Notification) TableName() string { return "notifications" }
