package models

import "time"

// Job description statuses. A job is created Active and moves to Inactive
// exactly once, either by a creator delete request or by a shortlisted
// interview. There is no transition back.
const (
	JobStatusActive   = "Active"
	JobStatusInactive = "Inactive"
)

type JobDescription struct {
	JobID        int        `gorm:"primaryKey;column:job_id" json:"job_id"`
	Title        string     `gorm:"column:title" json:"title"`
	Description  string     `gorm:"column:description" json:"description"`
	Requirements string     `gorm:"column:requirements" json:"requirements"`
	Department   string     `gorm:"column:department" json:"department"`
	Location     string     `gorm:"column:location" json:"location"`
	Client       string     `gorm:"column:client" json:"client"`
	PostedDate   time.Time  `gorm:"column:posted_date" json:"posted_date"`
	LastDate     *time.Time `gorm:"column:last_date" json:"last_date,omitempty"`
	Status       string     `gorm:"column:status" json:"status"` // Active | Inactive
	IsActive     bool       `gorm:"column:is_active" json:"is_active"`
	FilePath     *string    `gorm:"column:file_path" json:"file_path,omitempty"` // stored filename of the uploaded JD document
	CreatedBy    int        `gorm:"column:created_by" json:"created_by"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	CreatedByUser *User          `gorm:"foreignKey:CreatedBy" json:"created_by_user,omitempty"`
	Submissions   []CVSubmission `gorm:"foreignKey:JobID" json:"submissions,omitempty"`
}

func (JobDescription) TableName() string {
	return "job_descriptions"
}
