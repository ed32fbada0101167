package models

import "time"

// CV submission statuses. Pending is the only non-terminal state; a review
// moves the submission to Accepted or Rejected exactly once.
const (
	CVStatusPending  = "Pending"
	CVStatusAccepted = "Accepted"
	CVStatusRejected = "Rejected"
)

type CVSubmission struct {
	SubmissionID     int        `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	JobID            int        `gorm:"column:job_id" json:"job_id"`
	CandidateName    string     `gorm:"column:candidate_name" json:"candidate_name"`
	CandidateEmail   string     `gorm:"column:candidate_email" json:"candidate_email"`
	OriginalFilename string     `gorm:"column:original_filename" json:"original_filename"`
	StoredFilename   string     `gorm:"column:stored_filename" json:"stored_filename"`
	Status           string     `gorm:"column:status" json:"status"` // Pending | Accepted | Rejected
	Comments         string     `gorm:"column:comments" json:"comments"`
	SubmissionDate   time.Time  `gorm:"column:submission_date" json:"submission_date"`
	ReviewedDate     *time.Time `gorm:"column:reviewed_date" json:"reviewed_date,omitempty"`
	SubmittedBy      int        `gorm:"column:submitted_by" json:"submitted_by"`
	ReviewedBy       *int       `gorm:"column:reviewed_by" json:"reviewed_by,omitempty"`
	CreateAt         *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt         *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt         *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	JobDescription  *JobDescription `gorm:"foreignKey:JobID" json:"job_description,omitempty"`
	SubmittedByUser *User           `gorm:"foreignKey:SubmittedBy" json:"submitted_by_user,omitempty"`
	ReviewedByUser  *User           `gorm:"foreignKey:ReviewedBy" json:"reviewed_by_user,omitempty"`
}

func (CVSubmission) TableName() string {
	return "cv_submissions"
}

// IsReviewed reports whether the submission has reached a terminal state.
func (s CVSubmission) IsReviewed() bool {
	return s.Status == CVStatusAccepted || s.Status == CVStatusRejected
}
