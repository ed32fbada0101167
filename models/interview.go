package models

import "time"

// InterviewStatusShortlisted is the interview outcome that deactivates the
// parent job description.
const InterviewStatusShortlisted = "Shortlisted"

type InterviewStatus struct {
	InterviewID   int        `gorm:"primaryKey;column:interview_id" json:"interview_id"`
	JobID         int        `gorm:"column:job_id" json:"job_id"`
	CandidateName string     `gorm:"column:candidate_name" json:"candidate_name"`
	InterviewDate time.Time  `gorm:"column:interview_date" json:"interview_date"`
	InterviewTime string     `gorm:"column:interview_time" json:"interview_time"` // HH:MM, kept as text
	InterviewType string     `gorm:"column:interview_type" json:"interview_type"` // Technical | HR | Final ...
	Status        string     `gorm:"column:status" json:"status"`
	Feedback      string     `gorm:"column:feedback" json:"feedback"`
	CreateAt      *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt      *time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	JobDescription *JobDescription         `gorm:"foreignKey:JobID" json:"job_description,omitempty"`
	Assignments    []InterviewerAssignment `gorm:"foreignKey:InterviewID" json:"assignments,omitempty"`
}

type InterviewerAssignment struct {
	AssignmentID  int `gorm:"primaryKey;column:assignment_id" json:"assignment_id"`
	InterviewID   int `gorm:"column:interview_id" json:"interview_id"`
	InterviewerID int `gorm:"column:interviewer_id" json:"interviewer_id"`

	Interviewer *Interviewer `gorm:"foreignKey:InterviewerID" json:"interviewer,omitempty"`
}

type Interviewer struct {
	InterviewerID int        `gorm:"primaryKey;column:interviewer_id" json:"interviewer_id"`
	Name          string     `gorm:"column:name" json:"name"`
	Role          string     `gorm:"column:role" json:"role"`
	IsActive      bool       `gorm:"column:is_active" json:"is_active"`
	CreateAt      *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt      *time.Time `gorm:"column:update_at" json:"update_at"`
}

// TableName overrides
func (InterviewStatus) TableName() string {
	return "interview_statuses"
}

func (InterviewerAssignment) TableName() string {
	return "interviewer_assignments"
}

func (Interviewer) TableName() string {
	return "interviewers"
}
