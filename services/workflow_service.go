package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"jd-portal-api/models"
)

// Workflow errors. Controllers map these onto HTTP status codes.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrJobNotFound        = errors.New("job description not found")
	ErrJobInactive        = errors.New("job description is no longer active")
	ErrSubmissionNotFound = errors.New("cv submission not found")
	ErrMissingFields      = errors.New("title and description are required")
	ErrInvalidDecision    = errors.New("review status must be Accepted or Rejected")
	ErrNotJobCreator      = errors.New("only the creator of the job description may perform this action")
	ErrNotReviewer        = errors.New("only the reviewer of the cv submission may perform this action")
	ErrAlreadyReviewed    = errors.New("cv submission has already been reviewed")
)

// WorkflowService owns the status transitions for job descriptions and CV
// submissions and the notification fan-out they trigger. Every mutation
// runs the primary write and the fan-out in one transaction.
type WorkflowService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewWorkflowService(db *gorm.DB) *WorkflowService {
	return &WorkflowService{
		db:            db,
		notifications: NewNotificationService(db),
	}
}

// Notifications exposes the fan-out service sharing this workflow's DB handle.
func (s *WorkflowService) Notifications() *NotificationService {
	return s.notifications
}

type JobInput struct {
	Title          string
	Description    string
	Requirements   string
	Department     string
	Location       string
	Client         string
	LastDate       *time.Time
	StoredFilename *string
}

// CreateJobDescription persists a new Active job description and notifies
// every HR user.
func (s *WorkflowService) CreateJobDescription(actorID int, in JobInput) (*models.JobDescription, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return nil, ErrMissingFields
	}

	actor, err := s.loadUser(actorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	job := models.JobDescription{
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		Requirements: in.Requirements,
		Department:   in.Department,
		Location:     in.Location,
		Client:       in.Client,
		PostedDate:   now,
		LastDate:     in.LastDate,
		Status:       models.JobStatusActive,
		IsActive:     true,
		FilePath:     in.StoredFilename,
		CreatedBy:    actor.UserID,
		CreateAt:     &now,
	}

	var recipients []models.User
	ev := Event{Type: EventJDCreated, Actor: actor}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&job).Error; err != nil {
			return err
		}
		ev.Job = &job
		recipients, err = s.notifications.FanOut(tx, ev)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notifications.AfterCommit(ev, recipients)
	return &job, nil
}

// UpdateJobDescription replaces the editable fields of an existing job.
// The status flags are not touched here; deactivation goes through
// DeleteJobDescription or a shortlisted interview.
func (s *WorkflowService) UpdateJobDescription(actorID, jobID int, in JobInput) (*models.JobDescription, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return nil, ErrMissingFields
	}

	job, err := s.loadJob(jobID)
	if err != nil {
		return nil, err
	}
	if job.CreatedBy != actorID {
		return nil, ErrNotJobCreator
	}

	now := time.Now()
	job.Title = strings.TrimSpace(in.Title)
	job.Description = in.Description
	job.Requirements = in.Requirements
	job.Department = in.Department
	job.Location = in.Location
	job.Client = in.Client
	job.LastDate = in.LastDate
	job.UpdateAt = &now
	if in.StoredFilename != nil {
		job.FilePath = in.StoredFilename
	}

	if err := s.db.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJobDescription soft-deletes a job and cascades at application
// level: dependent CV submissions are soft-deleted and notifications that
// reference the job are deactivated, all in one transaction.
func (s *WorkflowService) DeleteJobDescription(actorID, jobID int) error {
	job, err := s.loadJob(jobID)
	if err != nil {
		return err
	}
	if job.CreatedBy != actorID {
		return ErrNotJobCreator
	}

	now := time.Now()
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.JobDescription{}).
			Where("job_id = ?", jobID).
			Updates(map[string]interface{}{
				"status":    models.JobStatusInactive,
				"is_active": false,
				"update_at": now,
				"delete_at": now,
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.CVSubmission{}).
			Where("job_id = ? AND delete_at IS NULL", jobID).
			Updates(map[string]interface{}{
				"update_at": now,
				"delete_at": now,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Notification{}).
			Where("job_id = ?", jobID).
			Update("is_active", false).Error
	})
}

// UploadCV records a Pending submission against an active job and notifies
// the job's creator.
func (s *WorkflowService) UploadCV(actorID, jobID int, candidateName, candidateEmail, originalFilename, storedFilename string) (*models.CVSubmission, error) {
	actor, err := s.loadUser(actorID)
	if err != nil {
		return nil, err
	}

	job, err := s.loadJob(jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsActive {
		return nil, ErrJobInactive
	}

	now := time.Now()
	submission := models.CVSubmission{
		JobID:            job.JobID,
		CandidateName:    candidateName,
		CandidateEmail:   candidateEmail,
		OriginalFilename: originalFilename,
		StoredFilename:   storedFilename,
		Status:           models.CVStatusPending,
		Comments:         "CV Uploaded",
		SubmissionDate:   now,
		SubmittedBy:      actor.UserID,
		CreateAt:         &now,
	}

	var recipients []models.User
	ev := Event{Type: EventCVUploaded, Job: job, Actor: actor}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&submission).Error; err != nil {
			return err
		}
		ev.Submission = &submission
		recipients, err = s.notifications.FanOut(tx, ev)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notifications.AfterCommit(ev, recipients)
	return &submission, nil
}

// ReviewCV applies the single Pending -> Accepted|Rejected transition. The
// reviewer must be the creator of the parent job. The update is a
// compare-and-swap on the Pending status, so a concurrent review loses
// with ErrAlreadyReviewed instead of silently overwriting.
func (s *WorkflowService) ReviewCV(actorID, submissionID int, decision, comments string) (*models.CVSubmission, error) {
	if decision != models.CVStatusAccepted && decision != models.CVStatusRejected {
		return nil, ErrInvalidDecision
	}

	actor, err := s.loadUser(actorID)
	if err != nil {
		return nil, err
	}

	submission, err := s.loadSubmission(submissionID)
	if err != nil {
		return nil, err
	}

	job, err := s.loadJob(submission.JobID)
	if err != nil {
		return nil, err
	}
	if job.CreatedBy != actor.UserID {
		return nil, ErrNotJobCreator
	}
	if submission.IsReviewed() {
		return nil, ErrAlreadyReviewed
	}

	now := time.Now()
	var recipients []models.User
	ev := Event{Type: EventCVReviewed, Job: job, Actor: actor, Decision: decision}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CVSubmission{}).
			Where("submission_id = ? AND status = ?", submissionID, models.CVStatusPending).
			Updates(map[string]interface{}{
				"status":        decision,
				"comments":      comments,
				"reviewed_by":   actor.UserID,
				"reviewed_date": now,
				"update_at":     now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyReviewed
		}

		submission.Status = decision
		submission.Comments = comments
		submission.ReviewedBy = &actor.UserID
		submission.ReviewedDate = &now
		submission.UpdateAt = &now

		ev.Submission = submission
		recipients, err = s.notifications.FanOut(tx, ev)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notifications.AfterCommit(ev, recipients)
	return submission, nil
}

// DeleteCVSubmission soft-deletes a reviewed submission and deactivates
// its notifications. Only the user who reviewed it may delete it.
func (s *WorkflowService) DeleteCVSubmission(actorID, submissionID int) error {
	submission, err := s.loadSubmission(submissionID)
	if err != nil {
		return err
	}
	if submission.ReviewedBy == nil || *submission.ReviewedBy != actorID {
		return ErrNotReviewer
	}

	now := time.Now()
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.CVSubmission{}).
			Where("submission_id = ?", submissionID).
			Updates(map[string]interface{}{
				"update_at": now,
				"delete_at": now,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Notification{}).
			Where("submission_id = ?", submissionID).
			Update("is_active", false).Error
	})
}

type InterviewInput struct {
	JobID          int
	CandidateName  string
	InterviewDate  time.Time
	InterviewTime  string
	InterviewType  string
	Status         string
	Feedback       string
	InterviewerIDs []int
}

// ScheduleInterview records an interview for a candidate. A Shortlisted
// status deactivates the parent job in the same transaction. The job's
// creator is notified.
func (s *WorkflowService) ScheduleInterview(actorID int, in InterviewInput) (*models.InterviewStatus, error) {
	actor, err := s.loadUser(actorID)
	if err != nil {
		return nil, err
	}

	job, err := s.loadJob(in.JobID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	interview := models.InterviewStatus{
		JobID:         job.JobID,
		CandidateName: in.CandidateName,
		InterviewDate: in.InterviewDate,
		InterviewTime: in.InterviewTime,
		InterviewType: in.InterviewType,
		Status:        in.Status,
		Feedback:      in.Feedback,
		CreateAt:      &now,
	}

	var recipients []models.User
	ev := Event{Type: EventInterviewScheduled, Job: job, Actor: actor}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&interview).Error; err != nil {
			return err
		}

		for _, interviewerID := range in.InterviewerIDs {
			assignment := models.InterviewerAssignment{
				InterviewID:   interview.InterviewID,
				InterviewerID: interviewerID,
			}
			if err := tx.Create(&assignment).Error; err != nil {
				return err
			}
		}

		if strings.EqualFold(in.Status, models.InterviewStatusShortlisted) {
			if err := tx.Model(&models.JobDescription{}).
				Where("job_id = ?", job.JobID).
				Updates(map[string]interface{}{
					"status":    models.JobStatusInactive,
					"is_active": false,
					"update_at": now,
				}).Error; err != nil {
				return err
			}
		}

		recipients, err = s.notifications.FanOut(tx, ev)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notifications.AfterCommit(ev, recipients)
	return &interview, nil
}

func (s *WorkflowService) loadUser(userID int) (*models.User, error) {
	var user models.User
	if err := s.db.Where("user_id = ? AND delete_at IS NULL", userID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *WorkflowService) loadJob(jobID int) (*models.JobDescription, error) {
	var job models.JobDescription
	if err := s.db.Where("job_id = ? AND delete_at IS NULL", jobID).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (s *WorkflowService) loadSubmission(submissionID int) (*models.CVSubmission, error) {
	var submission models.CVSubmission
	if err := s.db.Where("submission_id = ? AND delete_at IS NULL", submissionID).First(&submission).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &submission, nil
}
