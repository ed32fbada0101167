package services

import (
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"jd-portal-api/config"
	"jd-portal-api/models"
)

// Event types mirror the notifications.type column.
const (
	EventJDCreated          = "JD_Created"
	EventCVUploaded         = "CV_Uploaded"
	EventCVReviewed         = "CV_Reviewed"
	EventInterviewScheduled = "Interview_Scheduled"
)

// Event is a state change that fans out to notifications. Job is always
// set; Submission and Decision only apply to the CV events.
type Event struct {
	Type       string
	Job        *models.JobDescription
	Submission *models.CVSubmission
	Actor      *models.User
	Decision   string
}

// recipientSelector resolves the users a given event notifies.
type recipientSelector func(tx *gorm.DB, ev Event) ([]models.User, error)

// recipientSelectors is the fan-out table. New event types are additive
// here; nothing else in the fan-out path branches on the event type except
// the message builder.
var recipientSelectors = map[string]recipientSelector{
	EventJDCreated:          selectHRUsers,
	EventCVUploaded:         selectJobCreator,
	EventCVReviewed:         selectCVSubmitter,
	EventInterviewScheduled: selectJobCreator,
}

func selectHRUsers(tx *gorm.DB, _ Event) ([]models.User, error) {
	var users []models.User
	if err := tx.Where("role_id = ? AND delete_at IS NULL", models.RoleHR).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func selectJobCreator(tx *gorm.DB, ev Event) ([]models.User, error) {
	return selectSingleUser(tx, ev.Job.CreatedBy)
}

func selectCVSubmitter(tx *gorm.DB, ev Event) ([]models.User, error) {
	return selectSingleUser(tx, ev.Submission.SubmittedBy)
}

func selectSingleUser(tx *gorm.DB, userID int) ([]models.User, error) {
	var user models.User
	if err := tx.Where("user_id = ? AND delete_at IS NULL", userID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return []models.User{user}, nil
}

// BuildEventMessage renders the title and body for an event. The review
// decision appears in lower case in the body.
func BuildEventMessage(ev Event) (title, message string) {
	actorName := ""
	if ev.Actor != nil {
		actorName = ev.Actor.DisplayName()
	}

	switch ev.Type {
	case EventJDCreated:
		return "New Job Description Posted",
			fmt.Sprintf("A new job description '%s' has been posted by %s.", ev.Job.Title, actorName)
	case EventCVUploaded:
		return "New CV Submission",
			fmt.Sprintf("A new CV for %s has been submitted by %s for the %s position.",
				ev.Submission.CandidateName, actorName, ev.Job.Title)
	case EventCVReviewed:
		return "CV Review Updated",
			fmt.Sprintf("Your CV submission for %s has been %s by %s.",
				ev.Job.Title, strings.ToLower(ev.Decision), actorName)
	case EventInterviewScheduled:
		return "Interview Scheduled",
			fmt.Sprintf("An interview has been scheduled for the %s position.", ev.Job.Title)
	}
	return "", ""
}

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// FanOut creates one notification per recipient of the event, inside the
// caller's transaction. The triggering write and the fan-out commit or
// roll back together.
func (s *NotificationService) FanOut(tx *gorm.DB, ev Event) ([]models.User, error) {
	selector, ok := recipientSelectors[ev.Type]
	if !ok {
		return nil, fmt.Errorf("no recipient selector for event type %s", ev.Type)
	}

	recipients, err := selector(tx, ev)
	if err != nil {
		return nil, err
	}

	title, message := BuildEventMessage(ev)
	now := time.Now()

	for _, recipient := range recipients {
		n := models.Notification{
			UserID:   recipient.UserID,
			Title:    title,
			Message:  message,
			Type:     ev.Type,
			IsRead:   false,
			IsActive: true,
			CreateAt: now,
		}
		if ev.Job != nil {
			jobID := ev.Job.JobID
			n.JobID = &jobID
		}
		if ev.Submission != nil {
			submissionID := ev.Submission.SubmissionID
			n.SubmissionID = &submissionID
		}
		if err := tx.Create(&n).Error; err != nil {
			return nil, err
		}
	}

	return recipients, nil
}

// AfterCommit runs the best-effort side effects of a fan-out: cache
// invalidation for every recipient, then email copies from a goroutine.
// Call only after the surrounding transaction has committed.
func (s *NotificationService) AfterCommit(ev Event, recipients []models.User) {
	for _, recipient := range recipients {
		s.InvalidateUserCache(recipient.UserID)
	}

	title, message := BuildEventMessage(ev)
	go func() {
		for _, recipient := range recipients {
			if recipient.Email == "" {
				continue
			}
			html := buildEmailHTML(title, recipient.DisplayName(), message)
			if err := config.SendMail([]string{recipient.Email}, title, html); err != nil {
				log.Printf("notification email send failed (subject=%q to=%s): %v", title, recipient.Email, err)
			}
		}
	}()
}

// ListForUser returns a page of active notifications, newest first. The
// default page (all, limit 20, offset 0) is served from redis when warm.
func (s *NotificationService) ListForUser(userID int, unreadOnly bool, limit, offset int) ([]models.Notification, error) {
	defaultPage := !unreadOnly && limit == 20 && offset == 0

	if defaultPage {
		if rdb, err := config.ConnectRedis(); err == nil {
			var cached []models.Notification
			if err := GetFromRedis(config.Ctx, rdb, notificationListKey(userID), &cached); err == nil && len(cached) > 0 {
				return cached, nil
			}
		}
	}

	q := s.db.Model(&models.Notification{}).Where("user_id = ? AND is_active = ?", userID, true)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var items []models.Notification
	if err := q.Order("create_at DESC").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}

	if defaultPage {
		if rdb, err := config.ConnectRedis(); err == nil {
			_ = SetToRedis(config.Ctx, rdb, notificationListKey(userID), items, notificationCacheTTL)
		}
	}

	return items, nil
}

// UnreadCount returns the number of unread active notifications.
func (s *NotificationService) UnreadCount(userID int) (int64, error) {
	if rdb, err := config.ConnectRedis(); err == nil {
		var cached *int64
		if err := GetFromRedis(config.Ctx, rdb, notificationCountKey(userID), &cached); err == nil && cached != nil {
			return *cached, nil
		}
	}

	var n int64
	if err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ? AND is_active = ?", userID, false, true).
		Count(&n).Error; err != nil {
		return 0, err
	}

	if rdb, err := config.ConnectRedis(); err == nil {
		_ = SetToRedis(config.Ctx, rdb, notificationCountKey(userID), n, notificationCacheTTL)
	}

	return n, nil
}

// MarkRead flags one notification as read. Marking an already-read
// notification again is a no-op success.
func (s *NotificationService) MarkRead(notificationID, userID int) error {
	err := s.db.Model(&models.Notification{}).
		Where("notification_id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true).Error
	if err != nil {
		return err
	}
	s.InvalidateUserCache(userID)
	return nil
}

// MarkAllRead flags every unread active notification of the user as read.
func (s *NotificationService) MarkAllRead(userID int) error {
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ? AND is_active = ?", userID, false, true).
		Update("is_read", true).Error
	if err != nil {
		return err
	}
	s.InvalidateUserCache(userID)
	return nil
}

// InvalidateUserCache drops the user's cached notification list and
// counter. Safe to call when redis is down.
func (s *NotificationService) InvalidateUserCache(userID int) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	_ = DeleteFromRedis(config.Ctx, rdb, notificationListKey(userID))
	_ = DeleteFromRedis(config.Ctx, rdb, notificationCountKey(userID))
}

func buildEmailHTML(subject, recipientName, message string) string {
	name := strings.TrimSpace(recipientName)
	if name == "" {
		name = "there"
	}

	escapedSubject := template.HTMLEscapeString(subject)
	escapedGreeting := template.HTMLEscapeString(fmt.Sprintf("Dear %s,", name))
	escapedMessage := template.HTMLEscapeString(strings.TrimSpace(message))

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
</head>
<body style="margin:0;padding:0;background-color:#f9fafb;font-family:'Segoe UI',Tahoma,Arial,sans-serif;">
<div style="max-width:640px;margin:0 auto;padding:24px 20px;">
  <div style="background-color:#ffffff;border:1px solid #e5e7eb;border-radius:12px;padding:24px 24px 28px 24px;">
    <p style="margin:0 0 16px 0;font-size:16px;line-height:1.7;color:#111827;">%s</p>
    <p style="margin:0 0 0 0;font-size:16px;line-height:1.7;color:#111827;word-break:break-word;">%s</p>
  </div>
</div>
</body>
</html>`, escapedSubject, escapedGreeting, escapedMessage)
}
