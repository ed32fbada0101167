package services

import (
	"database/sql/driver"
	"regexp"
	"strings"
	"testing"

	"jd-portal-api/models"
)

func TestRecipientSelectorsCoverEveryEventType(t *testing.T) {
	for _, eventType := range []string{EventJDCreated, EventCVUploaded, EventCVReviewed, EventInterviewScheduled} {
		if _, ok := recipientSelectors[eventType]; !ok {
			t.Fatalf("no recipient selector registered for %s", eventType)
		}
	}
}

func TestBuildEventMessage(t *testing.T) {
	actor := &models.User{FirstName: "Ann", LastName: "Lee"}
	job := &models.JobDescription{JobID: 5, Title: "Backend Engineer"}
	submission := &models.CVSubmission{SubmissionID: 3, CandidateName: "John Smith"}

	cases := []struct {
		name        string
		ev          Event
		wantTitle   string
		wantMessage string
	}{
		{
			name:        "jd created",
			ev:          Event{Type: EventJDCreated, Job: job, Actor: actor},
			wantTitle:   "New Job Description Posted",
			wantMessage: "A new job description 'Backend Engineer' has been posted by Ann Lee.",
		},
		{
			name:        "cv uploaded",
			ev:          Event{Type: EventCVUploaded, Job: job, Submission: submission, Actor: actor},
			wantTitle:   "New CV Submission",
			wantMessage: "A new CV for John Smith has been submitted by Ann Lee for the Backend Engineer position.",
		},
		{
			name:        "cv accepted uses lower case decision",
			ev:          Event{Type: EventCVReviewed, Job: job, Submission: submission, Actor: actor, Decision: models.CVStatusAccepted},
			wantTitle:   "CV Review Updated",
			wantMessage: "Your CV submission for Backend Engineer has been accepted by Ann Lee.",
		},
		{
			name:        "cv rejected uses lower case decision",
			ev:          Event{Type: EventCVReviewed, Job: job, Submission: submission, Actor: actor, Decision: models.CVStatusRejected},
			wantTitle:   "CV Review Updated",
			wantMessage: "Your CV submission for Backend Engineer has been rejected by Ann Lee.",
		},
		{
			name:        "interview scheduled",
			ev:          Event{Type: EventInterviewScheduled, Job: job, Actor: actor},
			wantTitle:   "Interview Scheduled",
			wantMessage: "An interview has been scheduled for the Backend Engineer position.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			title, message := BuildEventMessage(tc.ev)
			if title != tc.wantTitle {
				t.Fatalf("title: got %q want %q", title, tc.wantTitle)
			}
			if message != tc.wantMessage {
				t.Fatalf("message: got %q want %q", message, tc.wantMessage)
			}
		})
	}
}

func TestFanOutCreatesOneNotificationPerHRUser(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM .users. WHERE role_id = \\?"),
			args:    []driver.Value{int64(models.RoleHR)},
			columns: []string{"user_id", "first_name", "last_name", "email", "role_id"},
			rows: [][]driver.Value{
				{int64(11), "Hana", "Pham", "", int64(models.RoleHR)},
				{int64(12), "Duc", "Vo", "", int64(models.RoleHR)},
			},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO .notifications."),
			anyArgs: true,
			result:  scriptedResult{lastInsertID: 101, rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO .notifications."),
			anyArgs: true,
			result:  scriptedResult{lastInsertID: 102, rowsAffected: 1},
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewNotificationService(gormDB)
	ev := Event{
		Type:  EventJDCreated,
		Job:   &models.JobDescription{JobID: 5, Title: "Backend Engineer"},
		Actor: &models.User{UserID: 7, FirstName: "Ann", LastName: "Lee"},
	}

	recipients, err := svc.FanOut(gormDB, ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recipients) != 2 {
		t.Fatalf("expected 2 recipients, got %d", len(recipients))
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestFanOutRejectsUnknownEventType(t *testing.T) {
	gormDB, _, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewNotificationService(gormDB)
	_, err := svc.FanOut(gormDB, Event{Type: "Candidate_Hired"})
	if err == nil || !strings.Contains(err.Error(), "no recipient selector") {
		t.Fatalf("expected selector error, got %v", err)
	}
}

func TestMarkReadAgainIsNoOp(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE .notifications. SET .is_read."),
			anyArgs: true,
			result:  scriptedResult{rowsAffected: 0},
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewNotificationService(gormDB)
	if err := svc.MarkRead(5, 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}
