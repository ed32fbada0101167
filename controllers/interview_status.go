package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jd-portal-api/models"
	"jd-portal-api/services"
	"jd-portal-api/utils"
)

// GetInterviewStatuses lists every interview with its job and interviewers.
func GetInterviewStatuses(c *gin.Context) {
	var interviews []models.InterviewStatus
	if err := getDB().Preload("JobDescription").
		Preload("Assignments").Preload("Assignments.Interviewer").
		Order("interview_date DESC").
		Find(&interviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch interview statuses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"interview_statuses": interviews})
}

// GetInterviewStatus returns one interview.
func GetInterviewStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var interview models.InterviewStatus
	if err := getDB().Preload("JobDescription").
		Preload("Assignments").Preload("Assignments.Interviewer").
		Where("interview_id = ?", id).
		First(&interview).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Interview status not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"interview_status": interview})
}

// CreateInterviewStatus schedules an interview. A Shortlisted status
// deactivates the parent job description.
func CreateInterviewStatus(c *gin.Context) {
	actorID, ok := getCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		JobDescriptionID int    `json:"job_description_id" binding:"required"`
		CandidateName    string `json:"candidate_name" binding:"required"`
		InterviewDate    string `json:"interview_date" binding:"required"` // YYYY-MM-DD
		InterviewTime    string `json:"interview_time" binding:"required"` // HH:MM
		InterviewType    string `json:"interview_type" binding:"required"`
		Status           string `json:"status" binding:"required"`
		Feedback         string `json:"feedback"`
		InterviewerIDs   []int  `json:"interviewer_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	interviewDate, err := time.Parse("2006-01-02", req.InterviewDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interview_date, expected YYYY-MM-DD"})
		return
	}
	if _, err := time.Parse("15:04", req.InterviewTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interview_time, expected HH:MM"})
		return
	}

	interview, err := workflow().ScheduleInterview(actorID, services.InterviewInput{
		JobID:          req.JobDescriptionID,
		CandidateName:  utils.SanitizeInput(req.CandidateName),
		InterviewDate:  interviewDate,
		InterviewTime:  req.InterviewTime,
		InterviewType:  req.InterviewType,
		Status:         req.Status,
		Feedback:       req.Feedback,
		InterviewerIDs: req.InterviewerIDs,
	})
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"interview_status": interview})
}

// GetInterviewers returns the active interviewer lookup list.
func GetInterviewers(c *gin.Context) {
	var interviewers []models.Interviewer
	if err := getDB().Where("is_active = ?", true).Find(&interviewers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch interviewers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"interviewers": interviewers})
}
