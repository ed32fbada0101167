package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"jd-portal-api/models"
	"jd-portal-api/utils"
)

const cvUploadFolder = "cvs"

// GetRecentCVSubmissions returns the ten most recent submissions.
func GetRecentCVSubmissions(c *gin.Context) {
	var submissions []models.CVSubmission
	if err := getDB().Preload("SubmittedByUser").Preload("ReviewedByUser").Preload("JobDescription").
		Where("delete_at IS NULL").
		Order("submission_date DESC").
		Limit(10).
		Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cv submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cv_submissions": submissions})
}

// GetPendingCVSubmissions returns every submission still awaiting review.
func GetPendingCVSubmissions(c *gin.Context) {
	var submissions []models.CVSubmission
	if err := getDB().Preload("SubmittedByUser").Preload("JobDescription").
		Where("status = ? AND delete_at IS NULL", models.CVStatusPending).
		Order("submission_date DESC").
		Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cv submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cv_submissions": submissions, "total": len(submissions)})
}

// GetCVSubmission returns one submission with its job and users.
func GetCVSubmission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var submission models.CVSubmission
	if err := getDB().Preload("SubmittedByUser").Preload("ReviewedByUser").
		Preload("JobDescription").Preload("JobDescription.CreatedByUser").
		Where("submission_id = ? AND delete_at IS NULL", id).
		First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "CV submission not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cv_submission": submission})
}

// UploadCV accepts a multipart CV upload against a job description. The
// file is validated before anything is written; a failed database write
// removes the stored file again.
func UploadCV(c *gin.Context) {
	actorID, ok := getCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	jobID, err := strconv.Atoi(c.PostForm("job_description_id"))
	if err != nil || jobID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job_description_id"})
		return
	}

	candidateName := utils.SanitizeInput(c.PostForm("candidate_name"))
	candidateEmail := utils.SanitizeInput(c.PostForm("candidate_email"))
	if candidateName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "candidate_name is required"})
		return
	}
	if !utils.ValidateEmail(candidateEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid candidate_email"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	stored, fullPath, ok := saveUploadedDocument(c, "file", cvUploadFolder)
	if !ok {
		return
	}

	submission, err := workflow().UploadCV(actorID, jobID, candidateName, candidateEmail, file.Filename, stored)
	if err != nil {
		os.Remove(fullPath)
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"cv_submission": submission})
}

// ReviewCV applies the accept/reject decision of the job's creator.
func ReviewCV(c *gin.Context) {
	actorID, ok := getCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req struct {
		Status   string `json:"status" binding:"required"`
		Comments string `json:"comments"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := workflow().ReviewCV(actorID, id, req.Status, req.Comments)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cv_submission": submission})
}

// DeleteCVSubmission soft-deletes a submission the actor reviewed.
func DeleteCVSubmission(c *gin.Context) {
	actorID, ok := getCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := workflow().DeleteCVSubmission(actorID, id); err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "CV submission deleted successfully"})
}

func loadCVFile(c *gin.Context) (*models.CVSubmission, string, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return nil, "", false
	}

	var submission models.CVSubmission
	if err := getDB().Where("submission_id = ? AND delete_at IS NULL", id).First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "CV submission not found"})
		return nil, "", false
	}

	dir, err := utils.UploadDir(cvUploadFolder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve upload directory"})
		return nil, "", false
	}

	fullPath := filepath.Join(dir, submission.StoredFilename)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return nil, "", false
	}

	return &submission, fullPath, true
}

// DownloadCV serves the stored CV as an attachment named after the candidate.
func DownloadCV(c *gin.Context) {
	submission, fullPath, ok := loadCVFile(c)
	if !ok {
		return
	}

	ext := filepath.Ext(submission.StoredFilename)
	fileName := fmt.Sprintf("%s_CV%s", submission.CandidateName, ext)

	c.Header("Access-Control-Expose-Headers", "Content-Disposition")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Header("Content-Type", utils.ContentTypeForFile(submission.StoredFilename))
	c.File(fullPath)
}

// PreviewCV serves the stored CV inline for browser preview.
func PreviewCV(c *gin.Context) {
	submission, fullPath, ok := loadCVFile(c)
	if !ok {
		return
	}

	c.Header("Access-Control-Expose-Headers", "Content-Disposition")
	c.Header("Content-Disposition", "inline")
	c.Header("Content-Type", utils.ContentTypeForFile(submission.StoredFilename))
	c.File(fullPath)
}
