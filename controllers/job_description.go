package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jd-portal-api/config"
	"jd-portal-api/models"
	"jd-portal-api/services"
	"jd-portal-api/utils"
)

const jdUploadFolder = "jds"

// GetJobDescriptions returns all job descriptions, newest first.
func GetJobDescriptions(c *gin.Context) {
	var jobs []models.JobDescription
	if err := getDB().Preload("CreatedByUser").Preload("Submissions", "delete_at IS NULL").
		Where("delete_at IS NULL").
		Order("posted_date DESC").
		Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch job descriptions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"job_descriptions": jobs, "total": len(jobs)})
}

// GetRecentJobDescriptions returns the five most recently posted jobs.
func GetRecentJobDescriptions(c *gin.Context) {
	var jobs []models.JobDescription
	if err := getDB().Preload("CreatedByUser").Preload("Submissions", "delete_at IS NULL").
		Where("delete_at IS NULL").
		Order("posted_date DESC").
		Limit(5).
		Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch job descriptions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"job_descriptions": jobs})
}

// GetJobDescription returns a single job with its submissions and their users.
func GetJobDescription(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var job models.JobDescription
	if err := getDB().Preload("CreatedByUser").
		Preload("Submissions", "delete_at IS NULL").
		Preload("Submissions.SubmittedByUser").
		Preload("Submissions.ReviewedByUser").
		Where("job_id = ? AND delete_at IS NULL", id).
		First(&job).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job description not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"job_description": job})
}

// GetCVsForJobDescription returns the submissions of one job, newest first.
func GetCVsForJobDescription(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var submissions []models.CVSubmission
	if err := getDB().Preload("SubmittedByUser").Preload("ReviewedByUser").
		Where("job_id = ? AND delete_at IS NULL", id).
		Order("submission_date DESC").
		Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cv submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cv_submissions": submissions, "total": len(submissions)})
}

// GetUsers returns the user directory.
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := getDB().Preload("Role").Where("delete_at IS NULL").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func jobInputFromForm(c *gin.Context) services.JobInput {
	in := services.JobInput{
		Title:        utils.SanitizeInput(c.PostForm("title")),
		Description:  c.PostForm("description"),
		Requirements: c.PostForm("requirements"),
		Department:   utils.SanitizeInput(c.PostForm("department")),
		Location:     utils.SanitizeInput(c.PostForm("location")),
		Client:       utils.SanitizeInput(c.PostForm("client")),
	}
	if raw := c.PostForm("last_date"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			in.LastDate = &t
		}
	}
	return in
}

// saveUploadedDocument validates and stores a multipart file under the
// given upload folder, returning the stored filename token.
func saveUploadedDocument(c *gin.Context, field, folder string) (stored string, fullPath string, ok bool) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", "", false
	}

	if valid, msg := utils.ValidateUploadHeader(file); !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		c.Abort()
		return "", "", false
	}

	dir, err := utils.UploadDir(folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload directory"})
		c.Abort()
		return "", "", false
	}

	stored = utils.GenerateStoredFilename(file.Filename)
	fullPath = filepath.Join(dir, stored)
	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		c.Abort()
		return "", "", false
	}

	return stored, fullPath, true
}

// CreateJobDescription creates a job from multipart form fields with an
// optional JD document.
func CreateJobDescription(c *gin.Context) {
	actorID, ok := getCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	in := jobInputFromForm(c)

	var storedPath string
	if _, err := c.FormFile("file"); err == nil {
		stored, fullPath, ok := saveUploadedDocument(c, "file", jdUploadFolder)
		if !ok {
			return
		}
		in.StoredFilename = &stored
		storedPath = fullPath
	}

	job, err := workflow().CreateJobDescription(actorID, in)
	if err != nil {
		if storedPath != "" {
			os.Remove(storedPath)
		}
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"job_description": job})
}

// UpdateJobDescription replaces job fields; an uploaded file replaces the
// stored document, otherwise the existing one is kept.
func UpdateJobDescription(c *gin.Context) {
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

	in := jobInputFromForm(c)

	var storedPath string
	if _, err := c.FormFile("file"); err == nil {
		stored, fullPath, ok := saveUploadedDocument(c, "file", jdUploadFolder)
		if !ok {
			return
		}
		in.StoredFilename = &stored
		storedPath = fullPath
	}

	job, err := workflow().UpdateJobDescription(actorID, id, in)
	if err != nil {
		if storedPath != "" {
			os.Remove(storedPath)
		}
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job_description": job})
}

// DeleteJobDescription soft-deletes a job with its submissions and
// notifications.
func DeleteJobDescription(c *gin.Context) {
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

	if err := workflow().DeleteJobDescription(actorID, id); err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job description deleted successfully"})
}

// DownloadJobDescriptionFile serves the stored JD document as an attachment.
func DownloadJobDescriptionFile(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var job models.JobDescription
	if err := config.DB.Where("job_id = ? AND delete_at IS NULL", id).First(&job).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job description not found"})
		return
	}

	if job.FilePath == nil || *job.FilePath == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "No document attached"})
		return
	}

	dir, err := utils.UploadDir(jdUploadFolder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve upload directory"})
		return
	}

	fullPath := filepath.Join(dir, *job.FilePath)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	c.Header("Access-Control-Expose-Headers", "Content-Disposition")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", job.Title+filepath.Ext(*job.FilePath)))
	c.Header("Content-Type", utils.ContentTypeForFile(*job.FilePath))
	c.File(fullPath)
}
