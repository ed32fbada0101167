package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jd-portal-api/models"
)

// GetDashboardStats returns totals, the CV status summary and the most
// recent notification activity.
func GetDashboardStats(c *gin.Context) {
	db := getDB()

	var totalJobs int64
	if err := db.Model(&models.JobDescription{}).Where("delete_at IS NULL").Count(&totalJobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}

	var totalCVs int64
	if err := db.Model(&models.CVSubmission{}).Where("delete_at IS NULL").Count(&totalCVs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}

	summary := gin.H{}
	for _, status := range []string{models.CVStatusPending, models.CVStatusAccepted, models.CVStatusRejected} {
		var n int64
		if err := db.Model(&models.CVSubmission{}).
			Where("status = ? AND delete_at IS NULL", status).
			Count(&n).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
			return
		}
		summary[status] = n
	}

	var recent []models.Notification
	if err := db.Where("is_active = ?", true).
		Order("create_at DESC").
		Limit(10).
		Find(&recent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_job_descriptions": totalJobs,
		"total_cvs":              totalCVs,
		"pending_reviews":        summary[models.CVStatusPending],
		"cv_status_summary":      summary,
		"recent_activities":      recent,
	})
}
