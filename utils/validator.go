// utils/validator.go - Input validation
package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
)

// MaxUploadSize is the server-side limit for JD and CV documents.
const MaxUploadSize = int64(5 * 1024 * 1024) // 5MB

var allowedUploadExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// ValidateUploadHeader enforces the document rules before any storage
// write: extension in {pdf,doc,docx} and size at most 5MB. The returned
// message is shown to the client verbatim.
func ValidateUploadHeader(file *multipart.FileHeader) (bool, string) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedUploadExtensions[ext] {
		return false, "Invalid file format. Only PDF and DOC files are allowed."
	}
	if file.Size > MaxUploadSize {
		return false, fmt.Sprintf("File size exceeds the limit of %dMB", MaxUploadSize/(1024*1024))
	}
	return true, ""
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")
	return input
}
