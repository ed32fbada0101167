package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// GenerateStoredFilename returns a random token plus the original
// extension. The user-supplied name never reaches the filesystem, which
// rules out path traversal and collisions.
func GenerateStoredFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return uuid.NewString() + ext
}

// UploadDir resolves the upload root plus an optional subfolder, creating
// it if needed.
func UploadDir(sub string) (string, error) {
	root := os.Getenv("UPLOAD_PATH")
	if root == "" {
		root = "./uploads"
	}
	dir := filepath.Join(root, sub)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	return dir, nil
}

var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ContentTypeForFile maps a stored filename to its MIME type, defaulting
// to octet-stream.
func ContentTypeForFile(name string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}
