package utils

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUploadHeader(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		size     int64
		wantOK   bool
		wantMsg  string
	}{
		{"pdf within limit", "resume.pdf", 1024, true, ""},
		{"docx within limit", "Resume.DOCX", 4 * 1024 * 1024, true, ""},
		{"doc at exact limit", "cv.doc", MaxUploadSize, true, ""},
		{"oversize pdf", "resume.pdf", MaxUploadSize + 1, false, "File size exceeds the limit of 5MB"},
		{"executable", "resume.exe", 1024, false, "Invalid file format. Only PDF and DOC files are allowed."},
		{"no extension", "resume", 1024, false, "Invalid file format. Only PDF and DOC files are allowed."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, msg := ValidateUploadHeader(&multipart.FileHeader{Filename: tc.filename, Size: tc.size})
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantMsg, msg)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("john.smith@example.com"))
	assert.True(t, ValidateEmail("hr+jobs@sub.example.co"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail("@example.com"))
}

func TestGenerateStoredFilename(t *testing.T) {
	first := GenerateStoredFilename("My Resume.PDF")
	second := GenerateStoredFilename("My Resume.PDF")

	assert.NotEqual(t, first, second)
	assert.Regexp(t, `^[0-9a-f-]{36}\.pdf$`, first)
	assert.NotContains(t, first, "My Resume")
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "John Smith", SanitizeInput("  John Smith \x00"))
	assert.Equal(t, "", SanitizeInput("   "))
}

func TestContentTypeForFile(t *testing.T) {
	assert.Equal(t, "application/pdf", ContentTypeForFile("abc.pdf"))
	assert.Equal(t, "application/msword", ContentTypeForFile("abc.DOC"))
	assert.Equal(t, "application/octet-stream", ContentTypeForFile("abc.zip"))
}
