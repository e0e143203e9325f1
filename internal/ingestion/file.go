package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wlau/cv-job-matcher/internal/models"
)

// AllowedExtensions is the advisory allow-list applied at the picker
// boundary. The evaluation service does its own validation; the client
// never rejects a file by type.
var AllowedExtensions = []string{".docx", ".doc", ".pdf", ".txt"}

// Allowed reports whether the filename carries an allow-listed extension.
func Allowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}

	return false
}

// ReadCV reads the chosen file fully into memory so the submission can be
// rebuilt without touching disk again.
func ReadCV(path string) (*models.CVFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CV file: %w", err)
	}

	return &models.CVFile{
		Name: filepath.Base(path),
		Data: data,
	}, nil
}
