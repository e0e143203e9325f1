package ingestion

import (
	"os"
	"path/filepath"
	"testing"
)

// TestAllowed tests the advisory extension allow-list
func TestAllowed(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{name: "docx", filename: "TestCV.docx", want: true},
		{name: "Uppercase extension", filename: "resume.DOCX", want: true},
		{name: "pdf", filename: "cv.pdf", want: true},
		{name: "txt", filename: "cv.txt", want: true},
		{name: "doc", filename: "cv.doc", want: true},
		{name: "Image rejected", filename: "photo.png", want: false},
		{name: "No extension", filename: "resume", want: false},
		{name: "Extension only in the middle", filename: "cv.docx.exe", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.filename); got != tt.want {
				t.Errorf("Allowed(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

// TestReadCV tests reading a chosen file into memory
func TestReadCV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "TestCV.docx")
	if err := os.WriteFile(path, []byte("cv content"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	cv, err := ReadCV(path)
	if err != nil {
		t.Fatalf("ReadCV() failed: %v", err)
	}

	if cv.Name != "TestCV.docx" {
		t.Errorf("Name = %q, want base filename", cv.Name)
	}
	if string(cv.Data) != "cv content" {
		t.Errorf("Data = %q, want file content", cv.Data)
	}
}

// TestReadCV_MissingFile tests the error path
func TestReadCV_MissingFile(t *testing.T) {
	if _, err := ReadCV(filepath.Join(t.TempDir(), "absent.docx")); err == nil {
		t.Fatal("ReadCV() expected error for missing file")
	}
}
