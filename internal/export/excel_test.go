package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/wlau/cv-job-matcher/internal/models"
)

const parseablePayload = "```json\n" + `{
	"overall_score": 85,
	"experience": {"score": 35, "explanation": "solid track record"},
	"skills": {"score": 32, "explanation": "good core skills"},
	"personality": {"score": 18, "explanation": "clear communicator"},
	"overall_explanation": "strong fit"
}` + "\n```"

func testEvaluations() []models.EvaluationResult {
	return []models.EvaluationResult{
		{
			JobTitle:            "Software Engineer",
			JobDescription:      "Build backend services",
			JobURL:              "http://jobs.example.com/1",
			ScoreAndExplanation: parseablePayload,
		},
		{
			JobTitle:            "Mystery Role",
			JobDescription:      "???",
			ScoreAndExplanation: "not json at all",
		},
	}
}

// TestExportToExcel_WritesReport tests the full report round trip
func TestExportToExcel_WritesReport(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "report.xlsx")

	if err := ExportToExcel(testEvaluations(), outputPath); err != nil {
		t.Fatalf("ExportToExcel() failed: %v", err)
	}

	f, err := excelize.OpenFile(outputPath)
	if err != nil {
		t.Fatalf("failed to reopen exported file: %v", err)
	}
	defer f.Close()

	title, err := f.GetCellValue("Evaluations", "A2")
	if err != nil {
		t.Fatalf("GetCellValue() failed: %v", err)
	}
	if title != "Software Engineer" {
		t.Errorf("Evaluations!A2 = %q, want %q", title, "Software Engineer")
	}

	band, _ := f.GetCellValue("Evaluations", "D2")
	if band != "Excellent" {
		t.Errorf("Evaluations!D2 = %q, want %q", band, "Excellent")
	}

	// The unparseable result falls back to a raw details row, not a score.
	overall, _ := f.GetCellValue("Evaluations", "C3")
	if overall != "n/a" {
		t.Errorf("Evaluations!C3 = %q, want %q", overall, "n/a")
	}

	rows, err := f.GetRows("Details")
	if err != nil {
		t.Fatalf("GetRows() failed: %v", err)
	}

	foundRaw := false
	for _, row := range rows {
		if len(row) >= 3 && row[1] == "Raw" && row[2] == "not json at all" {
			foundRaw = true
		}
	}
	if !foundRaw {
		t.Error("Details sheet should carry the raw payload for unparseable results")
	}
}

// TestExportToExcel_EnsuresXlsxExtension tests that .xlsx is appended when
// missing
func TestExportToExcel_EnsuresXlsxExtension(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "report")

	if err := ExportToExcel(testEvaluations(), outputPath); err != nil {
		t.Fatalf("ExportToExcel() failed: %v", err)
	}

	if _, err := os.Stat(outputPath + ".xlsx"); err != nil {
		t.Errorf("expected file with .xlsx extension: %v", err)
	}
}

// TestExportToExcel_EmptyResults tests exporting with no evaluations
func TestExportToExcel_EmptyResults(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.xlsx")

	if err := ExportToExcel(nil, outputPath); err != nil {
		t.Fatalf("ExportToExcel() failed for empty input: %v", err)
	}

	f, err := excelize.OpenFile(outputPath)
	if err != nil {
		t.Fatalf("failed to reopen exported file: %v", err)
	}
	defer f.Close()

	count, _ := f.GetCellValue("Summary", "B4")
	if count != "0" {
		t.Errorf("Summary!B4 = %q, want %q", count, "0")
	}
}
