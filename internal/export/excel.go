package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/wlau/cv-job-matcher/internal/models"
	"github.com/wlau/cv-job-matcher/internal/scoring"
)

// ExportToExcel writes the evaluation report: a summary sheet, one row per
// evaluation, and a details sheet with the full explanations. Evaluations
// whose score payload cannot be parsed appear with their raw text in the
// details sheet instead of a score row.
func ExportToExcel(evaluations []models.EvaluationResult, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath = outputPath + ".xlsx"
	}
	outputPath = filepath.Clean(outputPath)

	summarySheet := "Summary"
	evaluationsSheet := "Evaluations"
	detailsSheet := "Details"

	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(evaluationsSheet)
	f.NewSheet(detailsSheet)

	if err := writeSummarySheet(f, summarySheet, evaluations); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeEvaluationsSheet(f, evaluationsSheet, evaluations); err != nil {
		return fmt.Errorf("failed to create evaluations sheet: %w", err)
	}
	if err := writeDetailsSheet(f, detailsSheet, evaluations); err != nil {
		return fmt.Errorf("failed to create details sheet: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}

	return nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
}

func writeSummarySheet(f *excelize.File, sheet string, evaluations []models.EvaluationResult) error {
	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "B", 50)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", "CV Job Match Report")
	f.SetCellStyle(sheet, "A1", "B1", header)
	f.MergeCell(sheet, "A1", "B1")

	f.SetCellValue(sheet, "A3", "Generated:")
	f.SetCellValue(sheet, "B3", time.Now().Format("2006-01-02 15:04:05"))
	f.SetCellValue(sheet, "A4", "Jobs Evaluated:")
	f.SetCellValue(sheet, "B4", len(evaluations))

	// Banding distribution over the parseable overall scores.
	counts := map[string]int{}
	unparsed := 0
	for _, ev := range evaluations {
		b, err := scoring.Parse(ev.ScoreAndExplanation)
		if err != nil {
			unparsed++
			continue
		}
		counts[scoring.Band(b.OverallScore, scoring.MaxOverall)]++
	}

	row := 6
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Score Distribution:")
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), header)
	f.MergeCell(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
	row++

	for _, band := range []string{scoring.BandExcellent, scoring.BandGood, scoring.BandAverage, scoring.BandPoor} {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), band+":")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), counts[band])
		row++
	}

	if unparsed > 0 {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Unparsed:")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), unparsed)
	}

	return nil
}

func writeEvaluationsSheet(f *excelize.File, sheet string, evaluations []models.EvaluationResult) error {
	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "B", "B", 40)
	f.SetColWidth(sheet, "C", "G", 14)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	headers := []string{"Job Title", "Job URL", "Overall", "Band", "Experience", "Skills", "Personality"}
	for col, h := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+col)))
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, header)
	}

	for i, ev := range evaluations {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), ev.JobTitle)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), ev.JobURL)

		b, err := scoring.Parse(ev.ScoreAndExplanation)
		if err != nil {
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "n/a")
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), "Unparsed")
			continue
		}

		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), b.OverallScore)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), scoring.Band(b.OverallScore, scoring.MaxOverall))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), b.Experience.Score)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), b.Skills.Score)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), b.Personality.Score)
	}

	return nil
}

func writeDetailsSheet(f *excelize.File, sheet string, evaluations []models.EvaluationResult) error {
	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "B", "B", 20)
	f.SetColWidth(sheet, "C", "C", 80)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	wrap, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return err
	}

	headers := []string{"Job Title", "Category", "Explanation"}
	for col, h := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+col)))
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, header)
	}

	row := 2
	writeDetail := func(title, category, text string) {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), title)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), category)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), text)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), wrap)
		row++
	}

	for _, ev := range evaluations {
		b, err := scoring.Parse(ev.ScoreAndExplanation)
		if err != nil {
			writeDetail(ev.JobTitle, "Raw", ev.ScoreAndExplanation)
			continue
		}

		writeDetail(ev.JobTitle, "Experience", b.Experience.Explanation)
		writeDetail(ev.JobTitle, "Skills", b.Skills.Explanation)
		writeDetail(ev.JobTitle, "Personality", b.Personality.Explanation)
		writeDetail(ev.JobTitle, "Overall", b.OverallExplanation)
	}

	return nil
}
