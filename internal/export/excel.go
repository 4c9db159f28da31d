package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"alfredoptarigan/resume-analyser/internal/models"
)

const (
	SummarySheet = "Summary"
	AdviceSheet  = "Suggestions"
)

// WriteAnalysisReport renders one analysis as an xlsx workbook with a
// summary sheet and a sheet listing every suggestion.
func WriteAnalysisReport(result *models.AnalysisResult, jobDescription string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(AdviceSheet); err != nil {
		return nil, fmt.Errorf("failed to create suggestions sheet: %w", err)
	}

	if err := writeSummarySheet(f, result, jobDescription); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeAdviceSheet(f, result); err != nil {
		return nil, fmt.Errorf("failed to create suggestions sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

func writeSummarySheet(f *excelize.File, result *models.AnalysisResult, jobDescription string) error {
	f.SetColWidth(SummarySheet, "A", "A", 22)
	f.SetColWidth(SummarySheet, "B", "B", 80)

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	rows := [][2]interface{}{
		{"Analysis ID", result.ID.String()},
		{"Resume", result.ResumeFilename},
		{"Pages", result.PageCount},
		{"Score", result.Score},
		{"Score (%)", fmt.Sprintf("%.2f", result.ScorePercent)},
		{"Suggestions", len(result.Advice)},
		{"Generated", result.CreatedAt.Format("2006-01-02 15:04:05")},
		{"Job Description", jobDescription},
	}
	if result.SemanticScore != nil {
		rows = append(rows, [2]interface{}{"Semantic Score", *result.SemanticScore})
	}

	for i, row := range rows {
		label := fmt.Sprintf("A%d", i+1)
		if err := f.SetCellValue(SummarySheet, label, row[0]); err != nil {
			return err
		}
		f.SetCellStyle(SummarySheet, label, label, labelStyle)
		if err := f.SetCellValue(SummarySheet, fmt.Sprintf("B%d", i+1), row[1]); err != nil {
			return err
		}
	}

	return nil
}

func writeAdviceSheet(f *excelize.File, result *models.AnalysisResult) error {
	f.SetColWidth(AdviceSheet, "A", "A", 6)
	f.SetColWidth(AdviceSheet, "B", "B", 70)
	f.SetColWidth(AdviceSheet, "C", "C", 50)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	headers := []string{"#", "Suggestion", "Video"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(AdviceSheet, cell, h); err != nil {
			return err
		}
	}
	f.SetCellStyle(AdviceSheet, "A1", "C1", headerStyle)

	for i, rec := range result.Recommendations {
		row := i + 2
		f.SetCellValue(AdviceSheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(AdviceSheet, fmt.Sprintf("B%d", row), rec.Advice)
		if rec.HasVideo() {
			cell := fmt.Sprintf("C%d", row)
			f.SetCellValue(AdviceSheet, cell, rec.VideoURL)
			if err := f.SetCellHyperLink(AdviceSheet, cell, rec.VideoURL, "External"); err != nil {
				return err
			}
		}
	}

	return nil
}
