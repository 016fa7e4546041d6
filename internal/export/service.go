package export

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/statements-tracker/internal/aggregate"
)

const (
	summarySheet = "Summary"
	// wfaFormatSheet mirrors the downstream ledger upload template: ten
	// headerless columns with the account number in column C and the
	// closing value in column J.
	wfaFormatSheet = "WFA_Format"
)

// Service produces the XLSX summary workbook for a batch run.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// WriteReport builds the workbook and saves it to path.
func (s *Service) WriteReport(report *aggregate.Report, path string) error {
	f, err := s.BuildWorkbook(report)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("export.close.failed", "err", cerr)
		}
	}()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx save: %w", err)
	}
	s.logger.Info("export.done", "path", path, "documents", len(report.Results), "run_id", report.RunID)
	return nil
}

// BuildWorkbook renders the Summary and WFA_Format sheets.
func (s *Service) BuildWorkbook(report *aggregate.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(wfaFormatSheet); err != nil {
		return nil, err
	}
	if idx, err := f.GetSheetIndex(summarySheet); err == nil {
		f.SetActiveSheet(idx)
	}

	if err := s.writeSummary(f, report); err != nil {
		return nil, fmt.Errorf("summary sheet: %w", err)
	}
	if err := s.writeWFAFormat(f, report); err != nil {
		return nil, fmt.Errorf("wfa format sheet: %w", err)
	}
	return f, nil
}

func (s *Service) writeSummary(f *excelize.File, report *aggregate.Report) error {
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    boxBorder(),
	})
	if err != nil {
		return err
	}
	moneyFmt := "$#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return err
	}
	totalLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"E2EFDA"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    boxBorder(),
	})
	if err != nil {
		return err
	}
	totalValueStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Fill:         excelize.Fill{Type: "pattern", Color: []string{"E2EFDA"}, Pattern: 1},
		Border:       boxBorder(),
		CustomNumFmt: &moneyFmt,
	})
	if err != nil {
		return err
	}

	// Title
	if err := f.MergeCell(summarySheet, "A1", "F1"); err != nil {
		return err
	}
	title := "Statement Summary - " + report.GeneratedAt.Format("January 2006")
	_ = f.SetCellValue(summarySheet, "A1", title)
	_ = f.SetCellStyle(summarySheet, "A1", "F1", titleStyle)

	// Column widths
	_ = f.SetColWidth(summarySheet, "A", "A", 55) // filename
	_ = f.SetColWidth(summarySheet, "B", "B", 12) // beneficiary
	_ = f.SetColWidth(summarySheet, "C", "C", 20) // account number
	_ = f.SetColWidth(summarySheet, "D", "D", 18) // closing value
	_ = f.SetColWidth(summarySheet, "E", "E", 25) // institution
	_ = f.SetColWidth(summarySheet, "F", "F", 14) // status

	headers := []string{"Filename", "Beneficiary", "Account Number", "Closing Value", "Institution", "Status"}
	const headerRow = 3
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		_ = f.SetCellValue(summarySheet, cell, h)
	}
	_ = f.SetCellStyle(summarySheet, "A3", "F3", headerStyle)

	row := headerRow + 1
	for i := range report.Results {
		r := &report.Results[i]
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(summarySheet, cell, v)
		}
		write(1, r.Filename)
		if r.Beneficiary != nil {
			write(2, *r.Beneficiary)
		}
		if r.AccountNumber != nil {
			write(3, *r.AccountNumber)
		}
		if r.ClosingValue != nil {
			write(4, *r.ClosingValue)
			cell, _ := excelize.CoordinatesToCellName(4, row)
			_ = f.SetCellStyle(summarySheet, cell, cell, moneyStyle)
		}
		write(5, r.Institution.DisplayName())
		write(6, string(r.Status()))
		row++
	}

	// Per-institution totals, then the grand total.
	row++
	for _, it := range report.Institutions {
		labelCell, _ := excelize.CoordinatesToCellName(3, row)
		valueCell, _ := excelize.CoordinatesToCellName(4, row)
		_ = f.SetCellValue(summarySheet, labelCell, it.Institution.DisplayName()+" TOTAL:")
		_ = f.SetCellValue(summarySheet, valueCell, it.Total)
		_ = f.SetCellStyle(summarySheet, labelCell, labelCell, totalLabelStyle)
		_ = f.SetCellStyle(summarySheet, valueCell, valueCell, totalValueStyle)
		row++
	}
	labelCell, _ := excelize.CoordinatesToCellName(3, row)
	valueCell, _ := excelize.CoordinatesToCellName(4, row)
	_ = f.SetCellValue(summarySheet, labelCell, "GRAND TOTAL:")
	_ = f.SetCellValue(summarySheet, valueCell, report.GrandTotal)
	_ = f.SetCellStyle(summarySheet, labelCell, labelCell, totalLabelStyle)
	_ = f.SetCellStyle(summarySheet, valueCell, valueCell, totalValueStyle)

	return nil
}

// writeWFAFormat writes one row per result, aligned 1:1 with the sorted
// result set. Columns other than C and J stay blank.
func (s *Service) writeWFAFormat(f *excelize.File, report *aggregate.Report) error {
	for i := range report.Results {
		r := &report.Results[i]
		row := i + 1
		if r.AccountNumber != nil {
			cell, _ := excelize.CoordinatesToCellName(3, row)
			if err := f.SetCellValue(wfaFormatSheet, cell, *r.AccountNumber); err != nil {
				return err
			}
		}
		if r.ClosingValue != nil {
			cell, _ := excelize.CoordinatesToCellName(10, row)
			if err := f.SetCellValue(wfaFormatSheet, cell, *r.ClosingValue); err != nil {
				return err
			}
		}
	}
	_ = f.SetColWidth(wfaFormatSheet, "C", "C", 20)
	_ = f.SetColWidth(wfaFormatSheet, "J", "J", 18)
	return nil
}

func boxBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
}
