package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateCaseWorkbook creates an xlsx workbook for one export mode over
// the filtered case list and returns the file contents. The sheet carries
// the mode name; the internal-control mode additionally places per-contract-
// type summary statistics in a second column group beside the data rows.
func GenerateCaseWorkbook(mode string, cases []RepairCase) ([]byte, error) {
	headers, err := ExportHeaders(mode)
	if err != nil {
		return nil, err
	}
	rows, err := ExportRows(mode, cases)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := mode
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	cellStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create cell style: %w", err)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell name: %w", err)
		}
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for r, row := range rows {
		for cIdx, val := range row {
			cell, err := excelize.CoordinatesToCellName(cIdx+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("cell name: %w", err)
			}
			f.SetCellValue(sheetName, cell, val)
			f.SetCellStyle(sheetName, cell, cell, cellStyle)
		}
	}

	if mode == ExportModeInternalCtrl {
		if err := writeControlSummaries(f, sheetName, len(headers), ControlSummaries(cases), headerStyle, cellStyle); err != nil {
			return nil, err
		}
	}

	out, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return out.Bytes(), nil
}

// writeControlSummaries lays the per-contract-type aggregates alongside the
// data rows, one column group per contract type, separated from the data
// columns by a blank column.
func writeControlSummaries(f *excelize.File, sheetName string, dataCols int, summaries []ControlSummary, headerStyle, cellStyle int) error {
	startCol := dataCols + 2

	for g, sum := range summaries {
		col := startCol + g*3

		headCell, err := excelize.CoordinatesToCellName(col, 1)
		if err != nil {
			return fmt.Errorf("summary header cell: %w", err)
		}
		endHead, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("summary header cell: %w", err)
		}
		if err := f.MergeCell(sheetName, headCell, endHead); err != nil {
			return fmt.Errorf("merge summary header: %w", err)
		}
		f.SetCellValue(sheetName, headCell, sum.Label+"統計")
		f.SetCellStyle(sheetName, headCell, endHead, headerStyle)

		lines := []struct {
			label string
			value float64
		}{
			{"費用合計", sum.TotalCosts},
			{"收入合計", sum.TotalIncome},
			{"損益", sum.NetProfit},
		}
		for i, line := range lines {
			labelCell, err := excelize.CoordinatesToCellName(col, i+2)
			if err != nil {
				return fmt.Errorf("summary label cell: %w", err)
			}
			valueCell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("summary value cell: %w", err)
			}
			f.SetCellValue(sheetName, labelCell, line.label)
			f.SetCellValue(sheetName, valueCell, FormatNTD(line.value))
			f.SetCellStyle(sheetName, labelCell, valueCell, cellStyle)
		}
	}

	return nil
}

// thinBorders returns a 4-side thin border definition.
func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#999999", Style: 1},
		{Type: "right", Color: "#999999", Style: 1},
		{Type: "top", Color: "#999999", Style: 1},
		{Type: "bottom", Color: "#999999", Style: 1},
	}
}
