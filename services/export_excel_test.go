package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateCaseWorkbook(t *testing.T) {
	cases := []RepairCase{exportTestCase()}

	for _, mode := range ExportModes {
		t.Run(mode, func(t *testing.T) {
			b, err := GenerateCaseWorkbook(mode, cases)
			if err != nil {
				t.Fatalf("generate failed: %v", err)
			}

			f, err := excelize.OpenReader(bytes.NewReader(b))
			if err != nil {
				t.Fatalf("workbook does not open: %v", err)
			}
			defer f.Close()

			sheet := f.GetSheetName(0)
			if sheet != mode {
				t.Errorf("sheet name = %q, want %q", sheet, mode)
			}

			rows, err := f.GetRows(sheet)
			if err != nil {
				t.Fatalf("read rows: %v", err)
			}
			if len(rows) < 2 {
				t.Fatalf("got %d rows, want header plus data", len(rows))
			}

			headers, _ := ExportHeaders(mode)
			for i, h := range headers {
				if rows[0][i] != h {
					t.Errorf("header[%d] = %q, want %q", i, rows[0][i], h)
				}
			}
		})
	}
}

func TestGenerateCaseWorkbookInternalControlSummaries(t *testing.T) {
	inCase := exportTestCase()
	inCase.RepairType = RepairTypeInContract

	b, err := GenerateCaseWorkbook(ExportModeInternalCtrl, []RepairCase{inCase, exportTestCase()})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)

	// Summary groups start one blank column after the 8 data columns.
	head, err := f.GetCellValue(sheet, "J1")
	if err != nil {
		t.Fatalf("read summary header: %v", err)
	}
	if head != "契約內統計" {
		t.Errorf("first summary header = %q, want 契約內統計", head)
	}

	costLabel, _ := f.GetCellValue(sheet, "J2")
	if costLabel != "費用合計" {
		t.Errorf("summary row label = %q, want 費用合計", costLabel)
	}
	costValue, _ := f.GetCellValue(sheet, "K2")
	if costValue != "NT$3,000" {
		t.Errorf("summary cost = %q, want NT$3,000", costValue)
	}

	outHead, _ := f.GetCellValue(sheet, "M1")
	if outHead != "契約外統計" {
		t.Errorf("second summary header = %q, want 契約外統計", outHead)
	}
}

func TestGenerateCaseWorkbookUnknownMode(t *testing.T) {
	if _, err := GenerateCaseWorkbook("自由格式", nil); err == nil {
		t.Error("expected error for unknown mode")
	}
}
