package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func priceWorkbook(t *testing.T, dataRows [][]any) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	// Four-row header band above the data.
	for r := 1; r <= priceHeaderRows; r++ {
		cell, _ := excelize.CoordinatesToCellName(1, r)
		f.SetSheetRow(sheet, cell, &[]any{"表頭"})
	}
	for i, row := range dataRows {
		cell, _ := excelize.CoordinatesToCellName(1, priceHeaderRows+1+i)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("build workbook: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestParsePriceMaster(t *testing.T) {
	r := priceWorkbook(t, [][]any{
		{"", "P-001", "更換鐵捲門馬達", "", "", "", 12600},
		{"", "P-002", "防水處理", "", "", "", "840"},
		{"", "P-003", "", "", "", "", 999},
		{"", "", "無編號項目", "", "", "", 500},
	})

	items, err := ParsePriceMaster(r)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3 (nameless row dropped)", len(items))
	}

	first := items[0]
	if first.ID != "P-001" || first.Name != "更換鐵捲門馬達" || first.Price != 12600 {
		t.Errorf("first item = %+v", first)
	}
	if first.Unit != "式" {
		t.Errorf("unit = %q, want 式", first.Unit)
	}
	if items[1].Price != 840 {
		t.Errorf("string price not converted: %v", items[1].Price)
	}
	if items[2].ID != "" || items[2].Name != "無編號項目" {
		t.Errorf("id-less item = %+v", items[2])
	}
}

func TestParsePriceMasterHeaderOnly(t *testing.T) {
	items, err := ParsePriceMaster(priceWorkbook(t, nil))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}

func TestParsePriceMasterRejectsGarbage(t *testing.T) {
	if _, err := ParsePriceMaster(bytes.NewReader([]byte("not a workbook"))); err == nil {
		t.Error("expected error for non-xlsx input")
	}
}
