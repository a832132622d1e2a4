package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
)

// priceHeaderRows is the fixed header band at the top of the price master
// sheet that carries no data.
const priceHeaderRows = 4

// PriceItem is one entry of the contract price list. Non-manual repair
// items on a case are drawn from this list.
type PriceItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Price float64 `json:"price"`
}

// ParsePriceMaster reads the fixed-offset single-sheet price table: item id
// in column B, name in column C, tax-inclusive price in column G, unit
// fixed to 式. Rows without a name are discarded.
func ParsePriceMaster(r io.Reader) ([]PriceItem, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	if len(rows) <= priceHeaderRows {
		return nil, nil
	}

	var items []PriceItem
	for _, row := range rows[priceHeaderRows:] {
		item := PriceItem{
			ID:   strings.TrimSpace(cellAt(row, 1)),
			Name: strings.TrimSpace(cellAt(row, 2)),
			Unit: "式",
		}
		if item.Name == "" {
			continue
		}
		item.Price = cast.ToFloat64(cellAt(row, 6))
		items = append(items, item)
	}

	return items, nil
}

// StorePriceMaster persists the price list into one configuration document.
func StorePriceMaster(app core.App, items []PriceItem) error {
	col, err := app.FindCollectionByNameOrId("config_docs")
	if err != nil {
		return fmt.Errorf("config_docs collection not found: %w", err)
	}
	if err := upsertConfigDoc(app, col, ConfigKeyPriceMaster, map[string]any{"list": items}); err != nil {
		return fmt.Errorf("store price master: %w", err)
	}
	return nil
}

// LoadPriceMaster reads the price list back. A missing document yields an
// empty list, not an error.
func LoadPriceMaster(app core.App) ([]PriceItem, error) {
	doc, err := findConfigDoc(app, ConfigKeyPriceMaster)
	if err != nil {
		return nil, nil
	}
	var data struct {
		List []PriceItem `json:"list"`
	}
	if err := doc.UnmarshalJSONField("data", &data); err != nil {
		return nil, fmt.Errorf("decode price master: %w", err)
	}
	return data.List, nil
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
