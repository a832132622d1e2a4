package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/spf13/cast"
)

// GenerateQuotePDF renders a repair-case quotation sheet: case header, the
// repair line items and the quote totals. It returns the raw PDF bytes.
func GenerateQuotePDF(rc RepairCase, generatedDate string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, rc, generatedDate)
	addQuoteTableHeader(m)
	for i, item := range rc.RepairItems {
		addQuoteTableRow(m, i+1, item)
	}
	addQuoteSummary(m, CalcQuote(rc.RepairItems, rc.RepairType))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addQuoteHeader(m core.Maroto, rc RepairCase, generatedDate string) {
	title := rc.QuoteTitle
	if title == "" {
		title = "修繕報價單"
	}

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	gray := &props.Color{Red: 80, Green: 80, Blue: 80}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("站點: %s  承租人: %s", rc.Station, rc.Tenant), props.Text{
					Size:  9,
					Align: align.Left,
					Color: gray,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("日期: %s", generatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: gray,
				}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("地址: %s", rc.Address), props.Text{
					Size:  9,
					Align: align.Left,
					Color: gray,
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

func addQuoteTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(
				text.New("#", headerText),
			).WithStyle(&headerCell),
			col.New(5).Add(
				text.New("項目", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("單價", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("數量", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("單位", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("金額", headerText),
			).WithStyle(&headerCell),
		),
	)
}

func addQuoteTableRow(m core.Maroto, index int, item RepairItem) {
	baseText := props.Text{
		Size:  8,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	price := cast.ToFloat64(item.Price)
	qty := cast.ToFloat64(item.Quantity)

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", index), baseText)),
			col.New(5).Add(text.New(item.Name, leftText)),
			col.New(2).Add(text.New(FormatNTD(price), rightText)),
			col.New(1).Add(text.New(fmt.Sprintf("%.0f", qty), rightText)),
			col.New(1).Add(text.New(item.Unit, baseText)),
			col.New(2).Add(text.New(FormatNTD(price*qty), rightText)),
		),
	)
}

func addQuoteSummary(m core.Maroto, quote QuoteSummary) {
	m.AddRows(row.New(4))

	lines := []struct {
		label string
		value float64
		bold  bool
	}{
		{"小計", quote.Subtotal, false},
		{"服務費 (5%)", quote.ServiceFee, false},
		{"稅金 (5%)", quote.Tax, false},
		{"總計", quote.Total, true},
	}

	for _, line := range lines {
		style := fontstyle.Normal
		size := 9.0
		if line.bold {
			style = fontstyle.Bold
			size = 11
		}
		m.AddRows(
			row.New(6).Add(
				col.New(8),
				col.New(2).Add(text.New(line.label, props.Text{
					Size:  size,
					Style: style,
					Align: align.Right,
				})),
				col.New(2).Add(text.New(FormatNTD(line.value), props.Text{
					Size:  size,
					Style: style,
					Align: align.Right,
				})),
			),
		)
	}
}
