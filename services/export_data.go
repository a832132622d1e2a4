package services

import (
	"fmt"
	"strings"
)

// Export modes. Each projects a fixed, named set of columns from the
// filtered case list onto one worksheet.
const (
	ExportModeTracking     = "待追蹤事項"
	ExportModeWorkReport   = "工作提報單"
	ExportModeSatisfaction = "滿意度調查"
	ExportModeInternalCtrl = "內控管理"
)

// ExportModes lists the supported modes in menu order.
var ExportModes = []string{
	ExportModeTracking,
	ExportModeWorkReport,
	ExportModeSatisfaction,
	ExportModeInternalCtrl,
}

// ControlSummary aggregates cost/income/profit for one contract type, for
// the summary column group of the internal-control sheet.
type ControlSummary struct {
	Label       string
	TotalCosts  float64
	TotalIncome float64
	NetProfit   float64
}

// exportDate renders an ISO date in the slash form used by the report
// templates.
func exportDate(d string) string {
	return strings.ReplaceAll(d, "-", "/")
}

// combinedDescription merges the site and construction narratives into the
// single fault-description column.
func combinedDescription(c RepairCase) string {
	return strings.TrimSpace(strings.TrimSpace(c.SiteDescription) + " " + strings.TrimSpace(c.ConstructionDesc1))
}

// ExportHeaders returns the column headers for an export mode.
func ExportHeaders(mode string) ([]string, error) {
	switch mode {
	case ExportModeTracking:
		return []string{"項次", "案號", "站別", "地址", "報修日期", "故障問題描述"}, nil
	case ExportModeWorkReport:
		return []string{"案號", "站別", "地址", "故障描述", "報修日", "完工日"}, nil
	case ExportModeSatisfaction:
		return []string{"JDM系統案號", "捷運站點", "門牌", "施工說明", "滿意度分級", "滿意度分數", "類別"}, nil
	case ExportModeInternalCtrl:
		return []string{"案號", "地址", "費用合計", "維修廠商", "費用發票", "收入合計", "請款廠商", "收入發票"}, nil
	}
	return nil, fmt.Errorf("unknown export mode %q", mode)
}

// ExportRows projects the case list into cell rows for an export mode.
func ExportRows(mode string, cases []RepairCase) ([][]any, error) {
	rows := make([][]any, 0, len(cases))

	for i, c := range cases {
		ctrl := c.JDMControl
		switch mode {
		case ExportModeTracking:
			rows = append(rows, []any{
				i + 1, ctrl.CaseNumber, c.Station, c.Address,
				exportDate(ctrl.ReportDate), combinedDescription(c),
			})
		case ExportModeWorkReport:
			rows = append(rows, []any{
				ctrl.CaseNumber, c.Station, c.Address, combinedDescription(c),
				exportDate(ctrl.ReportDate), exportDate(ctrl.CloseDate),
			})
		case ExportModeSatisfaction:
			category := "契約外"
			if c.RepairType == RepairTypeInContract {
				category = "契約內"
			}
			var score any
			if c.SatisfactionScore != nil {
				score = *c.SatisfactionScore
			}
			level := c.SatisfactionLevel
			if level == "" {
				level = "--"
			}
			rows = append(rows, []any{
				ctrl.CaseNumber, c.Station, c.Address, combinedDescription(c),
				level, score, category,
			})
		case ExportModeInternalCtrl:
			stats := CalcFinancials(c.CostItems, c.IncomeItems)
			rows = append(rows, []any{
				ctrl.CaseNumber, c.Address,
				stats.TotalCosts, joinCostField(c.CostItems, func(ci CostItem) string { return ci.Contractor }),
				joinCostField(c.CostItems, func(ci CostItem) string { return ci.InvoiceNumber }),
				stats.TotalIncome, joinIncomeField(c.IncomeItems, func(ii IncomeItem) string { return ii.Source }),
				joinIncomeField(c.IncomeItems, func(ii IncomeItem) string { return ii.ReceiptNumber }),
			})
		default:
			return nil, fmt.Errorf("unknown export mode %q", mode)
		}
	}

	return rows, nil
}

// ControlSummaries splits the aggregate financials by contract type for the
// internal-control summary column groups.
func ControlSummaries(cases []RepairCase) []ControlSummary {
	summaries := []ControlSummary{
		{Label: "契約內"},
		{Label: "契約外"},
	}
	for _, c := range cases {
		idx := 1
		if c.RepairType == RepairTypeInContract {
			idx = 0
		}
		stats := CalcFinancials(c.CostItems, c.IncomeItems)
		summaries[idx].TotalCosts += stats.TotalCosts
		summaries[idx].TotalIncome += stats.TotalIncome
		summaries[idx].NetProfit += stats.NetProfit
	}
	return summaries
}

func joinCostField(items []CostItem, pick func(CostItem) string) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, pick(it))
	}
	return strings.Join(parts, ", ")
}

func joinIncomeField(items []IncomeItem, pick func(IncomeItem) string) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, pick(it))
	}
	return strings.Join(parts, ", ")
}
