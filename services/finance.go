package services

import "github.com/spf13/cast"

// CostItem is one expense record on a case.
type CostItem struct {
	ID            string `json:"id"`
	Contractor    string `json:"contractor"`
	WorkTask      string `json:"workTask"`
	InvoiceNumber string `json:"invoiceNumber"`
	BillingDate   string `json:"billingDate"`
	CostAmount    any    `json:"costAmount"`
	VoucherNumber string `json:"voucherNumber"`
	Remarks       string `json:"remarks"`
}

// IncomeSync controls whether the first income item's monetary fields track
// the computed quote total or hold a manual override.
const (
	IncomeSyncLinked = "linked"
	IncomeSyncManual = "manual"
)

// IncomeItem is one income record on a case.
type IncomeItem struct {
	ID                  string  `json:"id"`
	Source              string  `json:"source"`
	ReceiptNumber       string  `json:"receiptNumber"`
	ReceiveDate         string  `json:"receiveDate"`
	Subtotal            float64 `json:"subtotal"`
	ServiceFee          float64 `json:"serviceFee"`
	Tax                 float64 `json:"tax"`
	IncomeAmount        any     `json:"incomeAmount"`
	IncomeVoucherNumber string  `json:"incomeVoucherNumber"`
	Remarks             string  `json:"remarks"`
	Sync                string  `json:"sync,omitempty"`
}

// FinancialStats aggregates the bookkeeping side of a case.
type FinancialStats struct {
	TotalCosts  float64 `json:"totalCosts"`
	TotalIncome float64 `json:"totalIncome"`
	NetProfit   float64 `json:"netProfit"`
}

// CalcFinancials sums cost and income amounts and derives the net profit.
// Blank or non-numeric amounts count as zero.
func CalcFinancials(costItems []CostItem, incomeItems []IncomeItem) FinancialStats {
	var stats FinancialStats
	for _, ci := range costItems {
		stats.TotalCosts += cast.ToFloat64(ci.CostAmount)
	}
	for _, ii := range incomeItems {
		stats.TotalIncome += cast.ToFloat64(ii.IncomeAmount)
	}
	stats.NetProfit = stats.TotalIncome - stats.TotalCosts
	return stats
}

// SyncLinkedIncome writes the quote summary into the first income item when
// that item is linked. Manual items are left untouched. The input slice is
// never written through; a copy carries the synced values.
func SyncLinkedIncome(items []IncomeItem, quote QuoteSummary) []IncomeItem {
	if len(items) == 0 || items[0].Sync == IncomeSyncManual {
		return items
	}
	out := make([]IncomeItem, len(items))
	copy(out, items)
	out[0].Subtotal = quote.Subtotal
	out[0].ServiceFee = quote.ServiceFee
	out[0].Tax = quote.Tax
	out[0].IncomeAmount = quote.Total
	return out
}
