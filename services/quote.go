// Package services provides the pure calculation and validation engine for
// repair cases: quote totals, cost/income aggregates, workflow date checks
// and status transition side effects.
package services

import (
	"math"

	"github.com/spf13/cast"
)

// Repair type values as stored on the record. "2.1" is in-contract,
// "2.2" is out-of-contract.
const (
	RepairTypeInContract  = "2.1"
	RepairTypeOutContract = "2.2"
)

// RepairItem is a single quotation line. Manual items are free text;
// non-manual items come from the imported price master and only their
// quantity is editable.
type RepairItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    any    `json:"price"`
	Quantity any    `json:"quantity"`
	Unit     string `json:"unit"`
	IsManual bool   `json:"isManual"`
}

// QuoteSummary holds the derived monetary totals for a case quotation.
type QuoteSummary struct {
	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"serviceFee"`
	Tax        float64 `json:"tax"`
	Total      float64 `json:"total"`
}

// CalcQuote computes the quotation totals from the repair line items.
// In-contract cases carry a 5% service fee on the subtotal; both types
// carry a 5% tax on subtotal plus fee. Rounding is half-away-from-zero at
// each stage; the final total is not rounded again. Non-numeric price or
// quantity values count as zero.
func CalcQuote(items []RepairItem, repairType string) QuoteSummary {
	var sub float64
	for _, it := range items {
		sub += cast.ToFloat64(it.Price) * cast.ToFloat64(it.Quantity)
	}

	var fee float64
	if repairType == RepairTypeInContract {
		fee = math.Round(sub * 0.05)
	}
	tax := math.Round((sub + fee) * 0.05)

	return QuoteSummary{
		Subtotal:   sub,
		ServiceFee: fee,
		Tax:        tax,
		Total:      sub + fee + tax,
	}
}
