package services

import "testing"

func TestCalcQuote(t *testing.T) {
	tests := []struct {
		name       string
		items      []RepairItem
		repairType string
		expect     QuoteSummary
	}{
		{
			"empty in-contract",
			nil,
			RepairTypeInContract,
			QuoteSummary{0, 0, 0, 0},
		},
		{
			"single item out-of-contract",
			[]RepairItem{{Price: 1000, Quantity: 2}},
			RepairTypeOutContract,
			QuoteSummary{Subtotal: 2000, ServiceFee: 0, Tax: 100, Total: 2100},
		},
		{
			"single item in-contract adds service fee",
			[]RepairItem{{Price: 1000, Quantity: 2}},
			RepairTypeInContract,
			QuoteSummary{Subtotal: 2000, ServiceFee: 100, Tax: 105, Total: 2205},
		},
		{
			"fee and tax round half up",
			[]RepairItem{{Price: 1, Quantity: 1010}},
			RepairTypeInContract,
			QuoteSummary{Subtotal: 1010, ServiceFee: 51, Tax: 53, Total: 1114},
		},
		{
			"string numbers are accepted",
			[]RepairItem{{Price: "500", Quantity: "3"}},
			RepairTypeOutContract,
			QuoteSummary{Subtotal: 1500, ServiceFee: 0, Tax: 75, Total: 1575},
		},
		{
			"non-numeric price counts as zero",
			[]RepairItem{
				{Price: "abc", Quantity: 5},
				{Price: 200, Quantity: 1},
			},
			RepairTypeOutContract,
			QuoteSummary{Subtotal: 200, ServiceFee: 0, Tax: 10, Total: 210},
		},
		{
			"blank quantity counts as zero",
			[]RepairItem{{Price: 999, Quantity: ""}},
			RepairTypeInContract,
			QuoteSummary{0, 0, 0, 0},
		},
		{
			"multiple lines accumulate",
			[]RepairItem{
				{Price: 300, Quantity: 2},
				{Price: 150, Quantity: 4},
			},
			RepairTypeInContract,
			QuoteSummary{Subtotal: 1200, ServiceFee: 60, Tax: 63, Total: 1323},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcQuote(tt.items, tt.repairType)
			if got != tt.expect {
				t.Errorf("CalcQuote() = %+v, want %+v", got, tt.expect)
			}
		})
	}
}
