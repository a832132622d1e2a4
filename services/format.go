package services

import (
	"fmt"
	"strings"
)

// FormatNTD formats an amount as New Taiwan dollars with thousands
// separators, e.g. NT$1,234,567. Amounts are whole dollars; the fractional
// part is rounded away.
func FormatNTD(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.0f", amount)
	formatted := groupThousands(raw)

	result := "NT$" + formatted
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas every three digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
