package services

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
)

var (
	keyNoisePattern = regexp.MustCompile(`[\n\r\s\x{00A0}\x{3000}]+`)
	digitsPattern   = regexp.MustCompile(`\d+`)
	spacesPattern   = regexp.MustCompile(`\s+`)
)

// historyDateColumns names the date columns of the legacy tracking sheet
// and the short labels used when a cell's trailing text is preserved as a
// case note.
var historyDateColumns = []struct {
	key   string
	label string
}{
	{"JDM提報日期", "提報"},
	{"提報送件日期", "送件"},
	{"奉核日", "奉核"},
	{"結報日期", "結報"},
	{"結報送件日期", "送件"},
	{"收入發票日期", "發票日"},
}

var legacySatisfactionColumns = []string{"非常滿意", "滿意", "尚可", "需改進", "不滿意"}

// ParseHistoricalCases turns the legacy tracking spreadsheet into case
// records, one per row: date columns are normalized through CleanDate (any
// trailing text collects into the case remarks), voucher numbers are
// regex-extracted from the combined vendor text, the pre-tax unit price is
// back-calculated from the tax-inclusive income amount, the five legacy
// satisfaction columns fold into the canonical level/score pair, and the
// initial status derives from which dates parsed.
func ParseHistoricalCases(r io.Reader) ([]RepairCase, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	headers := rows[0]
	cases := make([]RepairCase, 0, len(rows)-1)
	for _, row := range rows[1:] {
		sr := make(map[string]string, len(headers))
		for i, h := range headers {
			key := keyNoisePattern.ReplaceAllString(h, "")
			if key == "" {
				continue
			}
			sr[key] = cellAt(row, i)
		}
		cases = append(cases, historicalCase(sr))
	}

	return cases, nil
}

func historicalCase(sr map[string]string) RepairCase {
	var notes []string
	dates := make(map[string]string, len(historyDateColumns))
	for _, col := range historyDateColumns {
		val := sr[col.key]
		if val == "" {
			val = sr[strings.TrimPrefix(col.key, "JDM")]
		}
		cleaned := CleanDate(val)
		dates[col.key] = cleaned.Date
		if cleaned.Note != "" {
			notes = append(notes, col.label+": "+cleaned.Note)
		}
	}

	// The billing vendor cell often embeds the internal voucher number.
	billingVendor := strings.TrimSpace(sr["請款廠商"])
	incomeVoucher := ""
	if strings.Contains(billingVendor, "晟晁") {
		if m := digitsPattern.FindString(billingVendor); m != "" {
			incomeVoucher = m
			billingVendor = "晟晁"
		}
	}

	costVendor := strings.TrimSpace(sr["維修廠商"])
	costAmount := cast.ToFloat64(sr["費用金額"])
	incomeAmount := cast.ToFloat64(sr["收入金額(稅後)"])
	if !strings.Contains(billingVendor, "晟晁") && costVendor == "" && billingVendor != "" {
		costVendor = billingVendor
		costAmount = incomeAmount
	}
	costVoucher := ""
	if m := digitsPattern.FindString(costVendor); m != "" {
		costVoucher = m
		costVendor = strings.TrimSpace(spacesPattern.ReplaceAllString(strings.Replace(costVendor, m, "", 1), " "))
	}

	preTax := math.Round(incomeAmount / 1.05)

	satisfactionLevel := ""
	var satisfactionScore *int
	for _, col := range legacySatisfactionColumns {
		if val, ok := sr[col]; ok && val != "" {
			satisfactionLevel = CanonicalSatisfactionLabel(col)
			score := cast.ToInt(val)
			satisfactionScore = &score
		}
	}

	status := ""
	if dates["結報日期"] != "" {
		status = StatusClosed
	} else if dates["JDM提報日期"] != "" {
		status = StatusReported
	}

	isSubLease := false
	for _, key := range []string{"備註", "欄1", "欄2"} {
		if strings.Contains(sr[key], "包租") {
			isSubLease = true
			break
		}
	}

	quoteTitle := strings.TrimSpace(sr["報價單標題"])

	rc := NewRepairCase()
	rc.Station = strings.TrimSpace(sr["站點"])
	rc.Address = strings.TrimSpace(sr["建物門牌地址"])
	rc.Tenant = strings.TrimSpace(sr["承租人"])
	rc.Phone = strings.TrimSpace(sr["聯絡電話"])
	rc.RepairType = RepairTypeInContract
	if strings.Contains(sr["契約內/外"], "外") {
		rc.RepairType = RepairTypeOutContract
	}
	rc.QuoteTitle = quoteTitle
	rc.SiteDescription = strings.TrimSpace(sr["現場狀況"])
	rc.TotalAmount = incomeAmount
	rc.SatisfactionLevel = satisfactionLevel
	rc.SatisfactionScore = satisfactionScore
	rc.IsSubLease = isSubLease
	rc.JDMControl = JDMControl{
		CaseNumber:       strings.TrimSpace(sr["JDM系統案號"]),
		ReportDate:       dates["JDM提報日期"],
		ReportSubmitDate: dates["提報送件日期"],
		ApprovalDate:     dates["奉核日"],
		CloseDate:        dates["結報日期"],
		CloseSubmitDate:  dates["結報送件日期"],
		Status:           status,
		Remarks:          strings.Join(notes, "; "),
		Checklist:        []string{},
	}
	rc.CostItems = []CostItem{{
		ID:            uuid.NewString(),
		Contractor:    costVendor,
		CostAmount:    costAmount,
		VoucherNumber: costVoucher,
		Remarks:       strings.TrimSpace(sr["費用備註"]),
		WorkTask:      quoteTitle,
	}}
	rc.IncomeItems = []IncomeItem{{
		ID:                  uuid.NewString(),
		Source:              billingVendor,
		IncomeAmount:        incomeAmount,
		IncomeVoucherNumber: incomeVoucher,
		ReceiveDate:         dates["收入發票日期"],
		ReceiptNumber:       strings.TrimSpace(sr["收入發票號碼"]),
		Sync:                IncomeSyncManual,
	}}
	rc.RepairItems = []RepairItem{{
		ID:       uuid.NewString(),
		Name:     quoteTitle,
		Price:    preTax,
		Quantity: 1,
		Unit:     "式",
		IsManual: true,
	}}

	return rc
}
