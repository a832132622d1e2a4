package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"mrtrepair/services"
)

// seedCaseDef describes one development seed case.
type seedCaseDef struct {
	station    string
	address    string
	tenant     string
	repairType string
	quoteTitle string
	itemName   string
	price      float64
	qty        float64
	status     string
	reportDate string
	submitDate string
	closeDate  string
	caseNumber string
	checklist  []string
}

var seedCases = []seedCaseDef{
	{
		station:    "南京復興",
		address:    "台北市松山區南京東路三段219號4樓",
		tenant:     "王小明",
		repairType: services.RepairTypeInContract,
		quoteTitle: "浴室水龍頭漏水修繕",
		itemName:   "面盆龍頭更換",
		price:      1200,
		qty:        1,
		status:     services.StatusReported,
		reportDate: "2024-03-04",
		submitDate: "2024-03-06",
		caseNumber: "JDM-2024-0312",
		checklist:  []string{services.CheckInvoice, services.CheckSatisfactionForm},
	},
	{
		station:    "中山國中",
		address:    "台北市中山區復興北路342號2樓",
		tenant:     "陳美華",
		repairType: services.RepairTypeOutContract,
		quoteTitle: "電子鎖故障更換",
		itemName:   "電子鎖更換含安裝",
		price:      8500,
		qty:        1,
		status:     "",
		checklist:  []string{services.CheckPhotoBefore, services.CheckQuotation},
	},
}

// Seed inserts development sample cases when the repair_cases collection is
// empty. Safe to call on every startup.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("repair_cases")
	if err != nil {
		return fmt.Errorf("seed: could not find repair_cases collection: %w", err)
	}

	existing, err := app.FindRecordsByFilter(col, "id != ''", "", 1, 0, nil)
	if err == nil && len(existing) > 0 {
		return nil
	}

	for _, def := range seedCases {
		rc := services.NewRepairCase()
		rc.Station = def.station
		rc.Address = def.address
		rc.Tenant = def.tenant
		rc.RepairType = def.repairType
		rc.QuoteTitle = def.quoteTitle
		rc.RepairItems = []services.RepairItem{{
			ID:       "seed-" + def.itemName,
			Name:     def.itemName,
			Price:    def.price,
			Quantity: def.qty,
			Unit:     "式",
			IsManual: true,
		}}
		rc.JDMControl.Status = def.status
		rc.JDMControl.ReportDate = def.reportDate
		rc.JDMControl.ReportSubmitDate = def.submitDate
		rc.JDMControl.CloseDate = def.closeDate
		rc.JDMControl.CaseNumber = def.caseNumber
		rc.JDMControl.Checklist = def.checklist
		rc = rc.Recompute()

		record := core.NewRecord(col)
		services.ApplyCaseToRecord(rc, record, "seed")
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: could not save case %q: %w", def.quoteTitle, err)
		}
	}

	log.Printf("seed: inserted %d sample case(s)\n", len(seedCases))
	return nil
}
