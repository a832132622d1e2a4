package services

import "github.com/google/uuid"

// RepairCase is the root entity: one repair request at a metro station,
// with its quotation lines, bookkeeping entries and JDM workflow record.
// Field names follow the persisted document shape.
type RepairCase struct {
	ID                string       `json:"id,omitempty"`
	Station           string       `json:"station"`
	Address           string       `json:"address"`
	Tenant            string       `json:"tenant"`
	Phone             string       `json:"phone"`
	RepairType        string       `json:"repairType"`
	ReportDate        string       `json:"reportDate"`
	IsSubLease        bool         `json:"isSubLease"`
	RepairItems       []RepairItem `json:"repairItems"`
	CostItems         []CostItem   `json:"costItems"`
	IncomeItems       []IncomeItem `json:"incomeItems"`
	QuoteTitle        string       `json:"quoteTitle"`
	SiteDescription   string       `json:"siteDescription"`
	ConstructionDesc1 string       `json:"constructionDesc1"`
	ConstructionDesc2 string       `json:"constructionDesc2"`
	CompletionDate    string       `json:"completionDate"`
	CompletionDesc1   string       `json:"completionDesc1"`
	CompletionDesc2   string       `json:"completionDesc2"`
	TotalAmount       float64      `json:"totalAmount"`
	SatisfactionLevel string       `json:"satisfactionLevel"`
	SatisfactionScore *int         `json:"satisfactionScore"`
	JDMControl        JDMControl   `json:"jdmControl"`
}

// NewRepairCase returns a fresh form state: one blank cost row, one linked
// income row with the default billing source, and the stock narrative text.
func NewRepairCase() RepairCase {
	return RepairCase{
		RepairType: RepairTypeInContract,
		RepairItems: []RepairItem{},
		CostItems: []CostItem{
			{ID: uuid.NewString()},
		},
		IncomeItems: []IncomeItem{
			{ID: uuid.NewString(), Source: "晟晁", Sync: IncomeSyncLinked},
		},
		SiteDescription: "收到承租人報修，請我方派員查看。",
		ConstructionDesc1: "經廠商檢測，。",
		CompletionDesc1: "廠商將OOO更新，測試功能正常，完成修繕。",
		JDMControl: JDMControl{
			Checklist: []string{},
		},
	}
}

// Recompute derives the quote totals, syncs the linked income item and
// stamps the total amount. Pure over the case value; callers invoke it
// after every mutating operation instead of relying on ambient reactivity.
func (rc RepairCase) Recompute() RepairCase {
	quote := CalcQuote(rc.RepairItems, rc.RepairType)
	rc.IncomeItems = SyncLinkedIncome(rc.IncomeItems, quote)
	rc.TotalAmount = quote.Total
	return rc
}
