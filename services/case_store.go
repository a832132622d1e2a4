package services

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase/core"
)

// importBatchSize is the number of case documents written per transaction
// during a bulk import. Chunks are independent: a failure rolls back only
// the current chunk and aborts the import, leaving earlier chunks in place.
const importBatchSize = 100

// CaseFromRecord decodes a repair_cases record into a RepairCase.
func CaseFromRecord(record *core.Record) (RepairCase, error) {
	rc := RepairCase{
		ID:                record.Id,
		Station:           record.GetString("station"),
		Address:           record.GetString("address"),
		Tenant:            record.GetString("tenant"),
		Phone:             record.GetString("phone"),
		RepairType:        record.GetString("repair_type"),
		ReportDate:        record.GetString("report_date"),
		IsSubLease:        record.GetBool("is_sub_lease"),
		QuoteTitle:        record.GetString("quote_title"),
		SiteDescription:   record.GetString("site_description"),
		ConstructionDesc1: record.GetString("construction_desc1"),
		ConstructionDesc2: record.GetString("construction_desc2"),
		CompletionDate:    record.GetString("completion_date"),
		CompletionDesc1:   record.GetString("completion_desc1"),
		CompletionDesc2:   record.GetString("completion_desc2"),
		TotalAmount:       record.GetFloat("total_amount"),
		SatisfactionLevel: record.GetString("satisfaction_level"),
	}

	if err := record.UnmarshalJSONField("repair_items", &rc.RepairItems); err != nil && record.GetString("repair_items") != "" {
		return rc, fmt.Errorf("decode repair_items: %w", err)
	}
	if err := record.UnmarshalJSONField("cost_items", &rc.CostItems); err != nil && record.GetString("cost_items") != "" {
		return rc, fmt.Errorf("decode cost_items: %w", err)
	}
	if err := record.UnmarshalJSONField("income_items", &rc.IncomeItems); err != nil && record.GetString("income_items") != "" {
		return rc, fmt.Errorf("decode income_items: %w", err)
	}
	if err := record.UnmarshalJSONField("jdm_control", &rc.JDMControl); err != nil && record.GetString("jdm_control") != "" {
		return rc, fmt.Errorf("decode jdm_control: %w", err)
	}
	record.UnmarshalJSONField("satisfaction_score", &rc.SatisfactionScore)

	return rc, nil
}

// ApplyCaseToRecord writes a RepairCase onto a repair_cases record,
// stamping the author. The modification timestamp is server-assigned via
// the collection's autodate field.
func ApplyCaseToRecord(rc RepairCase, record *core.Record, authorID string) {
	record.Set("station", rc.Station)
	record.Set("address", rc.Address)
	record.Set("tenant", rc.Tenant)
	record.Set("phone", rc.Phone)
	record.Set("repair_type", rc.RepairType)
	record.Set("report_date", rc.ReportDate)
	record.Set("is_sub_lease", rc.IsSubLease)
	record.Set("repair_items", rc.RepairItems)
	record.Set("cost_items", rc.CostItems)
	record.Set("income_items", rc.IncomeItems)
	record.Set("quote_title", rc.QuoteTitle)
	record.Set("site_description", rc.SiteDescription)
	record.Set("construction_desc1", rc.ConstructionDesc1)
	record.Set("construction_desc2", rc.ConstructionDesc2)
	record.Set("completion_date", rc.CompletionDate)
	record.Set("completion_desc1", rc.CompletionDesc1)
	record.Set("completion_desc2", rc.CompletionDesc2)
	record.Set("total_amount", rc.TotalAmount)
	record.Set("satisfaction_level", rc.SatisfactionLevel)
	record.Set("satisfaction_score", rc.SatisfactionScore)
	record.Set("jdm_control", rc.JDMControl)
	record.Set("created_by", authorID)
}

// SaveCase persists a case with create-or-update semantics keyed by the
// record id. It enforces the save gate, the contract-type immutability rule
// and recomputes the derived totals before writing.
func SaveCase(app core.App, rc RepairCase, authorID string) (RepairCase, error) {
	if gateErr := CheckSaveGate(rc); gateErr != nil {
		return rc, gateErr
	}

	rc.JDMControl.Checklist = NormalizeChecklist(rc.JDMControl.Checklist)

	// The survey score is fixed per level; a blank level carries no score.
	if score, ok := SatisfactionScore(rc.SatisfactionLevel); ok {
		rc.SatisfactionScore = score
	} else if rc.SatisfactionLevel == "" {
		rc.SatisfactionScore = nil
	}

	rc = rc.Recompute()

	col, err := app.FindCollectionByNameOrId("repair_cases")
	if err != nil {
		return rc, fmt.Errorf("repair_cases collection not found: %w", err)
	}

	var record *core.Record
	if rc.ID != "" {
		record, err = app.FindRecordById(col, rc.ID)
		if err != nil {
			return rc, fmt.Errorf("case %s not found: %w", rc.ID, err)
		}

		// The contract type drives the fee schedule; once line items exist
		// it may no longer change.
		var existingItems []RepairItem
		record.UnmarshalJSONField("repair_items", &existingItems)
		if len(existingItems) > 0 && record.GetString("repair_type") != rc.RepairType {
			return rc, &SaveGateError{Message: "已有報價項目的案件不可變更契約類別。"}
		}
	} else {
		record = core.NewRecord(col)
	}

	ApplyCaseToRecord(rc, record, authorID)
	if err := app.Save(record); err != nil {
		return rc, fmt.Errorf("save case: %w", err)
	}

	rc.ID = record.Id
	return rc, nil
}

// DeleteCase removes a case document. Deletion is explicit and, from the
// application's perspective, irreversible.
func DeleteCase(app core.App, id string) error {
	record, err := app.FindRecordById("repair_cases", id)
	if err != nil {
		return fmt.Errorf("case %s not found: %w", id, err)
	}
	if err := app.Delete(record); err != nil {
		return fmt.Errorf("delete case %s: %w", id, err)
	}
	return nil
}

// BulkImportCases writes imported cases in chunks of importBatchSize, each
// chunk in its own transaction. The count of cases written so far is
// returned alongside any error; already-committed chunks are not rolled
// back when a later chunk fails.
func BulkImportCases(app core.App, cases []RepairCase, authorID string) (int, error) {
	col, err := app.FindCollectionByNameOrId("repair_cases")
	if err != nil {
		return 0, fmt.Errorf("repair_cases collection not found: %w", err)
	}

	imported := 0
	for start := 0; start < len(cases); start += importBatchSize {
		end := start + importBatchSize
		if end > len(cases) {
			end = len(cases)
		}
		chunk := cases[start:end]

		err := app.RunInTransaction(func(txApp core.App) error {
			for _, rc := range chunk {
				record := core.NewRecord(col)
				ApplyCaseToRecord(rc.Recompute(), record, authorID)
				if err := txApp.Save(record); err != nil {
					return fmt.Errorf("save imported case: %w", err)
				}
			}
			return nil
		})
		if err != nil {
			log.Printf("case_import: chunk starting at %d rolled back: %v", start, err)
			return imported, err
		}
		imported += len(chunk)
	}

	return imported, nil
}

// QueryCases runs the server-side portion of the dashboard filter against
// the repair_cases collection and the client-side portion over the decoded
// result set.
func QueryCases(app core.App, filter DashboardFilter) ([]RepairCase, error) {
	if !filter.Active() {
		return []RepairCase{}, nil
	}

	expr, params, err := BuildCaseFilter(filter)
	if err != nil {
		return nil, err
	}

	col, err := app.FindCollectionByNameOrId("repair_cases")
	if err != nil {
		return nil, fmt.Errorf("repair_cases collection not found: %w", err)
	}

	var records []*core.Record
	if expr == "" {
		records, err = app.FindAllRecords(col)
	} else {
		records, err = app.FindRecordsByFilter(col, expr, "", 0, 0, params)
	}
	if err != nil {
		return nil, fmt.Errorf("query cases: %w", err)
	}

	cases := make([]RepairCase, 0, len(records))
	for _, record := range records {
		rc, err := CaseFromRecord(record)
		if err != nil {
			log.Printf("case_query: skipping malformed case %s: %v", record.Id, err)
			continue
		}
		cases = append(cases, rc)
	}

	return ApplyClientFilters(cases, filter), nil
}
