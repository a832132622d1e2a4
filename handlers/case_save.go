package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"mrtrepair/services"
)

// HandleCaseSave persists a case with create-or-update semantics: a body
// without an id inserts a new document, one with an id updates it in place.
// The save gate runs first; a rejected save performs no write.
// Route: POST /api/repair/cases
func HandleCaseSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var rc services.RepairCase
		if err := e.BindBody(&rc); err != nil {
			return ErrorNotice(e, http.StatusBadRequest, "無法解析案件資料")
		}

		saved, err := services.SaveCase(app, rc, authorID(e))
		if err != nil {
			var gateErr *services.SaveGateError
			if errors.As(err, &gateErr) {
				return ErrorNotice(e, http.StatusUnprocessableEntity, gateErr.Message)
			}
			log.Printf("case_save: could not save case: %v", err)
			return ErrorNotice(e, http.StatusInternalServerError, "儲存失敗")
		}

		return SuccessPayload(e, "案件儲存成功", map[string]any{"case": saved})
	}
}

// HandleCasePreview recomputes the derived state of an unsaved case: quote
// totals, financial aggregates, the violation list and per-field error
// flags. Pure over the request body; nothing is written.
// Route: POST /api/repair/cases/preview
func HandleCasePreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var rc services.RepairCase
		if err := e.BindBody(&rc); err != nil {
			return ErrorNotice(e, http.StatusBadRequest, "無法解析案件資料")
		}

		violations := services.ValidateJDM(rc.JDMControl, rc.RepairType)

		fieldErrors := make(map[string]bool)
		for _, field := range []string{
			services.FieldReportDate,
			services.FieldReportSubmitDate,
			services.FieldApprovalDate,
			services.FieldCloseDate,
			services.FieldCloseSubmitDate,
			services.FieldCaseNumber,
		} {
			fieldErrors[field] = services.JDMFieldError(field, rc.JDMControl, rc.RepairType)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"quote":       services.CalcQuote(rc.RepairItems, rc.RepairType),
			"financials":  services.CalcFinancials(rc.CostItems, rc.IncomeItems),
			"violations":  violations,
			"fieldErrors": fieldErrors,
		})
	}
}
