package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"mrtrepair/services"
)

// HandleCaseDelete removes a case permanently.
// Route: DELETE /api/repair/cases/{id}
func HandleCaseDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		if _, err := app.FindRecordById("repair_cases", id); err != nil {
			return ErrorNotice(e, http.StatusNotFound, "找不到案件")
		}

		if err := services.DeleteCase(app, id); err != nil {
			log.Printf("case_delete: %s: %v", id, err)
			return ErrorNotice(e, http.StatusInternalServerError, "刪除案件失敗")
		}

		return SuccessPayload(e, "案件已刪除", nil)
	}
}
