package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"mrtrepair/services"
)

type statusChangeRequest struct {
	JDMControl services.JDMControl `json:"jdmControl"`
	Target     string              `json:"target"`
	Confirm    bool                `json:"confirm"`
}

// HandleStatusChange plans a status transition for the submitted control
// block and, unless the transition needs a confirmation the caller has not
// given yet, applies it and returns the updated control. The endpoint is
// stateless; the client saves the case separately.
// Route: POST /api/repair/cases/status
func HandleStatusChange(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req statusChangeRequest
		if err := e.BindBody(&req); err != nil {
			return ErrorNotice(e, http.StatusBadRequest, "無法解析狀態變更請求")
		}

		if req.Target != "" && !services.ValidStatus(req.Target) {
			return ErrorNotice(e, http.StatusBadRequest, "未知的案件狀態")
		}

		tr := services.PlanStatusChange(req.JDMControl, req.Target)
		if tr.RequiresConfirm && !req.Confirm {
			return e.JSON(http.StatusOK, map[string]any{
				"confirmationRequired": true,
				"message":              tr.ConfirmationMessage,
			})
		}

		next := services.ApplyStatusChange(req.JDMControl, tr)
		return e.JSON(http.StatusOK, map[string]any{
			"confirmationRequired": false,
			"jdmControl":           next,
		})
	}
}
