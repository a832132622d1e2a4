package services

// StatusTransition describes the outcome of requesting a status change:
// the status the control record would move to, the checklist after the
// change's side effects, and whether the change needs user confirmation
// before being applied.
type StatusTransition struct {
	NextStatus          string   `json:"nextStatus"`
	Checklist           []string `json:"checklist"`
	RequiresConfirm     bool     `json:"requiresConfirm"`
	ConfirmationMessage string   `json:"confirmationMessage,omitempty"`
}

// PlanStatusChange evaluates a requested status against the current control
// record. Re-selecting the current status toggles it back to unset. Every
// transition is legal; the validator blocks persistence, not the change.
//
// Side effects: entering 提報 removes the before-photo and quotation items
// from the checklist (assumed satisfied once reported); entering 結報 clears
// the checklist entirely. Those two transitions require confirmation since
// they discard checklist state. 抽換 and 退件 apply immediately; they make
// remarks mandatory at save time instead.
func PlanStatusChange(ctrl JDMControl, target string) StatusTransition {
	if ctrl.Status == target {
		return StatusTransition{NextStatus: "", Checklist: ctrl.Checklist}
	}

	switch target {
	case StatusReported:
		return StatusTransition{
			NextStatus:          target,
			Checklist:           removeChecklistItems(ctrl.Checklist, CheckPhotoBefore, CheckQuotation),
			RequiresConfirm:     true,
			ConfirmationMessage: "變更為提報後，系統將自動從待補清單移除「維修前照片」與「報價單」。",
		}
	case StatusClosed:
		return StatusTransition{
			NextStatus:          target,
			Checklist:           []string{},
			RequiresConfirm:     true,
			ConfirmationMessage: "變更為結報後，系統將自動清空所有待補資料項。",
		}
	}

	return StatusTransition{NextStatus: target, Checklist: ctrl.Checklist}
}

// ApplyStatusChange returns the control record after a confirmed transition.
func ApplyStatusChange(ctrl JDMControl, tr StatusTransition) JDMControl {
	ctrl.Status = tr.NextStatus
	ctrl.Checklist = tr.Checklist
	return ctrl
}

func removeChecklistItems(list []string, drop ...string) []string {
	dropSet := make(map[string]bool, len(drop))
	for _, d := range drop {
		dropSet[d] = true
	}
	out := make([]string, 0, len(list))
	for _, id := range list {
		if !dropSet[id] {
			out = append(out, id)
		}
	}
	return out
}
