package services

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// SaveGateError is a user-facing reason a case may not be persisted yet.
type SaveGateError struct {
	Message string
}

func (e *SaveGateError) Error() string { return e.Message }

// CheckSaveGate enforces the persistence preconditions:
//
//  1. Monetary amounts and quantities must not be negative.
//  2. 抽換 and 退件 cases must carry remarks recording the reason.
//  3. 提報 and 結報 cases must carry a JDM case number.
//  4. A case with outstanding date violations may only be saved if the
//     remarks explain them.
//
// A nil return means the case may be written.
func CheckSaveGate(rc RepairCase) *SaveGateError {
	for _, it := range rc.RepairItems {
		if cast.ToFloat64(it.Price) < 0 || cast.ToFloat64(it.Quantity) < 0 {
			return &SaveGateError{Message: "報價項目的單價與數量不可為負數。"}
		}
	}
	for _, ci := range rc.CostItems {
		if cast.ToFloat64(ci.CostAmount) < 0 {
			return &SaveGateError{Message: "成本金額不可為負數。"}
		}
	}
	for _, ii := range rc.IncomeItems {
		if cast.ToFloat64(ii.IncomeAmount) < 0 {
			return &SaveGateError{Message: "收入金額不可為負數。"}
		}
	}

	status := rc.JDMControl.Status
	remarks := strings.TrimSpace(rc.JDMControl.Remarks)

	if (status == StatusReplaced || status == StatusRejected) && remarks == "" {
		return &SaveGateError{
			Message: fmt.Sprintf("狀態為「%s」時，必須填寫案件備註以記錄原因。", status),
		}
	}

	if (status == StatusReported || status == StatusClosed) &&
		strings.TrimSpace(rc.JDMControl.CaseNumber) == "" {
		return &SaveGateError{
			Message: fmt.Sprintf("狀態為「%s」時，必須填寫 JDM 系統案號。", status),
		}
	}

	if violations := ValidateJDM(rc.JDMControl, rc.RepairType); len(violations) > 0 && remarks == "" {
		return &SaveGateError{
			Message: "日期檢核未通過（" + violations[0] + "），須填寫案件備註說明原因後才能儲存。",
		}
	}

	return nil
}
