package services

import "strings"

// JDM workflow statuses. The empty string means the case has not been
// submitted into the JDM pipeline yet.
const (
	StatusReported = "提報"
	StatusClosed   = "結報"
	StatusReplaced = "抽換"
	StatusRejected = "退件"
)

// ValidStatus reports whether s is one of the known workflow statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusReported, StatusClosed, StatusReplaced, StatusRejected:
		return true
	}
	return false
}

// JDMControl tracks a case's position in the external approval pipeline:
// five milestone dates (ISO YYYY-MM-DD strings, empty when not reached),
// the status label, the outstanding-document checklist and free remarks.
type JDMControl struct {
	CaseNumber       string   `json:"caseNumber"`
	ReportDate       string   `json:"reportDate"`
	ReportSubmitDate string   `json:"reportSubmitDate"`
	ApprovalDate     string   `json:"approvalDate"`
	CloseDate        string   `json:"closeDate"`
	CloseSubmitDate  string   `json:"closeSubmitDate"`
	Status           string   `json:"status"`
	Checklist        []string `json:"checklist"`
	Remarks          string   `json:"remarks"`
}

// JDM date field identifiers, in canonical workflow order.
const (
	FieldReportDate       = "reportDate"
	FieldReportSubmitDate = "reportSubmitDate"
	FieldApprovalDate     = "approvalDate"
	FieldCloseDate        = "closeDate"
	FieldCloseSubmitDate  = "closeSubmitDate"
	FieldCaseNumber       = "caseNumber"
)

var jdmSequence = []struct {
	key   string
	label string
}{
	{FieldReportDate, "提報日"},
	{FieldReportSubmitDate, "送件日"},
	{FieldApprovalDate, "奉核日"},
	{FieldCloseDate, "結報日"},
	{FieldCloseSubmitDate, "送件日"},
}

func (c JDMControl) dateValue(key string) string {
	switch key {
	case FieldReportDate:
		return c.ReportDate
	case FieldReportSubmitDate:
		return c.ReportSubmitDate
	case FieldApprovalDate:
		return c.ApprovalDate
	case FieldCloseDate:
		return c.CloseDate
	case FieldCloseSubmitDate:
		return c.CloseSubmitDate
	}
	return ""
}

// skipPair reports whether the ordering check between the two date fields is
// waived. In-contract cases may legitimately close before the report-side
// submission completes, so (reportSubmitDate, closeDate) is exempt for them.
func skipPair(repairType, earlierKey, laterKey string) bool {
	return repairType == RepairTypeInContract &&
		earlierKey == FieldReportSubmitDate && laterKey == FieldCloseDate
}

// strictPair reports whether the ordering between the two date fields must be
// strictly increasing. Only the approval date must fall strictly after the
// report-side submission.
func strictPair(earlierKey, laterKey string) bool {
	return earlierKey == FieldReportSubmitDate && laterKey == FieldApprovalDate
}

// ValidateJDM checks the workflow dates and status-conditioned requirements
// of a case and returns the human-readable violations, deduplicated, in
// detection order. An empty slice means the control record is consistent.
//
// ISO date strings are compared lexicographically, which matches
// chronological order for equal-width YYYY-MM-DD values.
func ValidateJDM(ctrl JDMControl, repairType string) []string {
	var errs []string
	seen := make(map[string]bool)
	add := func(msg string) {
		if !seen[msg] {
			seen[msg] = true
			errs = append(errs, msg)
		}
	}

	for i := 0; i < len(jdmSequence); i++ {
		earlier := ctrl.dateValue(jdmSequence[i].key)
		if earlier == "" {
			continue
		}
		for j := i + 1; j < len(jdmSequence); j++ {
			later := ctrl.dateValue(jdmSequence[j].key)
			if later == "" {
				continue
			}
			if skipPair(repairType, jdmSequence[i].key, jdmSequence[j].key) {
				continue
			}
			strict := strictPair(jdmSequence[i].key, jdmSequence[j].key)
			if (strict && earlier >= later) || (!strict && earlier > later) {
				rel := "晚於或等於"
				if strict {
					rel = "晚於"
				}
				add(jdmSequence[j].label + "應" + rel + jdmSequence[i].label)
			}
		}
	}

	switch ctrl.Status {
	case StatusReported:
		if ctrl.ReportDate == "" {
			add("狀態為提報時，提報日必填")
		}
		if ctrl.ReportSubmitDate == "" {
			add("狀態為提報時，送件日必填")
		}
		if ctrl.CloseDate != "" || ctrl.CloseSubmitDate != "" {
			add("案件狀態為提報時，不可填寫結報日期與送件日")
		}
		if strings.TrimSpace(ctrl.CaseNumber) == "" {
			add("狀態為提報時，JDM 系統案號必填")
		}
	case StatusClosed:
		if ctrl.ReportDate == "" {
			add("狀態為結報時，提報日必填")
		}
		if ctrl.ReportSubmitDate == "" {
			add("狀態為結報時，送件日必填")
		}
		if ctrl.CloseDate == "" {
			add("狀態為結報時，結報日必填")
		}
		if ctrl.CloseSubmitDate == "" {
			add("狀態為結報時，送件日必填")
		}
		if strings.TrimSpace(ctrl.CaseNumber) == "" {
			add("狀態為結報時，JDM 系統案號必填")
		}
	}

	if repairType == RepairTypeInContract {
		if ctrl.ReportSubmitDate != "" && ctrl.CloseSubmitDate != "" &&
			ctrl.ReportSubmitDate != ctrl.CloseSubmitDate {
			add("契約內案件：送件日須為同一天")
		}
	}

	return errs
}

// JDMFieldError reports whether a single field is implicated in any
// violation: required but missing, forbidden but present, part of a broken
// same-day submission pair, or out of order against any other present date.
// It applies the same strict/non-strict/exception rules as ValidateJDM so a
// true result always corresponds to at least one aggregate message.
func JDMFieldError(fieldID string, ctrl JDMControl, repairType string) bool {
	if fieldID == FieldCaseNumber {
		return (ctrl.Status == StatusReported || ctrl.Status == StatusClosed) &&
			strings.TrimSpace(ctrl.CaseNumber) == ""
	}

	val := ctrl.dateValue(fieldID)

	if ctrl.Status == StatusReported {
		if (fieldID == FieldReportDate || fieldID == FieldReportSubmitDate) && val == "" {
			return true
		}
		if (fieldID == FieldCloseDate || fieldID == FieldCloseSubmitDate) && val != "" {
			return true
		}
	}
	if ctrl.Status == StatusClosed {
		switch fieldID {
		case FieldReportDate, FieldReportSubmitDate, FieldCloseDate, FieldCloseSubmitDate:
			if val == "" {
				return true
			}
		}
	}

	if repairType == RepairTypeInContract {
		if (fieldID == FieldReportSubmitDate || fieldID == FieldCloseSubmitDate) &&
			ctrl.ReportSubmitDate != "" && ctrl.CloseSubmitDate != "" &&
			ctrl.ReportSubmitDate != ctrl.CloseSubmitDate {
			return true
		}
	}

	if val == "" {
		return false
	}

	myIdx := -1
	for i, s := range jdmSequence {
		if s.key == fieldID {
			myIdx = i
			break
		}
	}
	if myIdx < 0 {
		return false
	}

	for i, s := range jdmSequence {
		if i == myIdx {
			continue
		}
		other := ctrl.dateValue(s.key)
		if other == "" {
			continue
		}
		if i < myIdx {
			if skipPair(repairType, s.key, fieldID) {
				continue
			}
			strict := strictPair(s.key, fieldID)
			if (strict && other >= val) || (!strict && other > val) {
				return true
			}
		} else {
			if skipPair(repairType, fieldID, s.key) {
				continue
			}
			strict := strictPair(fieldID, s.key)
			if (strict && val >= other) || (!strict && val > other) {
				return true
			}
		}
	}
	return false
}
