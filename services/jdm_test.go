package services

import (
	"reflect"
	"testing"
)

func TestValidateJDMOrdering(t *testing.T) {
	tests := []struct {
		name       string
		ctrl       JDMControl
		repairType string
		expect     []string
	}{
		{
			"all dates in order",
			JDMControl{
				ReportDate:       "2024-01-10",
				ReportSubmitDate: "2024-01-12",
				ApprovalDate:     "2024-01-20",
				CloseDate:        "2024-02-01",
				CloseSubmitDate:  "2024-02-03",
			},
			RepairTypeOutContract,
			nil,
		},
		{
			"submit before report",
			JDMControl{
				ReportDate:       "2024-01-10",
				ReportSubmitDate: "2024-01-05",
			},
			RepairTypeOutContract,
			[]string{"送件日應晚於或等於提報日"},
		},
		{
			"approval equal to submit is strict violation",
			JDMControl{
				ReportSubmitDate: "2024-01-12",
				ApprovalDate:     "2024-01-12",
			},
			RepairTypeOutContract,
			[]string{"奉核日應晚於送件日"},
		},
		{
			"approval after submit passes",
			JDMControl{
				ReportSubmitDate: "2024-01-12",
				ApprovalDate:     "2024-01-13",
			},
			RepairTypeOutContract,
			nil,
		},
		{
			"report equal to submit passes",
			JDMControl{
				ReportDate:       "2024-01-10",
				ReportSubmitDate: "2024-01-10",
			},
			RepairTypeOutContract,
			nil,
		},
		{
			"close before submit flagged out-of-contract",
			JDMControl{
				ReportSubmitDate: "2024-02-10",
				CloseDate:        "2024-02-01",
			},
			RepairTypeOutContract,
			[]string{"結報日應晚於或等於送件日"},
		},
		{
			"close before submit exempt in-contract",
			JDMControl{
				ReportSubmitDate: "2024-02-10",
				CloseSubmitDate:  "2024-02-10",
				CloseDate:        "2024-02-01",
			},
			RepairTypeInContract,
			nil,
		},
		{
			"empty dates are skipped",
			JDMControl{ApprovalDate: "2024-01-20"},
			RepairTypeOutContract,
			nil,
		},
		{
			"duplicate messages are collapsed",
			JDMControl{
				ReportDate:       "2024-03-01",
				ReportSubmitDate: "2024-02-01",
				CloseSubmitDate:  "2024-02-15",
			},
			RepairTypeOutContract,
			[]string{"送件日應晚於或等於提報日"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateJDM(tt.ctrl, tt.repairType)
			if !reflect.DeepEqual(got, tt.expect) {
				t.Errorf("ValidateJDM() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestValidateJDMStatusRequirements(t *testing.T) {
	tests := []struct {
		name       string
		ctrl       JDMControl
		repairType string
		expect     []string
	}{
		{
			"reported with nothing filled",
			JDMControl{Status: StatusReported},
			RepairTypeOutContract,
			[]string{
				"狀態為提報時，提報日必填",
				"狀態為提報時，送件日必填",
				"狀態為提報時，JDM 系統案號必填",
			},
		},
		{
			"reported must not carry close dates",
			JDMControl{
				Status:           StatusReported,
				CaseNumber:       "JDM-001",
				ReportDate:       "2024-01-10",
				ReportSubmitDate: "2024-01-12",
				CloseDate:        "2024-02-01",
			},
			RepairTypeOutContract,
			[]string{"案件狀態為提報時，不可填寫結報日期與送件日"},
		},
		{
			"closed with nothing filled",
			JDMControl{Status: StatusClosed},
			RepairTypeOutContract,
			[]string{
				"狀態為結報時，提報日必填",
				"狀態為結報時，送件日必填",
				"狀態為結報時，結報日必填",
				"狀態為結報時，JDM 系統案號必填",
			},
		},
		{
			"closed fully filled",
			JDMControl{
				Status:           StatusClosed,
				CaseNumber:       "JDM-002",
				ReportDate:       "2024-01-10",
				ReportSubmitDate: "2024-01-12",
				ApprovalDate:     "2024-01-20",
				CloseDate:        "2024-02-01",
				CloseSubmitDate:  "2024-02-03",
			},
			RepairTypeOutContract,
			nil,
		},
		{
			"unset status has no requirements",
			JDMControl{},
			RepairTypeOutContract,
			nil,
		},
		{
			"replaced status has no date requirements",
			JDMControl{Status: StatusReplaced},
			RepairTypeOutContract,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateJDM(tt.ctrl, tt.repairType)
			if !reflect.DeepEqual(got, tt.expect) {
				t.Errorf("ValidateJDM() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestValidateJDMSameDaySubmission(t *testing.T) {
	ctrl := JDMControl{
		ReportSubmitDate: "2024-01-12",
		CloseSubmitDate:  "2024-01-15",
	}

	got := ValidateJDM(ctrl, RepairTypeInContract)
	want := []string{"契約內案件：送件日須為同一天"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ValidateJDM() = %v, want %v", got, want)
	}

	if errs := ValidateJDM(ctrl, RepairTypeOutContract); errs != nil {
		t.Errorf("same-day rule should not apply out-of-contract, got %v", errs)
	}

	same := JDMControl{
		ReportSubmitDate: "2024-01-12",
		CloseSubmitDate:  "2024-01-12",
	}
	if errs := ValidateJDM(same, RepairTypeInContract); errs != nil {
		t.Errorf("matching submit dates should pass, got %v", errs)
	}
}

func TestJDMFieldError(t *testing.T) {
	tests := []struct {
		name       string
		fieldID    string
		ctrl       JDMControl
		repairType string
		expect     bool
	}{
		{
			"case number missing while reported",
			FieldCaseNumber,
			JDMControl{Status: StatusReported},
			RepairTypeOutContract,
			true,
		},
		{
			"case number missing while unset status",
			FieldCaseNumber,
			JDMControl{},
			RepairTypeOutContract,
			false,
		},
		{
			"report date required when reported",
			FieldReportDate,
			JDMControl{Status: StatusReported},
			RepairTypeOutContract,
			true,
		},
		{
			"close date forbidden when reported",
			FieldCloseDate,
			JDMControl{Status: StatusReported, CloseDate: "2024-02-01"},
			RepairTypeOutContract,
			true,
		},
		{
			"close date required when closed",
			FieldCloseDate,
			JDMControl{Status: StatusClosed},
			RepairTypeOutContract,
			true,
		},
		{
			"both sides of an ordering violation are flagged",
			FieldReportDate,
			JDMControl{ReportDate: "2024-01-10", ReportSubmitDate: "2024-01-05"},
			RepairTypeOutContract,
			true,
		},
		{
			"later side of the violation too",
			FieldReportSubmitDate,
			JDMControl{ReportDate: "2024-01-10", ReportSubmitDate: "2024-01-05"},
			RepairTypeOutContract,
			true,
		},
		{
			"untouched field stays clean",
			FieldCloseSubmitDate,
			JDMControl{ReportDate: "2024-01-10", ReportSubmitDate: "2024-01-05"},
			RepairTypeOutContract,
			false,
		},
		{
			"strict approval pair flags equality",
			FieldApprovalDate,
			JDMControl{ReportSubmitDate: "2024-01-12", ApprovalDate: "2024-01-12"},
			RepairTypeOutContract,
			true,
		},
		{
			"in-contract close exempt from submit ordering",
			FieldCloseDate,
			JDMControl{
				ReportSubmitDate: "2024-02-10",
				CloseSubmitDate:  "2024-02-10",
				CloseDate:        "2024-02-01",
			},
			RepairTypeInContract,
			false,
		},
		{
			"mismatched submit pair flags both submit fields",
			FieldCloseSubmitDate,
			JDMControl{ReportSubmitDate: "2024-01-12", CloseSubmitDate: "2024-01-15"},
			RepairTypeInContract,
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JDMFieldError(tt.fieldID, tt.ctrl, tt.repairType)
			if got != tt.expect {
				t.Errorf("JDMFieldError(%s) = %v, want %v", tt.fieldID, got, tt.expect)
			}
		})
	}
}
