package services

import (
	"strings"
	"testing"
)

func TestCheckSaveGate(t *testing.T) {
	tests := []struct {
		name      string
		rc        RepairCase
		wantBlock bool
		wantIn    string
	}{
		{
			"blank case passes",
			RepairCase{RepairType: RepairTypeOutContract},
			false, "",
		},
		{
			"replaced without remarks blocked",
			RepairCase{
				RepairType: RepairTypeOutContract,
				JDMControl: JDMControl{Status: StatusReplaced},
			},
			true, "抽換",
		},
		{
			"rejected without remarks blocked",
			RepairCase{
				RepairType: RepairTypeOutContract,
				JDMControl: JDMControl{Status: StatusRejected},
			},
			true, "退件",
		},
		{
			"replaced with remarks passes",
			RepairCase{
				RepairType: RepairTypeOutContract,
				JDMControl: JDMControl{Status: StatusReplaced, Remarks: "承租人要求更換"},
			},
			false, "",
		},
		{
			"reported without case number blocked",
			RepairCase{
				RepairType: RepairTypeOutContract,
				JDMControl: JDMControl{
					Status:           StatusReported,
					ReportDate:       "2024-01-10",
					ReportSubmitDate: "2024-01-12",
				},
			},
			true, "JDM 系統案號",
		},
		{
			"date violation without remarks blocked",
			RepairCase{
				RepairType: RepairTypeOutContract,
				JDMControl: JDMControl{
					ReportDate:       "2024-01-10",
					ReportSubmitDate: "2024-01-05",
				},
			},
			true, "日期檢核未通過",
		},
		{
			"date violation with remarks passes",
			RepairCase{
				RepairType: RepairTypeOutContract,
				JDMControl: JDMControl{
					ReportDate:       "2024-01-10",
					ReportSubmitDate: "2024-01-05",
					Remarks:          "補登歷史案件，日期依原始單據",
				},
			},
			false, "",
		},
		{
			"whitespace-only remarks do not satisfy the gate",
			RepairCase{
				RepairType: RepairTypeOutContract,
				JDMControl: JDMControl{Status: StatusReplaced, Remarks: "   "},
			},
			true, "抽換",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSaveGate(tt.rc)
			if tt.wantBlock {
				if err == nil {
					t.Fatal("expected gate error, got nil")
				}
				if !strings.Contains(err.Message, tt.wantIn) {
					t.Errorf("message %q does not mention %q", err.Message, tt.wantIn)
				}
			} else if err != nil {
				t.Errorf("expected pass, got %q", err.Message)
			}
		})
	}
}

func TestCheckSaveGateViolationMessageQuotesFirstViolation(t *testing.T) {
	rc := RepairCase{
		RepairType: RepairTypeOutContract,
		JDMControl: JDMControl{
			ReportDate:       "2024-01-10",
			ReportSubmitDate: "2024-01-05",
		},
	}
	err := CheckSaveGate(rc)
	if err == nil {
		t.Fatal("expected gate error")
	}
	if !strings.Contains(err.Message, "送件日應晚於或等於提報日") {
		t.Errorf("message %q does not quote the violation", err.Message)
	}
}

func TestCheckSaveGateRejectsNegativeAmounts(t *testing.T) {
	tests := []struct {
		name   string
		rc     RepairCase
		wantIn string
	}{
		{
			"negative unit price",
			RepairCase{
				RepairType:  RepairTypeOutContract,
				RepairItems: []RepairItem{{Name: "更換鎖心", Price: -1000, Quantity: 1}},
			},
			"單價與數量",
		},
		{
			"negative quantity",
			RepairCase{
				RepairType:  RepairTypeOutContract,
				RepairItems: []RepairItem{{Name: "更換鎖心", Price: 1000, Quantity: -2}},
			},
			"單價與數量",
		},
		{
			"negative cost amount",
			RepairCase{
				RepairType: RepairTypeOutContract,
				CostItems:  []CostItem{{Contractor: "大同工程", CostAmount: -500}},
			},
			"成本金額",
		},
		{
			"negative income amount",
			RepairCase{
				RepairType:  RepairTypeOutContract,
				IncomeItems: []IncomeItem{{Source: "晟晁", Sync: IncomeSyncManual, IncomeAmount: -300}},
			},
			"收入金額",
		},
		{
			"negative string price",
			RepairCase{
				RepairType:  RepairTypeOutContract,
				RepairItems: []RepairItem{{Name: "更換鎖心", Price: "-50", Quantity: 1}},
			},
			"單價與數量",
		},
		{
			"zero amounts pass",
			RepairCase{
				RepairType:  RepairTypeOutContract,
				RepairItems: []RepairItem{{Name: "更換鎖心", Price: 0, Quantity: 0}},
				CostItems:   []CostItem{{CostAmount: 0}},
			},
			"",
		},
		{
			"non-numeric amounts count as zero and pass",
			RepairCase{
				RepairType:  RepairTypeOutContract,
				RepairItems: []RepairItem{{Name: "更換鎖心", Price: "待報價", Quantity: ""}},
			},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSaveGate(tt.rc)
			if tt.wantIn == "" {
				if err != nil {
					t.Fatalf("expected pass, got %q", err.Message)
				}
				return
			}
			if err == nil {
				t.Fatal("expected gate error")
			}
			if !strings.Contains(err.Message, tt.wantIn) {
				t.Errorf("message %q does not mention %q", err.Message, tt.wantIn)
			}
		})
	}
}
