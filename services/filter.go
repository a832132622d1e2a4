package services

import (
	"fmt"
	"sort"
	"strings"
)

// Dashboard status filter presets, alongside the concrete status labels.
const (
	FilterStatusAll        = "全部"
	FilterStatusPending    = "待提報"
	FilterStatusUnfinished = "未完成案件 (全部)"
)

// Special-formula presets. Each combines the report-month and close-month
// inputs with status and contract-type conditions.
const (
	FormulaClosedThisPeriod  = "本期已完工"
	FormulaClosedPrevPeriod  = "前期已完工"
	FormulaPendingThisPeriod = "本期待追蹤"
	FormulaPendingPrevPeriod = "前期待追蹤"
	FormulaInContractClosed  = "約內已完工"
	FormulaInternalControl   = "內控管理"
)

// maxStationFilter caps the station membership filter that is pushed to the
// server. Exceeding it is a hard client-side error before any query runs.
const maxStationFilter = 10

// DashboardFilter is the full search state of the case dashboard.
type DashboardFilter struct {
	Search         string   `json:"search"`
	Status         string   `json:"status"`
	Stations       []string `json:"stations"`
	ReportMonth    string   `json:"reportMonth"`
	CloseMonth     string   `json:"closeMonth"`
	SpecialFormula string   `json:"specialFormula"`
}

// Active reports whether any filter criterion is set. An inactive filter
// yields no results rather than the whole collection.
func (f DashboardFilter) Active() bool {
	return strings.TrimSpace(f.Search) != "" ||
		(f.Status != "" && f.Status != FilterStatusAll) ||
		len(f.Stations) > 0 ||
		f.ReportMonth != "" ||
		f.CloseMonth != "" ||
		f.SpecialFormula != ""
}

// BuildCaseFilter translates the server-side portion of the filter (status
// and station membership) into a PocketBase filter expression with bound
// parameters. It returns an error when more than maxStationFilter stations
// are requested; that request is never sent to the server.
func BuildCaseFilter(f DashboardFilter) (string, map[string]any, error) {
	if len(f.Stations) > maxStationFilter {
		return "", nil, fmt.Errorf("station filter supports at most %d stations, got %d",
			maxStationFilter, len(f.Stations))
	}

	var clauses []string
	params := map[string]any{}

	switch f.Status {
	case "", FilterStatusAll:
	case FilterStatusPending:
		clauses = append(clauses, "jdm_control.status = ''")
	case FilterStatusUnfinished:
		clauses = append(clauses, "jdm_control.status != {:closed}")
		params["closed"] = StatusClosed
	default:
		clauses = append(clauses, "jdm_control.status = {:status}")
		params["status"] = f.Status
	}

	if len(f.Stations) > 0 {
		var ors []string
		for i, st := range f.Stations {
			key := fmt.Sprintf("station%d", i)
			ors = append(ors, fmt.Sprintf("station = {:%s}", key))
			params[key] = st
		}
		clauses = append(clauses, "("+strings.Join(ors, " || ")+")")
	}

	return strings.Join(clauses, " && "), params, nil
}

// ApplyClientFilters narrows a server-filtered case list by the criteria
// that are evaluated client-side: free-text search, month prefixes and the
// special-formula presets. The result is sorted by report date ascending,
// undated cases last.
func ApplyClientFilters(cases []RepairCase, f DashboardFilter) []RepairCase {
	out := make([]RepairCase, 0, len(cases))
	for _, c := range cases {
		if matchesSearch(c, f.Search) && matchesMonths(c, f) {
			out = append(out, c)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return reportDateKey(out[i]) < reportDateKey(out[j])
	})
	return out
}

func reportDateKey(c RepairCase) string {
	if c.JDMControl.ReportDate == "" {
		return "9999-99-99"
	}
	return c.JDMControl.ReportDate
}

func matchesSearch(c RepairCase, search string) bool {
	s := strings.ToLower(strings.TrimSpace(search))
	if s == "" {
		return true
	}
	for _, field := range []string{
		c.Address, c.Tenant, c.Station, c.JDMControl.CaseNumber, c.QuoteTitle,
	} {
		if strings.Contains(strings.ToLower(field), s) {
			return true
		}
	}
	for _, ri := range c.RepairItems {
		if strings.Contains(strings.ToLower(ri.Name), s) {
			return true
		}
	}
	return false
}

// matchesMonths applies either a special formula (when one is selected and
// both month inputs are set) or the plain month-prefix filters.
func matchesMonths(c RepairCase, f DashboardFilter) bool {
	rD := c.JDMControl.ReportDate
	cD := c.JDMControl.CloseDate
	status := c.JDMControl.Status

	if f.SpecialFormula != "" && f.ReportMonth != "" && f.CloseMonth != "" {
		rM, cM := f.ReportMonth, f.CloseMonth
		closeUpper := cM + "-31"
		switch f.SpecialFormula {
		case FormulaClosedThisPeriod:
			return strings.HasPrefix(rD, rM) && cD >= rM && cD <= closeUpper &&
				status == StatusClosed && c.RepairType == RepairTypeOutContract
		case FormulaClosedPrevPeriod:
			return rD != "" && rD < rM && cD >= rM && cD <= closeUpper &&
				status == StatusClosed && c.RepairType == RepairTypeOutContract
		case FormulaPendingThisPeriod:
			return strings.HasPrefix(rD, rM) && cD == "" &&
				status == StatusReported && c.RepairType == RepairTypeOutContract
		case FormulaPendingPrevPeriod:
			return rD != "" && rD < rM && cD == "" &&
				status == StatusReported && c.RepairType == RepairTypeOutContract
		case FormulaInContractClosed:
			return strings.HasPrefix(rD, rM) && strings.HasPrefix(cD, cM) &&
				status == StatusClosed && c.RepairType == RepairTypeInContract
		case FormulaInternalControl:
			return rD >= rM && cD >= rM && cD <= closeUpper
		}
		return false
	}

	if f.ReportMonth != "" && !strings.HasPrefix(rD, f.ReportMonth) {
		return false
	}
	if f.CloseMonth != "" && !strings.HasPrefix(cD, f.CloseMonth) {
		return false
	}
	return true
}
