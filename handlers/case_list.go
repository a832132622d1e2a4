package handlers

import (
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"mrtrepair/services"
)

// dashboardFilterFromQuery reads the filter state out of the query string.
// Stations arrive as a comma-separated list.
func dashboardFilterFromQuery(e *core.RequestEvent) services.DashboardFilter {
	q := e.Request.URL.Query()

	var stations []string
	if raw := strings.TrimSpace(q.Get("stations")); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				stations = append(stations, s)
			}
		}
	}

	return services.DashboardFilter{
		Search:         q.Get("search"),
		Status:         q.Get("status"),
		Stations:       stations,
		ReportMonth:    q.Get("reportMonth"),
		CloseMonth:     q.Get("closeMonth"),
		SpecialFormula: q.Get("specialFormula"),
	}
}

// HandleCaseList runs the dashboard query: status and station membership
// are filtered server-side, everything else client-side over the result
// set. An inactive filter returns an empty list.
// Route: GET /api/repair/cases
func HandleCaseList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		filter := dashboardFilterFromQuery(e)

		cases, err := services.QueryCases(app, filter)
		if err != nil {
			if _, _, ferr := services.BuildCaseFilter(filter); ferr != nil {
				return ErrorNotice(e, http.StatusBadRequest, ferr.Error())
			}
			log.Printf("case_list: query failed: %v", err)
			return ErrorNotice(e, http.StatusInternalServerError, "讀取案件清單失敗")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"cases": cases,
			"total": len(cases),
		})
	}
}

// HandleCaseView loads one case by id, together with the display labels of
// its outstanding-document checklist.
// Route: GET /api/repair/cases/{id}
func HandleCaseView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		record, err := app.FindRecordById("repair_cases", id)
		if err != nil {
			return ErrorNotice(e, http.StatusNotFound, "找不到案件")
		}

		rc, err := services.CaseFromRecord(record)
		if err != nil {
			log.Printf("case_view: malformed case %s: %v", id, err)
			return ErrorNotice(e, http.StatusInternalServerError, "案件資料損毀")
		}

		labels := make([]string, 0, len(rc.JDMControl.Checklist))
		for _, id := range rc.JDMControl.Checklist {
			labels = append(labels, services.ChecklistLabel(id))
		}

		return e.JSON(http.StatusOK, map[string]any{
			"case":            rc,
			"checklistLabels": labels,
		})
	}
}

// HandleStationList returns the distinct stations across all cases, sorted,
// for the dashboard's station filter dropdown.
// Route: GET /api/repair/stations
func HandleStationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		col, err := app.FindCollectionByNameOrId("repair_cases")
		if err != nil {
			return ErrorNotice(e, http.StatusInternalServerError, "讀取站點清單失敗")
		}

		records, err := app.FindAllRecords(col)
		if err != nil {
			log.Printf("station_list: query failed: %v", err)
			return ErrorNotice(e, http.StatusInternalServerError, "讀取站點清單失敗")
		}

		seen := make(map[string]bool)
		var stations []string
		for _, record := range records {
			st := record.GetString("station")
			if st != "" && !seen[st] {
				seen[st] = true
				stations = append(stations, st)
			}
		}
		sort.Strings(stations)

		return e.JSON(http.StatusOK, map[string]any{"stations": stations})
	}
}
