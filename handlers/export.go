package handlers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"mrtrepair/services"
)

// HandleCaseExport streams an xlsx workbook of the current dashboard result
// set in the requested mode. The filter travels in the same query params as
// the list endpoint plus a "mode" param.
// Route: GET /api/repair/exports/cases
func HandleCaseExport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		mode := e.Request.URL.Query().Get("mode")
		if !validExportMode(mode) {
			return ErrorNotice(e, http.StatusBadRequest, "未知的匯出模式")
		}

		filter := dashboardFilterFromQuery(e)
		cases, err := services.QueryCases(app, filter)
		if err != nil {
			if _, _, ferr := services.BuildCaseFilter(filter); ferr != nil {
				return ErrorNotice(e, http.StatusBadRequest, ferr.Error())
			}
			log.Printf("case_export: query failed: %v", err)
			return ErrorNotice(e, http.StatusInternalServerError, "匯出失敗")
		}

		xlsxBytes, err := services.GenerateCaseWorkbook(mode, cases)
		if err != nil {
			log.Printf("case_export: generate failed: %v", err)
			return ErrorNotice(e, http.StatusInternalServerError, "匯出失敗")
		}

		filename := fmt.Sprintf("%s_%s.xlsx", mode, time.Now().Format("2006-01-02"))
		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(filename)))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleQuotePDF streams the quotation sheet of one case as a PDF.
// Route: GET /api/repair/cases/{id}/quote.pdf
func HandleQuotePDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		record, err := app.FindRecordById("repair_cases", id)
		if err != nil {
			return ErrorNotice(e, http.StatusNotFound, "找不到案件")
		}

		rc, err := services.CaseFromRecord(record)
		if err != nil {
			log.Printf("quote_pdf: malformed case %s: %v", id, err)
			return ErrorNotice(e, http.StatusInternalServerError, "案件資料損毀")
		}

		pdfBytes, err := services.GenerateQuotePDF(rc, time.Now().Format("2006-01-02"))
		if err != nil {
			log.Printf("quote_pdf: generate failed: %v", err)
			return ErrorNotice(e, http.StatusInternalServerError, "報價單產生失敗")
		}

		filename := fmt.Sprintf("quote_%s.pdf", id)
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

func validExportMode(mode string) bool {
	for _, m := range services.ExportModes {
		if m == mode {
			return true
		}
	}
	return false
}
