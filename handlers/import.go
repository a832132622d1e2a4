package handlers

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"mrtrepair/services"
)

// uploadedFile pulls the "file" part out of a multipart upload (max 10MB).
func uploadedFile(e *core.RequestEvent) (multipart.File, error) {
	if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
		return nil, fmt.Errorf("parse multipart form: %w", err)
	}
	file, _, err := e.Request.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("read file part: %w", err)
	}
	return file, nil
}

// HandleAddressImport replaces the stored address master with the uploaded
// workbook. Every sheet is flattened into one searchable record set.
// Route: POST /api/repair/imports/addresses
func HandleAddressImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		file, err := uploadedFile(e)
		if err != nil {
			return ErrorNotice(e, http.StatusBadRequest, "請選擇要上傳的檔案")
		}
		defer file.Close()

		master, err := services.ParseAddressMaster(file)
		if err != nil {
			log.Printf("import_address: parse failed: %v", err)
			return ErrorNotice(e, http.StatusUnprocessableEntity, "匯入失敗，請確認檔案格式是否正確")
		}

		if err := services.StoreAddressMaster(app, master); err != nil {
			log.Printf("import_address: store failed: %v", err)
			return ErrorNotice(e, http.StatusInternalServerError, "匯入失敗，資料儲存時發生錯誤")
		}

		return SuccessPayload(e, fmt.Sprintf("門牌主檔匯入完成，共 %d 筆", len(master.Records)), map[string]any{
			"imported": len(master.Records),
			"sheets":   master.Sheets,
		})
	}
}

// HandlePriceImport replaces the stored unit-price master.
// Route: POST /api/repair/imports/prices
func HandlePriceImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		file, err := uploadedFile(e)
		if err != nil {
			return ErrorNotice(e, http.StatusBadRequest, "請選擇要上傳的檔案")
		}
		defer file.Close()

		items, err := services.ParsePriceMaster(file)
		if err != nil {
			log.Printf("import_price: parse failed: %v", err)
			return ErrorNotice(e, http.StatusUnprocessableEntity, "匯入失敗，請確認檔案格式是否正確")
		}

		if err := services.StorePriceMaster(app, items); err != nil {
			log.Printf("import_price: store failed: %v", err)
			return ErrorNotice(e, http.StatusInternalServerError, "匯入失敗，資料儲存時發生錯誤")
		}

		return SuccessPayload(e, fmt.Sprintf("價目表匯入完成，共 %d 項", len(items)), map[string]any{
			"imported": len(items),
		})
	}
}

// HandleHistoryImport converts a legacy case spreadsheet into repair cases
// and bulk-inserts them. Chunks already committed before a failure stay in
// the database; the response then reports how many made it in.
// Route: POST /api/repair/imports/history
func HandleHistoryImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		file, err := uploadedFile(e)
		if err != nil {
			return ErrorNotice(e, http.StatusBadRequest, "請選擇要上傳的檔案")
		}
		defer file.Close()

		cases, err := services.ParseHistoricalCases(file)
		if err != nil {
			log.Printf("import_history: parse failed: %v", err)
			return ErrorNotice(e, http.StatusUnprocessableEntity, "匯入失敗，請確認檔案格式是否正確")
		}

		imported, err := services.BulkImportCases(app, cases, authorID(e))
		if err != nil {
			log.Printf("import_history: bulk insert stopped after %d of %d: %v", imported, len(cases), err)
			return e.JSON(http.StatusInternalServerError, map[string]any{
				"notice":   Notice{Type: "error", Message: fmt.Sprintf("匯入中斷，已寫入 %d / %d 筆", imported, len(cases))},
				"imported": imported,
				"total":    len(cases),
			})
		}

		return SuccessPayload(e, fmt.Sprintf("歷史案件匯入完成，共 %d 筆", imported), map[string]any{
			"imported": imported,
			"total":    len(cases),
		})
	}
}
