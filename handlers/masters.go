package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"mrtrepair/services"
)

const addressSearchLimit = 50

// HandleAddressSearch searches the imported address master. The station
// param narrows the search to one source sheet; q matches against the
// address and tenant columns.
// Route: GET /api/repair/masters/addresses
func HandleAddressSearch(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()

		master, err := services.LoadAddressMaster(app)
		if err != nil {
			log.Printf("address_search: load failed: %v", err)
			return ErrorNotice(e, http.StatusInternalServerError, "門牌主檔載入失敗")
		}
		results := services.SearchAddresses(master, q.Get("station"), q.Get("q"), addressSearchLimit)
		if results == nil {
			results = []services.AddressRecord{}
		}
		return e.JSON(http.StatusOK, map[string]any{"results": results, "sheets": master.Sheets})
	}
}

// HandlePriceList returns the imported unit-price master for the quote
// item picker.
// Route: GET /api/repair/masters/prices
func HandlePriceList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		items, err := services.LoadPriceMaster(app)
		if err != nil {
			log.Printf("price_list: load failed: %v", err)
			return ErrorNotice(e, http.StatusInternalServerError, "價目表載入失敗")
		}
		if items == nil {
			items = []services.PriceItem{}
		}
		return e.JSON(http.StatusOK, map[string]any{"items": items})
	}
}
