package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"mrtrepair/services"
	"mrtrepair/testhelpers"
)

func TestHandleAddressSearch(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedAddressMaster(t, app, &services.AddressMaster{
		Sheets: []string{"南京復興"},
		Records: []services.AddressRecord{
			{
				UID:           "南京復興-0-x",
				SourceStation: "南京復興",
				Fields:        map[string]string{"建物門牌": "台北市復興北路100號", "承租人": "王小明"},
			},
		},
	})
	handler := HandleAddressSearch(app)

	req, rec := getRequest("/api/repair/masters/addresses?q=" + url.QueryEscape("復興北路"))
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	results, ok := body["results"].([]any)
	if !ok || len(results) != 1 {
		t.Fatalf("results = %v, want one match", body["results"])
	}
}

func TestHandleAddressSearch_EmptyNeedle(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleAddressSearch(app)

	req, rec := getRequest("/api/repair/masters/addresses")
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	results, ok := body["results"].([]any)
	if !ok || len(results) != 0 {
		t.Errorf("results = %v, want empty list", body["results"])
	}
}

func TestHandlePriceList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedPriceMaster(t, app, []services.PriceItem{
		{ID: "P-001", Name: "更換馬達", Unit: "式", Price: 12600},
	})
	handler := HandlePriceList(app)

	req, rec := getRequest("/api/repair/masters/prices")
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	items, ok := body["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("items = %v, want one entry", body["items"])
	}
	item := items[0].(map[string]any)
	if item["name"] != "更換馬達" || item["price"] != 12600.0 {
		t.Errorf("item = %v", item)
	}
}

func TestHandlePriceList_EmptyMaster(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandlePriceList(app)

	req, rec := getRequest("/api/repair/masters/prices")
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := decodeBody(t, rec)
	items, ok := body["items"].([]any)
	if !ok || len(items) != 0 {
		t.Errorf("items = %v, want empty list", body["items"])
	}
}
