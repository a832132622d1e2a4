package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"mrtrepair/collections"
	"mrtrepair/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections, seed sample cases and normalize legacy vocabulary
	// on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateLegacyCaseVocabulary(app); err != nil {
			log.Printf("Warning: legacy vocabulary migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Login is the only route reachable without a token
		se.Router.POST("/api/repair/auth/login", handlers.HandleLogin(app))

		api := se.Router.Group("/api/repair")
		api.BindFunc(handlers.RequireUser())

		// ── Case CRUD ────────────────────────────────────────────
		api.GET("/cases", handlers.HandleCaseList(app))
		api.POST("/cases", handlers.HandleCaseSave(app))
		api.POST("/cases/preview", handlers.HandleCasePreview(app))
		api.POST("/cases/status", handlers.HandleStatusChange(app))
		api.GET("/cases/{id}", handlers.HandleCaseView(app))
		api.DELETE("/cases/{id}", handlers.HandleCaseDelete(app))

		// ── Dashboard helpers ────────────────────────────────────
		api.GET("/stations", handlers.HandleStationList(app))

		// ── Master data ──────────────────────────────────────────
		api.GET("/masters/addresses", handlers.HandleAddressSearch(app))
		api.GET("/masters/prices", handlers.HandlePriceList(app))

		// ── Spreadsheet imports ──────────────────────────────────
		api.POST("/imports/addresses", handlers.HandleAddressImport(app))
		api.POST("/imports/prices", handlers.HandlePriceImport(app))
		api.POST("/imports/history", handlers.HandleHistoryImport(app))

		// ── Exports ──────────────────────────────────────────────
		api.GET("/exports/cases", handlers.HandleCaseExport(app))
		api.GET("/cases/{id}/quote.pdf", handlers.HandleQuotePDF(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
