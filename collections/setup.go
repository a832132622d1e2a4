// Package collections creates and seeds the PocketBase collections backing
// the repair-case tracker.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the repair_cases and config_docs
// collections exist. Case documents keep their nested line items and the
// JDM control record as JSON fields, mirroring the document shape the form
// works with; master reference data (address list, price list) lives in
// keyed configuration documents, chunked when large.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "repair_cases", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "station"})
		c.Fields.Add(&core.TextField{Name: "address"})
		c.Fields.Add(&core.TextField{Name: "tenant"})
		c.Fields.Add(&core.TextField{Name: "phone"})
		c.Fields.Add(&core.TextField{Name: "repair_type", Required: true})
		c.Fields.Add(&core.TextField{Name: "report_date"})
		c.Fields.Add(&core.BoolField{Name: "is_sub_lease"})
		c.Fields.Add(&core.JSONField{Name: "repair_items"})
		c.Fields.Add(&core.JSONField{Name: "cost_items"})
		c.Fields.Add(&core.JSONField{Name: "income_items"})
		c.Fields.Add(&core.TextField{Name: "quote_title"})
		c.Fields.Add(&core.TextField{Name: "site_description"})
		c.Fields.Add(&core.TextField{Name: "construction_desc1"})
		c.Fields.Add(&core.TextField{Name: "construction_desc2"})
		c.Fields.Add(&core.TextField{Name: "completion_date"})
		c.Fields.Add(&core.TextField{Name: "completion_desc1"})
		c.Fields.Add(&core.TextField{Name: "completion_desc2"})
		c.Fields.Add(&core.NumberField{Name: "total_amount"})
		c.Fields.Add(&core.TextField{Name: "satisfaction_level"})
		c.Fields.Add(&core.JSONField{Name: "satisfaction_score"})
		c.Fields.Add(&core.JSONField{Name: "jdm_control"})
		c.Fields.Add(&core.TextField{Name: "created_by"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "config_docs", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "key", Required: true})
		c.Fields.Add(&core.JSONField{Name: "data", MaxSize: 5 << 20})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
