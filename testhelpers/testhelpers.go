// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"mrtrepair/collections"
	"mrtrepair/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestCase persists a minimal repair case for the given station and
// returns the stored form of it.
func CreateTestCase(t *testing.T, app *pocketbase.PocketBase, station, tenant string) services.RepairCase {
	t.Helper()

	rc := services.NewRepairCase()
	rc.Station = station
	rc.Tenant = tenant
	rc.RepairType = services.RepairTypeOutContract

	saved, err := services.SaveCase(app, rc, "test")
	if err != nil {
		t.Fatalf("failed to save test case: %v", err)
	}
	return saved
}

// CreateTestUser creates an auth record in the users collection so that
// login and middleware tests have a real identity to work with.
func CreateTestUser(t *testing.T, app *pocketbase.PocketBase, email, password string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		t.Fatalf("failed to find users collection: %v", err)
	}

	record := core.NewRecord(col)
	record.SetEmail(email)
	record.SetPassword(password)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test user: %v", err)
	}

	return record
}

// SeedPriceMaster stores a small unit-price list for picker tests.
func SeedPriceMaster(t *testing.T, app *pocketbase.PocketBase, items []services.PriceItem) {
	t.Helper()

	if err := services.StorePriceMaster(app, items); err != nil {
		t.Fatalf("failed to seed price master: %v", err)
	}
}

// SeedAddressMaster stores an address master for search tests.
func SeedAddressMaster(t *testing.T, app *pocketbase.PocketBase, master *services.AddressMaster) {
	t.Helper()

	if err := services.StoreAddressMaster(app, master); err != nil {
		t.Fatalf("failed to seed address master: %v", err)
	}
}
