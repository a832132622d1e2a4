package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"mrtrepair/services"
)

// MigrateLegacyCaseVocabulary rewrites case documents that still carry the
// legacy spreadsheet vocabulary: old satisfaction labels (尚可, 需改進) and
// checklist identifiers outside the fixed 8-item set. Safe to call on every
// startup -- records already in canonical form are left untouched.
func MigrateLegacyCaseVocabulary(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("repair_cases")
	if err != nil {
		return fmt.Errorf("migrate: could not find repair_cases collection: %w", err)
	}

	records, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("migrate: could not list cases: %w", err)
	}

	migrated := 0
	for _, record := range records {
		changed := false

		level := record.GetString("satisfaction_level")
		if canonical := services.CanonicalSatisfactionLabel(level); canonical != level {
			record.Set("satisfaction_level", canonical)
			changed = true
		}

		var ctrl services.JDMControl
		if err := record.UnmarshalJSONField("jdm_control", &ctrl); err == nil {
			normalized := services.NormalizeChecklist(ctrl.Checklist)
			if len(normalized) != len(ctrl.Checklist) {
				ctrl.Checklist = normalized
				record.Set("jdm_control", ctrl)
				changed = true
			}
		}

		if !changed {
			continue
		}
		if err := app.Save(record); err != nil {
			log.Printf("migrate: failed to rewrite case %s: %v\n", record.Id, err)
			continue
		}
		migrated++
	}

	if migrated > 0 {
		log.Printf("migrate: rewrote %d case(s) to the canonical vocabulary\n", migrated)
	}
	return nil
}
