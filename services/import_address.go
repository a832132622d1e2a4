package services

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"
	"github.com/xuri/excelize/v2"
)

// configChunkSize is the number of records stored per configuration
// sub-document. Lists above a practical single-document size are split
// into chunks with a manifest recording the chunk count.
const configChunkSize = 500

// Configuration document keys.
const (
	ConfigKeyAddressMaster = "address_master"
	ConfigKeyPriceMaster   = "price_master"
)

var addressHeaderPattern = regexp.MustCompile(`門牌|地址`)

// AddressRecord is one flattened row of the address master, tagged with the
// sheet (= station) it came from. Column values are kept by their original
// header names.
type AddressRecord struct {
	UID           string            `json:"_uid"`
	SourceStation string            `json:"sourceStation"`
	Fields        map[string]string `json:"fields"`
}

// AddressMaster is the parse result of an address master workbook.
type AddressMaster struct {
	Records []AddressRecord `json:"records"`
	Sheets  []string        `json:"sheets"`
}

// ParseAddressMaster flattens every sheet of the workbook into one record
// list. Per sheet, the header row is the first row mentioning 門牌 or 地址
// (falling back to the first row); each data row below it becomes a record
// with a synthetic unique id combining sheet name, row index and a random
// component.
func ParseAddressMaster(r io.Reader) (*AddressMaster, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	master := &AddressMaster{Sheets: f.GetSheetList()}

	for _, sheet := range master.Sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}

		headerIdx := 0
		for i, row := range rows {
			found := false
			for _, cell := range row {
				if addressHeaderPattern.MatchString(cell) {
					found = true
					break
				}
			}
			if found {
				headerIdx = i
				break
			}
		}

		headers := rows[headerIdx]
		for ri, row := range rows[headerIdx+1:] {
			rec := AddressRecord{
				UID:           fmt.Sprintf("%s-%d-%s", sheet, ri, uuid.NewString()),
				SourceStation: sheet,
				Fields:        make(map[string]string, len(headers)),
			}
			for ci, h := range headers {
				h = strings.TrimSpace(h)
				if h == "" {
					continue
				}
				if ci < len(row) {
					rec.Fields[h] = row[ci]
				} else {
					rec.Fields[h] = ""
				}
			}
			master.Records = append(master.Records, rec)
		}
	}

	return master, nil
}

// Address returns the record's address column (建物門牌 or 門牌).
func (r AddressRecord) Address() string {
	if v := r.Fields["建物門牌"]; v != "" {
		return v
	}
	return r.Fields["門牌"]
}

// Tenant returns the record's tenant column (承租人 or 姓名).
func (r AddressRecord) Tenant() string {
	if v := r.Fields["承租人"]; v != "" {
		return v
	}
	return r.Fields["姓名"]
}

// SearchAddresses filters the master by station and a free-text needle over
// the address and tenant columns, returning at most limit records sorted by
// address.
func SearchAddresses(master *AddressMaster, station, needle string, limit int) []AddressRecord {
	needle = strings.TrimSpace(needle)
	if master == nil || needle == "" {
		return nil
	}

	var out []AddressRecord
	for _, rec := range master.Records {
		if station != "" && rec.SourceStation != station {
			continue
		}
		if strings.Contains(rec.Address(), needle) || strings.Contains(rec.Tenant(), needle) {
			out = append(out, rec)
		}
	}

	// Byte-order sort stands in for the locale collation the UI applied.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Address() < out[j].Address()
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// StoreAddressMaster persists the flattened master into configuration
// documents: one manifest recording chunk count and source sheets, plus one
// chunk document per configChunkSize records. Each chunk write is its own
// transaction; a failure partway leaves earlier chunks in place (surfaced,
// not rolled back).
func StoreAddressMaster(app core.App, master *AddressMaster) error {
	col, err := app.FindCollectionByNameOrId("config_docs")
	if err != nil {
		return fmt.Errorf("config_docs collection not found: %w", err)
	}

	chunks := chunkAddressRecords(master.Records, configChunkSize)

	if err := upsertConfigDoc(app, col, ConfigKeyAddressMaster, map[string]any{
		"chunkCount": len(chunks),
		"sheets":     master.Sheets,
	}); err != nil {
		return fmt.Errorf("store address master manifest: %w", err)
	}

	for i, chunk := range chunks {
		key := fmt.Sprintf("%s_chunk_%d", ConfigKeyAddressMaster, i)
		if err := upsertConfigDoc(app, col, key, map[string]any{"list": chunk}); err != nil {
			return fmt.Errorf("store address master chunk %d: %w", i, err)
		}
	}

	return nil
}

// LoadAddressMaster reads the manifest and all chunk documents back into a
// flattened master. A missing manifest yields an empty master, not an error.
func LoadAddressMaster(app core.App) (*AddressMaster, error) {
	manifest, err := findConfigDoc(app, ConfigKeyAddressMaster)
	if err != nil {
		return &AddressMaster{}, nil
	}

	var meta struct {
		ChunkCount int      `json:"chunkCount"`
		Sheets     []string `json:"sheets"`
	}
	if err := manifest.UnmarshalJSONField("data", &meta); err != nil {
		return nil, fmt.Errorf("decode address master manifest: %w", err)
	}

	master := &AddressMaster{Sheets: meta.Sheets}
	for i := 0; i < meta.ChunkCount; i++ {
		chunkDoc, err := findConfigDoc(app, fmt.Sprintf("%s_chunk_%d", ConfigKeyAddressMaster, i))
		if err != nil {
			return nil, fmt.Errorf("address master chunk %d missing: %w", i, err)
		}
		var chunk struct {
			List []AddressRecord `json:"list"`
		}
		if err := chunkDoc.UnmarshalJSONField("data", &chunk); err != nil {
			return nil, fmt.Errorf("decode address master chunk %d: %w", i, err)
		}
		master.Records = append(master.Records, chunk.List...)
	}

	return master, nil
}

func chunkAddressRecords(records []AddressRecord, size int) [][]AddressRecord {
	var chunks [][]AddressRecord
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		chunks = append(chunks, records[start:end])
	}
	return chunks
}

// upsertConfigDoc writes a configuration document by key, replacing any
// existing document with that key inside a transaction.
func upsertConfigDoc(app core.App, col *core.Collection, key string, data any) error {
	return app.RunInTransaction(func(txApp core.App) error {
		record, err := txApp.FindFirstRecordByData(col, "key", key)
		if err != nil {
			record = core.NewRecord(col)
			record.Set("key", key)
		}
		record.Set("data", data)
		return txApp.Save(record)
	})
}

func findConfigDoc(app core.App, key string) (*core.Record, error) {
	col, err := app.FindCollectionByNameOrId("config_docs")
	if err != nil {
		return nil, err
	}
	return app.FindFirstRecordByData(col, "key", key)
}
