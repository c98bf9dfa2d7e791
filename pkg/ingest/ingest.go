// Package ingest turns uploaded inventory and DLP files into the
// canonical records the pipeline consumes.
package ingest

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/user/pciscope/pkg/engine"
)

// ParseInventory reads an inventory upload. CSV wants a header row;
// JSON may be an array of objects or a single object. Anything else is
// an *UnsupportedFormatError and fatal to the run.
func ParseInventory(filename string, r io.Reader) ([]engine.Asset, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseInventoryCSV(filename, r)
	case ".json":
		return parseInventoryJSON(filename, r)
	default:
		return nil, &UnsupportedFormatError{Filename: filename, Reason: "expected .csv or .json"}
	}
}

func parseInventoryJSON(filename string, r io.Reader) ([]engine.Asset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)

	var assets []engine.Asset
	if err := json.Unmarshal(data, &assets); err == nil {
		return assets, nil
	}
	// A single object is also accepted and treated as a one-row table.
	var one engine.Asset
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, &UnsupportedFormatError{Filename: filename, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return []engine.Asset{one}, nil
}

func parseInventoryCSV(filename string, r io.Reader) ([]engine.Asset, error) {
	header, records, err := readCSV(filename, r)
	if err != nil {
		return nil, err
	}

	col := indexColumns(header)
	if _, ok := col["asset_id"]; !ok {
		return nil, &SchemaError{Filename: filename, Missing: []string{"asset_id"}}
	}

	assets := make([]engine.Asset, 0, len(records))
	for _, rec := range records {
		get := func(name string) string {
			if i, ok := col[name]; ok && i < len(rec) {
				return strings.TrimSpace(rec[i])
			}
			return ""
		}
		assets = append(assets, engine.Asset{
			AssetID:             get("asset_id"),
			Name:                get("name"),
			Type:                get("type"),
			Environment:         get("environment"),
			Region:              get("region"),
			CHDPresent:          parseBool(get("chd_present")),
			StoresCHD:           parseBool(get("stores_chd")),
			ProcessesCHD:        parseBool(get("processes_chd")),
			TransmitsCHD:        parseBool(get("transmits_chd")),
			NetworkSegment:      get("network_segment"),
			EncryptionAtRest:    parseBool(get("encryption_at_rest")),
			EncryptionInTransit: parseBool(get("encryption_in_transit")),
			FirewallEnabled:     parseBool(get("firewall_enabled")),
			LoggingEnabled:      parseBool(get("logging_enabled")),
			Owner:               get("owner"),
			SensitiveFound:      parseBool(get("sensitive_found")),
		})
	}
	return assets, nil
}

// ParseFindings reads the DLP findings CSV. A missing asset_id or
// sensitive_found column is a *SchemaError; callers are expected to
// warn and proceed without the findings.
func ParseFindings(filename string, r io.Reader) ([]engine.SensitiveFinding, error) {
	header, records, err := readCSV(filename, r)
	if err != nil {
		return nil, err
	}

	col := indexColumns(header)
	var missing []string
	for _, required := range []string{"asset_id", "sensitive_found"} {
		if _, ok := col[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Filename: filename, Missing: missing}
	}

	findings := make([]engine.SensitiveFinding, 0, len(records))
	for _, rec := range records {
		id, found := "", ""
		if i := col["asset_id"]; i < len(rec) {
			id = strings.TrimSpace(rec[i])
		}
		if i := col["sensitive_found"]; i < len(rec) {
			found = strings.TrimSpace(rec[i])
		}
		findings = append(findings, engine.SensitiveFinding{
			AssetID:        id,
			SensitiveFound: parseBool(found),
		})
	}
	return findings, nil
}

func readCSV(filename string, r io.Reader) ([]string, [][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	all, err := cr.ReadAll()
	if err != nil {
		return nil, nil, &UnsupportedFormatError{Filename: filename, Reason: fmt.Sprintf("invalid CSV: %v", err)}
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}

func indexColumns(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, h := range header {
		// Strip a UTF-8 BOM some exports prepend to the first header cell.
		h = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
		col[strings.ToLower(h)] = i
	}
	return col
}

// parseBool accepts the spellings that show up in real inventory
// exports. Anything unrecognized, including empty cells, reads false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "t":
		return true
	default:
		return false
	}
}
