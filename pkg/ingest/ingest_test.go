package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInventoryCSV(t *testing.T) {
	csv := "asset_id,name,type,network_segment,stores_chd,firewall_enabled,encryption_in_transit\n" +
		"vm-001,checkout-api,vm,cde,No,TRUE,0\n" +
		"sql-002,card-db,sql,CDE,yes,1,false\n"

	assets, err := ParseInventory("inventory.csv", strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, assets, 2)

	assert.Equal(t, "vm-001", assets[0].AssetID)
	assert.Equal(t, "checkout-api", assets[0].Name)
	assert.False(t, assets[0].StoresCHD)
	assert.True(t, assets[0].FirewallEnabled)
	assert.False(t, assets[0].EncryptionInTransit)

	assert.True(t, assets[1].StoresCHD)
	assert.True(t, assets[1].FirewallEnabled)
	// Columns absent from the file default to false.
	assert.False(t, assets[1].LoggingEnabled)
}

func TestParseInventoryCSVMissingAssetID(t *testing.T) {
	csv := "name,type\nsomething,vm\n"
	_, err := ParseInventory("inventory.csv", strings.NewReader(csv))

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"asset_id"}, schemaErr.Missing)
}

func TestParseInventoryJSONArray(t *testing.T) {
	body := `[{"asset_id":"vm-001","name":"checkout-api","processes_chd":true},
	          {"asset_id":"lb-003","network_segment":"dmz"}]`

	assets, err := ParseInventory("inventory.json", strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.True(t, assets[0].ProcessesCHD)
	assert.Equal(t, "dmz", assets[1].NetworkSegment)
}

func TestParseInventoryJSONSingleObject(t *testing.T) {
	body := `{"asset_id":"vm-001","name":"checkout-api"}`

	assets, err := ParseInventory("inventory.json", strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "vm-001", assets[0].AssetID)
}

func TestParseInventoryUnsupportedFormat(t *testing.T) {
	_, err := ParseInventory("inventory.xlsx", strings.NewReader("x"))

	var formatErr *UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "inventory.xlsx", formatErr.Filename)
}

func TestParseInventoryInvalidJSON(t *testing.T) {
	_, err := ParseInventory("inventory.json", strings.NewReader("{broken"))

	var formatErr *UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestParseFindings(t *testing.T) {
	csv := "asset_id,sensitive_found\nvm-001,true\nvm-002,false\n"

	findings, err := ParseFindings("dlp.csv", strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, findings, 2)
	assert.True(t, findings[0].SensitiveFound)
	assert.False(t, findings[1].SensitiveFound)
}

func TestParseFindingsSchemaError(t *testing.T) {
	csv := "host,found\nvm-001,true\n"

	_, err := ParseFindings("dlp.csv", strings.NewReader(csv))
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.ElementsMatch(t, []string{"asset_id", "sensitive_found"}, schemaErr.Missing)
}

func TestParseFindingsBOMHeader(t *testing.T) {
	csv := "\ufeffasset_id,sensitive_found\nvm-001,yes\n"

	findings, err := ParseFindings("dlp.csv", strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.True(t, findings[0].SensitiveFound)
}

func TestDetectKind(t *testing.T) {
	assert.Equal(t, KindInventory, DetectKind("Inventory_Q3.csv"))
	assert.Equal(t, KindInventory, DetectKind("prod-inv.json"))
	assert.Equal(t, KindFindings, DetectKind("dlp-scan.csv"))
	assert.Equal(t, KindUnknown, DetectKind("notes.csv"))
}

func TestStoreLatestPerKind(t *testing.T) {
	s := NewStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	s.Add("inventory_old.csv", 100)
	s.Add("dlp_scan.csv", 50)
	s.Add("inventory_new.csv", 120)

	latest, ok := s.Latest(KindInventory)
	require.True(t, ok)
	assert.Equal(t, "inventory_new.csv", latest.Name)

	latestDLP, ok := s.Latest(KindFindings)
	require.True(t, ok)
	assert.Equal(t, "dlp_scan.csv", latestDLP.Name)

	_, ok = s.Latest(KindUnknown)
	assert.False(t, ok)

	assert.Len(t, s.All(), 3)
}
