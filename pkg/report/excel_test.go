package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/user/pciscope/pkg/engine"
)

func sampleResult() engine.Result {
	assets := []engine.Asset{
		{
			AssetID: "vm-001", Name: "checkout-api",
			ProcessesCHD: true, TransmitsCHD: true, NetworkSegment: "cde",
			FirewallEnabled: true, EncryptionAtRest: true, LoggingEnabled: true,
		},
		{
			AssetID: "vm-004", Name: "marketing-site", NetworkSegment: "public",
			FirewallEnabled: true, EncryptionAtRest: true,
			EncryptionInTransit: true, LoggingEnabled: true,
		},
	}
	return engine.Run(assets, nil, engine.DefaultChecklist())
}

func TestSheetsOrderAndNames(t *testing.T) {
	sheets := Sheets(sampleResult())
	require.Len(t, sheets, 4)
	assert.Equal(t, "Inventory", sheets[0].Name)
	assert.Equal(t, "Scope", sheets[1].Name)
	assert.Equal(t, "Controls", sheets[2].Name)
	assert.Equal(t, "Remediation", sheets[3].Name)
}

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, Sheets(sampleResult())))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Inventory", "Scope", "Controls", "Remediation"}, f.GetSheetList())

	// Header row lands in row 1 with no index column.
	id, err := f.GetCellValue("Inventory", "A1")
	require.NoError(t, err)
	assert.Equal(t, "asset_id", id)

	first, err := f.GetCellValue("Inventory", "A2")
	require.NoError(t, err)
	assert.Equal(t, "vm-001", first)

	reason, err := f.GetCellValue("Scope", "D2")
	require.NoError(t, err)
	assert.Contains(t, reason, "In scope because")

	status, err := f.GetCellValue("Controls", "J1")
	require.NoError(t, err)
	assert.Equal(t, "status", status)
}

// A run over an empty inventory still yields a complete workbook with
// all four header rows.
func TestWriteWorkbookEmptyTables(t *testing.T) {
	res := engine.Run(nil, nil, engine.DefaultChecklist())

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, Sheets(res)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Inventory", "Scope", "Controls", "Remediation"}, f.GetSheetList())

	for _, sheet := range []string{"Inventory", "Scope", "Controls", "Remediation"} {
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		require.Len(t, rows, 1, "sheet %s should contain exactly the header row", sheet)
		assert.NotEmpty(t, rows[0])
	}
}

func TestRemediationSheetColumns(t *testing.T) {
	res := sampleResult()
	require.NotEmpty(t, res.Remediations)

	s := RemediationSheet(res.Remediations)
	assert.Equal(t, []string{
		"asset_id", "asset", "req_id", "requirement", "gap",
		"remediation", "scope_reduction",
	}, s.Header)
	for _, row := range s.Rows {
		assert.Len(t, row, len(s.Header))
	}
}
