package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoAssets() []Asset {
	return []Asset{
		{
			AssetID: "vm-001", Name: "checkout-api", Type: "vm",
			CHDPresent: true, ProcessesCHD: true, TransmitsCHD: true,
			NetworkSegment: "cde", EncryptionAtRest: true,
			FirewallEnabled: true, LoggingEnabled: true,
		},
		{
			AssetID: "sql-002", Name: "card-db", Type: "sql",
			CHDPresent: true, StoresCHD: true, NetworkSegment: "cde",
			EncryptionInTransit: true, FirewallEnabled: true, LoggingEnabled: true,
		},
		{
			AssetID: "vm-004", Name: "marketing-site", Type: "vm",
			NetworkSegment: "public", EncryptionAtRest: true,
			EncryptionInTransit: true, FirewallEnabled: true, LoggingEnabled: true,
		},
	}
}

// Running the pipeline twice on identical inputs must yield identical
// tables: no hidden randomness, no map-order leakage into rows.
func TestRunIdempotent(t *testing.T) {
	findings := []SensitiveFinding{{AssetID: "vm-004", SensitiveFound: true}}
	checklist := DefaultChecklist()

	first := Run(demoAssets(), findings, checklist)
	second := Run(demoAssets(), findings, checklist)

	assert.Equal(t, first, second)
}

func TestRunStagesAgree(t *testing.T) {
	res := Run(demoAssets(), nil, DefaultChecklist())

	require.Len(t, res.Inventory, 3)
	require.Len(t, res.Scoped, 3)
	require.Len(t, res.Evaluations, 12)

	// The remediation table is exactly the in-scope gap subset of the
	// evaluation matrix.
	gapCount := 0
	for _, e := range res.Evaluations {
		if e.InScope && e.Status == StatusGap {
			gapCount++
		}
	}
	assert.Len(t, res.Remediations, gapCount)
}

func TestRunEmptyInventory(t *testing.T) {
	res := Run(nil, nil, DefaultChecklist())

	assert.Empty(t, res.Inventory)
	assert.Empty(t, res.Scoped)
	assert.Empty(t, res.Evaluations)
	require.NotNil(t, res.Remediations)
	assert.Empty(t, res.Remediations)
}
