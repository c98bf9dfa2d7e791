package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDropsEmptyAndDuplicateIDs(t *testing.T) {
	assets := []Asset{
		{AssetID: "vm-001", Name: "first"},
		{AssetID: "", Name: "no-key"},
		{AssetID: "vm-001", Name: "duplicate"},
		{AssetID: "vm-002", Name: "second"},
	}

	out := Normalize(assets, nil)
	require.Len(t, out, 2)
	assert.Equal(t, "vm-001", out[0].AssetID)
	assert.Equal(t, "first", out[0].Name)
	assert.Equal(t, "vm-002", out[1].AssetID)
}

func TestNormalizeMergesFindings(t *testing.T) {
	assets := []Asset{
		{AssetID: "vm-001"},
		{AssetID: "vm-002"},
		{AssetID: "vm-003", SensitiveFound: true},
	}
	findings := []SensitiveFinding{
		{AssetID: "vm-001", SensitiveFound: true},
		// vm-002 has no finding row: keeps its default false.
		// vm-003's stale false must not clear the existing true.
		{AssetID: "vm-003", SensitiveFound: false},
		{AssetID: "ghost", SensitiveFound: true},
	}

	out := Normalize(assets, findings)
	require.Len(t, out, 3)
	assert.True(t, out[0].SensitiveFound, "match overrides default false")
	assert.False(t, out[1].SensitiveFound, "no match keeps prior value")
	assert.True(t, out[2].SensitiveFound, "merge never downgrades true")
}

func TestNormalizeWithoutFindingsDefaultsFalse(t *testing.T) {
	out := Normalize([]Asset{{AssetID: "vm-001"}}, nil)
	require.Len(t, out, 1)
	assert.False(t, out[0].SensitiveFound)
}

func TestEvidenceValueUnknownFieldReadsFalse(t *testing.T) {
	a := Asset{AssetID: "vm-001", FirewallEnabled: true}
	assert.True(t, a.EvidenceValue("firewall_enabled"))
	assert.False(t, a.EvidenceValue("patch_level_current"))
	assert.False(t, a.EvidenceValue(""))
}
