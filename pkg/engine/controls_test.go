package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateMatrixShape(t *testing.T) {
	scoped := ClassifyScope([]Asset{
		{AssetID: "vm-001", NetworkSegment: "cde"},
		{AssetID: "vm-002", NetworkSegment: "public"},
		{AssetID: "vm-003", StoresCHD: true},
	})
	checklist := DefaultChecklist()

	evals := Evaluate(scoped, checklist)
	require.Len(t, evals, len(scoped)*len(checklist.Controls))

	for _, e := range evals {
		if e.Actual == e.Expected {
			assert.Equal(t, StatusMet, e.Status)
		} else {
			assert.Equal(t, StatusGap, e.Status)
		}
	}
}

func TestEvaluateRowOrder(t *testing.T) {
	scoped := ClassifyScope([]Asset{
		{AssetID: "b-asset"},
		{AssetID: "a-asset"},
	})
	checklist := DefaultChecklist()

	evals := Evaluate(scoped, checklist)
	require.Len(t, evals, 8)

	// Input asset order is preserved; within an asset's block the rows
	// follow checklist order.
	assert.Equal(t, "b-asset", evals[0].AssetID)
	assert.Equal(t, "a-asset", evals[4].AssetID)
	for i, ctrl := range checklist.Controls {
		assert.Equal(t, ctrl.ReqID, evals[i].ReqID)
		assert.Equal(t, ctrl.ReqID, evals[4+i].ReqID)
	}
}

// A checklist sourced independently of the inventory may name fields
// the asset schema does not have; those rows degrade to actual=false.
func TestEvaluateUnknownEvidenceField(t *testing.T) {
	scoped := ClassifyScope([]Asset{{AssetID: "vm-001", StoresCHD: true}})
	checklist := Checklist{Controls: []Control{
		{ReqID: "REQ-99", Title: "Patching", EvidenceField: "patch_level_current", Expected: true},
	}}

	evals := Evaluate(scoped, checklist)
	require.Len(t, evals, 1)
	assert.False(t, evals[0].Actual)
	assert.Equal(t, StatusGap, evals[0].Status)
}

func TestDefaultChecklist(t *testing.T) {
	checklist := DefaultChecklist()
	require.Len(t, checklist.Controls, 4)

	ids := make([]string, 0, 4)
	for _, c := range checklist.Controls {
		ids = append(ids, c.ReqID)
		assert.True(t, c.Expected)
		assert.NotEmpty(t, c.EvidenceField)
		assert.NotEmpty(t, c.Remediation)
	}
	assert.Equal(t, []string{"REQ-01", "REQ-02", "REQ-03", "REQ-04"}, ids)
}

func TestRemediationForUnknownID(t *testing.T) {
	checklist := DefaultChecklist()
	assert.Equal(t, "", checklist.RemediationFor("REQ-42"))
	assert.NotEmpty(t, checklist.RemediationFor("REQ-02"))
}

func TestLoadChecklist(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "checklist.yaml")
	data := `standard: Custom
controls:
  - req_id: C-01
    title: MFA everywhere
    text: Require MFA for all administrative access.
    evidence_field: mfa_enabled
    expected: true
    remediation: Enroll all admin accounts in MFA.
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	checklist, err := LoadChecklist(path)
	require.NoError(t, err)
	assert.Equal(t, "Custom", checklist.Standard)
	require.Len(t, checklist.Controls, 1)
	assert.Equal(t, "C-01", checklist.Controls[0].ReqID)
	assert.Equal(t, "mfa_enabled", checklist.Controls[0].EvidenceField)
	assert.True(t, checklist.Controls[0].Expected)
}

func TestLoadChecklistBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("controls: {not: [valid"), 0600))

	_, err := LoadChecklist(path)
	assert.Error(t, err)
}
