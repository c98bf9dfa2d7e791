package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The worked checkout-api scenario: in scope via processing/transmitting
// CHD and CDE membership, one gap (encryption in transit), outsourcing
// tip present, segmentation tip suppressed because the asset already
// sits in the CDE.
func TestPlanRemediationCheckoutAPI(t *testing.T) {
	scoped := ClassifyScope([]Asset{{
		AssetID:             "vm-001",
		Name:                "checkout-api",
		StoresCHD:           false,
		ProcessesCHD:        true,
		TransmitsCHD:        true,
		NetworkSegment:      "cde",
		FirewallEnabled:     true,
		EncryptionAtRest:    true,
		EncryptionInTransit: false,
		LoggingEnabled:      true,
	}})
	require.True(t, scoped[0].InScope)
	assert.Contains(t, scoped[0].ScopeReason, "processes CHD")
	assert.Contains(t, scoped[0].ScopeReason, "transmits CHD")
	assert.Contains(t, scoped[0].ScopeReason, "in cde segment")

	checklist := DefaultChecklist()
	evals := Evaluate(scoped, checklist)

	statuses := map[string]string{}
	for _, e := range evals {
		statuses[e.ReqID] = e.Status
	}
	assert.Equal(t, StatusMet, statuses["REQ-01"])
	assert.Equal(t, StatusGap, statuses["REQ-02"])
	assert.Equal(t, StatusMet, statuses["REQ-03"])
	assert.Equal(t, StatusMet, statuses["REQ-04"])

	rems := PlanRemediation(scoped, evals, checklist)
	require.Len(t, rems, 1)
	assert.Equal(t, "vm-001", rems[0].AssetID)
	assert.Equal(t, "REQ-02", rems[0].ReqID)
	assert.Equal(t, StatusGap, rems[0].Gap)
	assert.Contains(t, rems[0].RemediationText, "TLS")
	assert.Equal(t, "Outsource payment processing to a PCI-compliant PSP.", rems[0].ScopeReduction)
}

func TestPlanRemediationSkipsOutOfScopeGaps(t *testing.T) {
	// All controls fail but the asset is out of scope, so the plan
	// stays empty (and non-nil).
	scoped := ClassifyScope([]Asset{{AssetID: "vm-004", Name: "marketing-site", NetworkSegment: "public"}})
	require.False(t, scoped[0].InScope)

	checklist := DefaultChecklist()
	rems := PlanRemediation(scoped, Evaluate(scoped, checklist), checklist)
	require.NotNil(t, rems)
	assert.Empty(t, rems)
}

func TestPlanRemediationTipsComputedOncePerAsset(t *testing.T) {
	// Asset with multiple gaps: every gap row carries the same
	// semicolon-joined tip string, computed once from the asset flags.
	scoped := ClassifyScope([]Asset{{
		AssetID:        "sql-002",
		Name:           "card-db",
		StoresCHD:      true,
		ProcessesCHD:   true,
		NetworkSegment: "dmz",
	}})
	checklist := DefaultChecklist()
	rems := PlanRemediation(scoped, Evaluate(scoped, checklist), checklist)
	require.Len(t, rems, 4)

	want := "Tokenize PANs to remove CHD at rest.; " +
		"Outsource payment processing to a PCI-compliant PSP.; " +
		"Segment the CDE; restrict routes."
	for _, r := range rems {
		assert.Equal(t, want, r.ScopeReduction)
	}
}

func TestPlanRemediationUnknownReqID(t *testing.T) {
	scoped := ClassifyScope([]Asset{{AssetID: "vm-001", StoresCHD: true}})
	checklist := Checklist{Controls: []Control{
		{ReqID: "REQ-77", Title: "Unknown control", EvidenceField: "logging_enabled", Expected: true},
	}}
	// The planner looks remediation up in a different checklist than the
	// one that produced the gap, simulating checklist drift.
	evals := Evaluate(scoped, checklist)
	rems := PlanRemediation(scoped, evals, DefaultChecklist())
	require.Len(t, rems, 1)
	assert.Equal(t, "", rems[0].RemediationText)
}

func TestPlanRemediationEmptyMatrix(t *testing.T) {
	rems := PlanRemediation(nil, nil, DefaultChecklist())
	require.NotNil(t, rems)
	assert.Empty(t, rems)
}
