package engine

import "strings"

// Scope-reduction guidance derived from an asset's original flags, not
// from any particular gap.
const (
	tipTokenize  = "Tokenize PANs to remove CHD at rest."
	tipOutsource = "Outsource payment processing to a PCI-compliant PSP."
	tipSegment   = "Segment the CDE; restrict routes."
)

// Remediation is one actionable row of the remediation table: an
// in-scope asset, the control it misses, what to do about it, and how
// the asset might leave scope entirely.
type Remediation struct {
	AssetID         string `json:"asset_id"`
	Asset           string `json:"asset"`
	ReqID           string `json:"req_id"`
	Requirement     string `json:"requirement"`
	Gap             string `json:"gap"`
	RemediationText string `json:"remediation"`
	ScopeReduction  string `json:"scope_reduction"`
}

// PlanRemediation filters the evaluation matrix to in-scope gaps and
// attaches remediation text plus scope-reduction tips. It always
// returns a non-nil slice so callers can render an empty table without
// a presence check. Tips are computed once per asset and reused across
// that asset's gap rows, so an asset with three gaps does not repeat
// its tips three different ways.
func PlanRemediation(scoped []ScopedAsset, evals []Evaluation, checklist Checklist) []Remediation {
	tips := make(map[string]string, len(scoped))
	for _, a := range scoped {
		tips[a.AssetID] = strings.Join(scopeReductionTips(a), "; ")
	}

	out := make([]Remediation, 0)
	for _, e := range evals {
		if !e.InScope || e.Status != StatusGap {
			continue
		}
		out = append(out, Remediation{
			AssetID:         e.AssetID,
			Asset:           e.AssetName,
			ReqID:           e.ReqID,
			Requirement:     e.Requirement,
			Gap:             e.Status,
			RemediationText: checklist.RemediationFor(e.ReqID),
			ScopeReduction:  tips[e.AssetID],
		})
	}
	return out
}

// scopeReductionTips evaluates the three independent tips for one
// asset. Tips only apply to in-scope assets; the segmentation tip is
// suppressed when the asset already sits in the CDE.
func scopeReductionTips(a ScopedAsset) []string {
	if !a.InScope {
		return nil
	}
	var tips []string
	if a.StoresCHD {
		tips = append(tips, tipTokenize)
	}
	if a.ProcessesCHD || a.TransmitsCHD {
		tips = append(tips, tipOutsource)
	}
	if a.Segment() != "cde" {
		tips = append(tips, tipSegment)
	}
	return tips
}
