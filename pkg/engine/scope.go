package engine

import (
	"fmt"
	"strings"
)

// ScopeNote is the simplified scoping rule shown alongside the scope table.
const ScopeNote = "Scoping rule (simplified): Systems that store, process, or transmit CHD, " +
	"and systems that can impact the security of the CDE, are in scope."

// outOfScopeReason is the fixed sentence used when no trigger matches.
const outOfScopeReason = "Out of scope based on available data."

// ScopedAsset is an Asset plus the classifier's verdict.
type ScopedAsset struct {
	Asset
	InScope     bool   `json:"in_scope"`
	ScopeReason string `json:"scope_reason"`
}

// scopeSegments are the network segments that pull an asset into scope
// regardless of its CHD flags.
var scopeSegments = map[string]bool{"cde": true, "dmz": true}

// ClassifyScope applies the scoping rule to every asset. An asset is in
// scope iff any of the CHD flags, the DLP finding flag, or membership in
// a CDE/DMZ segment holds. The reason string tests the same triggers in
// a fixed order so identical trigger sets always render identically.
func ClassifyScope(assets []Asset) []ScopedAsset {
	out := make([]ScopedAsset, 0, len(assets))
	for _, a := range assets {
		out = append(out, ScopedAsset{
			Asset:       a,
			InScope:     inScope(a),
			ScopeReason: scopeReason(a),
		})
	}
	return out
}

func inScope(a Asset) bool {
	return a.StoresCHD || a.ProcessesCHD || a.TransmitsCHD || a.CHDPresent ||
		a.SensitiveFound || scopeSegments[a.Segment()]
}

func scopeReason(a Asset) string {
	var r []string
	if a.StoresCHD {
		r = append(r, "stores CHD")
	}
	if a.ProcessesCHD {
		r = append(r, "processes CHD")
	}
	if a.TransmitsCHD {
		r = append(r, "transmits CHD")
	}
	if a.CHDPresent {
		r = append(r, "CHD present")
	}
	if seg := a.Segment(); scopeSegments[seg] {
		r = append(r, fmt.Sprintf("in %s segment", seg))
	}
	if a.SensitiveFound {
		r = append(r, "DLP: sensitive data found")
	}
	if len(r) == 0 {
		return outOfScopeReason
	}
	return "In scope because " + strings.Join(r, ", ") + "."
}
