package report

import (
	"strconv"

	"github.com/user/pciscope/pkg/engine"
)

// Sheet is one named, independently labeled table of the report: a
// header row plus zero or more data rows. Headers are always present so
// an empty stage still renders a header-complete sheet.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

// InventorySheet renders the normalized asset table.
func InventorySheet(assets []engine.Asset) Sheet {
	s := Sheet{
		Name: "Inventory",
		Header: []string{
			"asset_id", "name", "type", "environment", "region",
			"chd_present", "stores_chd", "processes_chd", "transmits_chd",
			"network_segment", "encryption_at_rest", "encryption_in_transit",
			"firewall_enabled", "logging_enabled", "owner", "sensitive_found",
		},
	}
	for _, a := range assets {
		s.Rows = append(s.Rows, []string{
			a.AssetID, a.Name, a.Type, a.Environment, a.Region,
			formatBool(a.CHDPresent), formatBool(a.StoresCHD),
			formatBool(a.ProcessesCHD), formatBool(a.TransmitsCHD),
			a.NetworkSegment, formatBool(a.EncryptionAtRest),
			formatBool(a.EncryptionInTransit), formatBool(a.FirewallEnabled),
			formatBool(a.LoggingEnabled), a.Owner, formatBool(a.SensitiveFound),
		})
	}
	return s
}

// ScopeSheet renders the classifier's verdict per asset.
func ScopeSheet(scoped []engine.ScopedAsset) Sheet {
	s := Sheet{
		Name: "Scope",
		Header: []string{
			"asset_id", "name", "in_scope", "scope_reason", "network_segment",
			"stores_chd", "processes_chd", "transmits_chd", "chd_present",
			"sensitive_found",
		},
	}
	for _, a := range scoped {
		s.Rows = append(s.Rows, []string{
			a.AssetID, a.Name, formatBool(a.InScope), a.ScopeReason,
			a.NetworkSegment, formatBool(a.StoresCHD), formatBool(a.ProcessesCHD),
			formatBool(a.TransmitsCHD), formatBool(a.CHDPresent),
			formatBool(a.SensitiveFound),
		})
	}
	return s
}

// ControlsSheet renders the full asset x control evaluation matrix.
func ControlsSheet(evals []engine.Evaluation) Sheet {
	s := Sheet{
		Name: "Controls",
		Header: []string{
			"asset_id", "asset_name", "in_scope", "req_id", "requirement",
			"requirement_text", "evidence_field", "expected", "actual", "status",
		},
	}
	for _, e := range evals {
		s.Rows = append(s.Rows, []string{
			e.AssetID, e.AssetName, formatBool(e.InScope), e.ReqID,
			e.Requirement, e.RequirementText, e.EvidenceField,
			formatBool(e.Expected), formatBool(e.Actual), e.Status,
		})
	}
	return s
}

// RemediationSheet renders the in-scope gap table.
func RemediationSheet(rems []engine.Remediation) Sheet {
	s := Sheet{
		Name: "Remediation",
		Header: []string{
			"asset_id", "asset", "req_id", "requirement", "gap",
			"remediation", "scope_reduction",
		},
	}
	for _, r := range rems {
		s.Rows = append(s.Rows, []string{
			r.AssetID, r.Asset, r.ReqID, r.Requirement, r.Gap,
			r.RemediationText, r.ScopeReduction,
		})
	}
	return s
}

// Sheets assembles the four report sheets in their fixed order.
func Sheets(res engine.Result) []Sheet {
	return []Sheet{
		InventorySheet(res.Inventory),
		ScopeSheet(res.Scoped),
		ControlsSheet(res.Evaluations),
		RemediationSheet(res.Remediations),
	}
}
