package engine

import "strings"

// Asset is the canonical inventory record every pipeline stage consumes.
// Boolean posture flags default to false when the source data omits them.
type Asset struct {
	AssetID             string `json:"asset_id"`
	Name                string `json:"name"`
	Type                string `json:"type"`
	Environment         string `json:"environment"`
	Region              string `json:"region"`
	CHDPresent          bool   `json:"chd_present"`
	StoresCHD           bool   `json:"stores_chd"`
	ProcessesCHD        bool   `json:"processes_chd"`
	TransmitsCHD        bool   `json:"transmits_chd"`
	NetworkSegment      string `json:"network_segment"`
	EncryptionAtRest    bool   `json:"encryption_at_rest"`
	EncryptionInTransit bool   `json:"encryption_in_transit"`
	FirewallEnabled     bool   `json:"firewall_enabled"`
	LoggingEnabled      bool   `json:"logging_enabled"`
	Owner               string `json:"owner"`
	SensitiveFound      bool   `json:"sensitive_found"`
}

// SensitiveFinding is one row of the secondary DLP findings table,
// joined onto assets by AssetID.
type SensitiveFinding struct {
	AssetID        string `json:"asset_id"`
	SensitiveFound bool   `json:"sensitive_found"`
}

// Segment returns the case-folded network segment.
func (a Asset) Segment() string {
	return strings.ToLower(a.NetworkSegment)
}

// EvidenceValue reads the boolean field a control inspects. Unknown
// field names never fail; they read as false so checklists sourced
// independently of the inventory degrade instead of erroring.
func (a Asset) EvidenceValue(field string) bool {
	switch field {
	case "chd_present":
		return a.CHDPresent
	case "stores_chd":
		return a.StoresCHD
	case "processes_chd":
		return a.ProcessesCHD
	case "transmits_chd":
		return a.TransmitsCHD
	case "encryption_at_rest":
		return a.EncryptionAtRest
	case "encryption_in_transit":
		return a.EncryptionInTransit
	case "firewall_enabled":
		return a.FirewallEnabled
	case "logging_enabled":
		return a.LoggingEnabled
	case "sensitive_found":
		return a.SensitiveFound
	default:
		return false
	}
}
