package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Evaluation statuses.
const (
	StatusMet = "Met"
	StatusGap = "Gap"
)

// Control is a single checklist item: the boolean asset field it
// inspects, the value that satisfies it, and the canned remediation for
// a gap.
type Control struct {
	ReqID         string `yaml:"req_id" json:"req_id"`
	Title         string `yaml:"title" json:"title"`
	Text          string `yaml:"text" json:"text"`
	EvidenceField string `yaml:"evidence_field" json:"evidence_field"`
	Expected      bool   `yaml:"expected" json:"expected"`
	Remediation   string `yaml:"remediation" json:"remediation"`
}

// Checklist is the ordered control set one pipeline run evaluates
// against. Order is significant: it fixes the row order inside each
// asset's block of the evaluation matrix.
type Checklist struct {
	Standard string    `yaml:"standard" json:"standard"`
	Controls []Control `yaml:"controls" json:"controls"`
}

// DefaultChecklist returns the built-in four-requirement set used when
// no checklist file or remote source is configured.
func DefaultChecklist() Checklist {
	return Checklist{
		Standard: "PCI-DSS (simplified)",
		Controls: []Control{
			{
				ReqID:         "REQ-01",
				Title:         "Firewall controls",
				Text:          "Restrict inbound/outbound traffic with firewall/ACL at network boundaries.",
				EvidenceField: "firewall_enabled",
				Expected:      true,
				Remediation:   "Apply perimeter/CDE firewall rules; default deny; allowlist only.",
			},
			{
				ReqID:         "REQ-02",
				Title:         "Encryption in transit",
				Text:          "Encrypt CHD transmissions over open/public networks.",
				EvidenceField: "encryption_in_transit",
				Expected:      true,
				Remediation:   "Enable TLS 1.2+; enforce HTTPS; disable weak ciphers.",
			},
			{
				ReqID:         "REQ-03",
				Title:         "Encryption at rest",
				Text:          "Render CHD unreadable wherever it is stored.",
				EvidenceField: "encryption_at_rest",
				Expected:      true,
				Remediation:   "Enable disk/DB encryption (KMS); rotate keys; document key mgmt.",
			},
			{
				ReqID:         "REQ-04",
				Title:         "Logging & monitoring",
				Text:          "Enable logging to support security monitoring and forensics.",
				EvidenceField: "logging_enabled",
				Expected:      true,
				Remediation:   "Enable audit logging; centralize logs (SIEM); set retention & alerts.",
			},
		},
	}
}

// LoadChecklist reads a checklist from a YAML file.
func LoadChecklist(path string) (Checklist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Checklist{}, err
	}
	var c Checklist
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Checklist{}, fmt.Errorf("failed to parse %s: %v", path, err)
	}
	return c, nil
}

// Remediation text keyed by control ID. Unknown IDs map to "" so the
// planner tolerates checklist evolution.
func (c Checklist) RemediationFor(reqID string) string {
	for _, ctrl := range c.Controls {
		if ctrl.ReqID == reqID {
			return ctrl.Remediation
		}
	}
	return ""
}

// Evaluation is one row of the asset x control matrix.
type Evaluation struct {
	AssetID         string `json:"asset_id"`
	AssetName       string `json:"asset_name"`
	InScope         bool   `json:"in_scope"`
	ReqID           string `json:"req_id"`
	Requirement     string `json:"requirement"`
	RequirementText string `json:"requirement_text"`
	EvidenceField   string `json:"evidence_field"`
	Expected        bool   `json:"expected"`
	Actual          bool   `json:"actual"`
	Status          string `json:"status"`
}

// Evaluate cross-joins every asset against every control. No scope
// filtering happens here; out-of-scope assets are evaluated too and
// filtered by the remediation planner. Asset order is preserved from
// input and the checklist fixes the order within each asset's block.
func Evaluate(scoped []ScopedAsset, checklist Checklist) []Evaluation {
	rows := make([]Evaluation, 0, len(scoped)*len(checklist.Controls))
	for _, a := range scoped {
		for _, ctrl := range checklist.Controls {
			actual := a.EvidenceValue(ctrl.EvidenceField)
			status := StatusGap
			if actual == ctrl.Expected {
				status = StatusMet
			}
			rows = append(rows, Evaluation{
				AssetID:         a.AssetID,
				AssetName:       a.Name,
				InScope:         a.InScope,
				ReqID:           ctrl.ReqID,
				Requirement:     ctrl.Title,
				RequirementText: ctrl.Text,
				EvidenceField:   ctrl.EvidenceField,
				Expected:        ctrl.Expected,
				Actual:          actual,
				Status:          status,
			})
		}
	}
	return rows
}
