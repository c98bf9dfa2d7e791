package wrappers

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/pciscope/pkg/engine"
)

// RemediationWrapper implements the Tool interface for presenting the
// remediation plan derived from the current assessment
type RemediationWrapper struct {
	Result *engine.Result
}

func (r *RemediationWrapper) Name() string {
	return "RemediationPlan"
}

func (r *RemediationWrapper) Description() string {
	return "Shows the remediation plan for in-scope control gaps, including scope-reduction suggestions per asset. Optionally filter by req_id (e.g., 'REQ-02')."
}

func (r *RemediationWrapper) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"req_id": map[string]interface{}{
				"type":        "string",
				"description": "Optional control ID to filter by (e.g., 'REQ-02'). If omitted, shows the full plan.",
			},
		},
	}
}

func (r *RemediationWrapper) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	if r.Result == nil {
		return "Error: no assessment loaded. Run the pipeline first.", nil
	}

	reqID, _ := args["req_id"].(string)

	var sb strings.Builder
	count := 0
	for _, rem := range r.Result.Remediations {
		if reqID != "" && rem.ReqID != reqID {
			continue
		}
		count++
		sb.WriteString(fmt.Sprintf("%s (%s) - %s %s\n", rem.AssetID, rem.Asset, rem.ReqID, rem.Requirement))
		if rem.RemediationText != "" {
			sb.WriteString(fmt.Sprintf("  Fix: %s\n", rem.RemediationText))
		}
		if rem.ScopeReduction != "" {
			sb.WriteString(fmt.Sprintf("  Scope reduction: %s\n", rem.ScopeReduction))
		}
	}

	if count == 0 {
		return "Remediation plan is empty: no in-scope gaps.", nil
	}
	return fmt.Sprintf("Remediation plan (%d item(s)):\n%s", count, sb.String()), nil
}
