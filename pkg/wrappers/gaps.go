package wrappers

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/pciscope/pkg/engine"
)

// GapListWrapper implements the Tool interface for listing control gaps
// from the evaluation matrix
type GapListWrapper struct {
	Result *engine.Result
}

func (g *GapListWrapper) Name() string {
	return "ListGaps"
}

func (g *GapListWrapper) Description() string {
	return "Lists control gaps for in-scope assets. Optionally filter by asset_id to see a single asset's failed controls."
}

func (g *GapListWrapper) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"asset_id": map[string]interface{}{
				"type":        "string",
				"description": "Optional asset ID to filter by (e.g., 'vm-001'). If omitted, lists gaps for all in-scope assets.",
			},
		},
	}
}

func (g *GapListWrapper) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	if g.Result == nil {
		return "Error: no assessment loaded. Run the pipeline first.", nil
	}

	assetID, _ := args["asset_id"].(string)

	var sb strings.Builder
	count := 0
	for _, e := range g.Result.Evaluations {
		if !e.InScope || e.Status != engine.StatusGap {
			continue
		}
		if assetID != "" && e.AssetID != assetID {
			continue
		}
		count++
		sb.WriteString(fmt.Sprintf("[GAP] %s (%s) fails %s %s: %s=%v, expected %v\n",
			e.AssetID, e.AssetName, e.ReqID, e.Requirement, e.EvidenceField, e.Actual, e.Expected))
	}

	if count == 0 {
		if assetID != "" {
			return fmt.Sprintf("No gaps found for in-scope asset '%s'.", assetID), nil
		}
		return "No gaps found for in-scope assets.", nil
	}
	return fmt.Sprintf("%d gap(s) found:\n%s", count, sb.String()), nil
}
