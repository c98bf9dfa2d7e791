package wrappers

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/pciscope/pkg/engine"
)

// ScopeSummaryWrapper implements the Tool interface for summarizing the
// scope classification of the current assessment
type ScopeSummaryWrapper struct {
	Result *engine.Result
}

func (s *ScopeSummaryWrapper) Name() string {
	return "ScopeSummary"
}

func (s *ScopeSummaryWrapper) Description() string {
	return "Summarizes the PCI scope classification: how many assets are in scope, which ones, and why each was pulled into scope."
}

func (s *ScopeSummaryWrapper) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (s *ScopeSummaryWrapper) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	if s.Result == nil {
		return "Error: no assessment loaded. Run the pipeline first.", nil
	}

	inCount := 0
	for _, a := range s.Result.Scoped {
		if a.InScope {
			inCount++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Scope Summary: %d of %d assets in scope.\n", inCount, len(s.Result.Scoped)))
	sb.WriteString(engine.ScopeNote + "\n\n")
	for _, a := range s.Result.Scoped {
		mark := "OUT"
		if a.InScope {
			mark = "IN "
		}
		sb.WriteString(fmt.Sprintf("[%s] %s (%s): %s\n", mark, a.AssetID, a.Name, a.ScopeReason))
	}
	return sb.String(), nil
}
