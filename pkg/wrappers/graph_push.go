package wrappers

import (
	"context"
	"fmt"

	"github.com/user/pciscope/pkg/engine"
	"github.com/user/pciscope/pkg/graphdb"
)

// GraphPushWrapper implements the Tool interface for mirroring the
// assessment into the configured Neo4j instance
type GraphPushWrapper struct {
	Result *engine.Result
	Config graphdb.Config
}

func (g *GraphPushWrapper) Name() string {
	return "PushGraph"
}

func (g *GraphPushWrapper) Description() string {
	return "Mirrors assets, controls, and their HAS_CONTROL relations into the configured Neo4j graph. Safe to re-run; pushes are idempotent."
}

func (g *GraphPushWrapper) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (g *GraphPushWrapper) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	if g.Result == nil {
		return "Error: no assessment loaded. Run the pipeline first.", nil
	}
	if g.Config.URI == "" {
		return "Error: Neo4j is not configured. Set it with 'pciscope config set-neo4j'.", nil
	}

	if progress != nil {
		progress("Connecting to Neo4j...")
	}
	mirror, err := graphdb.Connect(ctx, g.Config)
	if err != nil {
		return fmt.Sprintf("Error connecting to Neo4j: %v", err), nil
	}
	defer mirror.Close(ctx)

	if progress != nil {
		progress("Pushing assessment to Neo4j...")
	}
	if err := mirror.Push(ctx, *g.Result); err != nil {
		return fmt.Sprintf("Error pushing to Neo4j: %v", err), nil
	}
	return fmt.Sprintf("Pushed %d assets, %d controls, and %d relations to Neo4j.",
		len(g.Result.Scoped), len(g.Result.Checklist.Controls), len(g.Result.Evaluations)), nil
}
