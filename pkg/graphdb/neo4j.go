// Package graphdb mirrors assessment results into a Neo4j property
// graph. The graph is a derivative view: it can be rebuilt from the
// pipeline tables at any time, and re-running the mirror is idempotent.
package graphdb

import (
	"context"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/user/pciscope/pkg/engine"
)

// Config holds the connection settings for the graph store.
type Config struct {
	URI      string
	User     string
	Password string
	Database string
}

// Mirror owns a driver against one Neo4j instance.
type Mirror struct {
	driver neo4j.DriverWithContext
	config Config
}

// Connect opens a driver and verifies connectivity with a trivial
// query. Aura instances sometimes only accept the +ssc scheme, so a
// failed probe is retried once with the URI rewritten to neo4j+ssc.
func Connect(ctx context.Context, cfg Config) (*Mirror, error) {
	m, err := connect(ctx, cfg)
	if err == nil {
		return m, nil
	}

	retryURI := toSSCScheme(cfg.URI)
	if retryURI == cfg.URI {
		return nil, err
	}
	retryCfg := cfg
	retryCfg.URI = retryURI
	m, retryErr := connect(ctx, retryCfg)
	if retryErr != nil {
		return nil, fmt.Errorf("neo4j connect failed (%v); retry with %s also failed: %w", err, retryURI, retryErr)
	}
	return m, nil
}

func connect(ctx context.Context, cfg Config) (*Mirror, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.User, cfg.Password, ""))
	if err != nil {
		return nil, err
	}

	m := &Mirror{driver: driver, config: cfg}
	if err := m.run(ctx, "RETURN 1 AS ok", nil); err != nil {
		_ = driver.Close(ctx)
		return nil, err
	}
	return m, nil
}

// Close releases the underlying driver.
func (m *Mirror) Close(ctx context.Context) error {
	return m.driver.Close(ctx)
}

// Push upserts the assessment into the graph: Asset and Control nodes
// keyed by uniqueness constraints, plus a HAS_CONTROL edge per
// evaluation row carrying the verdict. MERGE semantics mean repeated
// pushes neither duplicate nodes nor disturb unrelated graph data.
func (m *Mirror) Push(ctx context.Context, res engine.Result) error {
	constraints := []string{
		"CREATE CONSTRAINT IF NOT EXISTS FOR (a:Asset) REQUIRE a.asset_id IS UNIQUE",
		"CREATE CONSTRAINT IF NOT EXISTS FOR (c:Control) REQUIRE c.req_id IS UNIQUE",
	}
	for _, q := range constraints {
		if err := m.run(ctx, q, nil); err != nil {
			return fmt.Errorf("neo4j constraint: %w", err)
		}
	}

	for _, a := range res.Scoped {
		err := m.run(ctx, `
			MERGE (a:Asset {asset_id:$id})
			SET a.name=$name, a.in_scope=$scope, a.segment=$seg, a.sensitive_found=$sens
		`, map[string]any{
			"id":    a.AssetID,
			"name":  a.Name,
			"scope": a.InScope,
			"seg":   a.NetworkSegment,
			"sens":  a.SensitiveFound,
		})
		if err != nil {
			return fmt.Errorf("neo4j asset %s: %w", a.AssetID, err)
		}
	}

	for _, c := range res.Checklist.Controls {
		err := m.run(ctx, `
			MERGE (c:Control {req_id:$id})
			SET c.title=$title, c.text=$text, c.evidence_field=$field, c.expected=$expected
		`, map[string]any{
			"id":       c.ReqID,
			"title":    c.Title,
			"text":     c.Text,
			"field":    c.EvidenceField,
			"expected": c.Expected,
		})
		if err != nil {
			return fmt.Errorf("neo4j control %s: %w", c.ReqID, err)
		}
	}

	for _, e := range res.Evaluations {
		err := m.run(ctx, `
			MATCH (a:Asset {asset_id:$aid})
			MATCH (c:Control {req_id:$rid})
			MERGE (a)-[r:HAS_CONTROL]->(c)
			SET r.status=$status, r.expected=$expected, r.actual=$actual
		`, map[string]any{
			"aid":      e.AssetID,
			"rid":      e.ReqID,
			"status":   e.Status,
			"expected": e.Expected,
			"actual":   e.Actual,
		})
		if err != nil {
			return fmt.Errorf("neo4j relation %s->%s: %w", e.AssetID, e.ReqID, err)
		}
	}
	return nil
}

func (m *Mirror) run(ctx context.Context, query string, params map[string]any) error {
	session := m.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: m.config.Database})
	defer session.Close(ctx)

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return err
	}
	_, err = result.Consume(ctx)
	return err
}

// toSSCScheme rewrites a Neo4j URI to the routed, self-signed-cert
// tolerant scheme. Unknown schemes pass through untouched.
func toSSCScheme(uri string) string {
	for _, prefix := range []string{"neo4j+s://", "neo4j://", "bolt+ssc://", "bolt://"} {
		if strings.HasPrefix(uri, prefix) {
			return "neo4j+ssc://" + strings.TrimPrefix(uri, prefix)
		}
	}
	return uri
}
