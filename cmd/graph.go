package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/pciscope/pkg/config"
	"github.com/user/pciscope/pkg/graphdb"
	"github.com/user/pciscope/pkg/ingest"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Mirror assessment results into Neo4j",
}

var graphPushFlags inputFlags

var graphPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Run the pipeline and push assets, controls, and relations to Neo4j",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if cfg.Neo4j.URI == "" {
			return fmt.Errorf("Neo4j is not configured; run 'pciscope config set-neo4j' first")
		}

		ctx := context.Background()
		res, err := loadAssessment(ctx, cfg, graphPushFlags, ingest.NewStore())
		if err != nil {
			return err
		}

		mirror, err := graphdb.Connect(ctx, graphdb.Config{
			URI:      cfg.Neo4j.URI,
			User:     cfg.Neo4j.User,
			Password: cfg.Neo4j.Password,
			Database: cfg.Neo4j.Database,
		})
		if err != nil {
			return fmt.Errorf("neo4j connection failed: %w", err)
		}
		defer mirror.Close(ctx)

		if err := mirror.Push(ctx, res); err != nil {
			return err
		}

		fmt.Printf("Pushed %d assets, %d controls, %d relations to Neo4j.\n",
			len(res.Scoped), len(res.Checklist.Controls), len(res.Evaluations))
		return nil
	},
}

func init() {
	registerInputFlags(graphPushCmd, &graphPushFlags)
	graphCmd.AddCommand(graphPushCmd)
	rootCmd.AddCommand(graphCmd)
}
