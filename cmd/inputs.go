package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/user/pciscope/pkg/config"
	"github.com/user/pciscope/pkg/engine"
	"github.com/user/pciscope/pkg/ingest"
	"github.com/user/pciscope/pkg/logging"
	"github.com/user/pciscope/pkg/remote"
)

// inputFlags are shared by every command that needs a full assessment.
type inputFlags struct {
	inventoryPath string
	findingsPath  string
	checklistPath string
	fromAPI       bool
}

func registerInputFlags(cmd *cobra.Command, f *inputFlags) {
	cmd.Flags().StringVarP(&f.inventoryPath, "inventory", "i", "", "Inventory file (CSV or JSON)")
	cmd.Flags().StringVarP(&f.findingsPath, "dlp", "d", "", "DLP findings CSV (asset_id, sensitive_found)")
	cmd.Flags().StringVarP(&f.checklistPath, "checklist", "c", "", "Control checklist YAML (default: built-in or remote)")
	cmd.Flags().BoolVar(&f.fromAPI, "from-api", false, "Fetch the inventory from the configured endpoint instead of a file")
}

// loadAssessment assembles inputs and runs the full pipeline.
//
// Failure policy follows the error design: an unparseable inventory or a
// failed inventory fetch is fatal; a malformed DLP file degrades to a
// warning; a failed controls fetch degrades to the built-in checklist.
func loadAssessment(ctx context.Context, cfg *config.Config, flags inputFlags, store *ingest.Store) (engine.Result, error) {
	assets, err := loadInventory(ctx, cfg, flags, store)
	if err != nil {
		return engine.Result{}, err
	}

	findings := loadFindings(flags, store)
	checklist := loadChecklist(ctx, cfg, flags)

	return engine.Run(assets, findings, checklist), nil
}

func loadInventory(ctx context.Context, cfg *config.Config, flags inputFlags, store *ingest.Store) ([]engine.Asset, error) {
	if flags.inventoryPath != "" {
		f, err := os.Open(flags.inventoryPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		assets, err := ingest.ParseInventory(filepath.Base(flags.inventoryPath), f)
		if err != nil {
			return nil, err
		}
		recordUpload(store, flags.inventoryPath)
		logging.Logger.Infow("loaded inventory", "file", flags.inventoryPath, "assets", len(assets))
		return assets, nil
	}

	if flags.fromAPI || cfg.Endpoints.Inventory != "" {
		if cfg.Endpoints.Inventory == "" {
			return nil, errors.New("no inventory endpoint configured; set one with 'pciscope config set-endpoint'")
		}
		client := remote.NewClient(cfg.Endpoints.Inventory, cfg.Endpoints.Controls)
		assets, err := client.FetchInventory(ctx)
		if err != nil {
			return nil, err
		}
		logging.Logger.Infow("fetched inventory", "endpoint", cfg.Endpoints.Inventory, "assets", len(assets))
		return assets, nil
	}

	return nil, errors.New("no inventory source: pass --inventory or configure an endpoint")
}

func loadFindings(flags inputFlags, store *ingest.Store) []engine.SensitiveFinding {
	if flags.findingsPath == "" {
		return nil
	}

	f, err := os.Open(flags.findingsPath)
	if err != nil {
		logging.Logger.Warnw("cannot open DLP findings, ignoring", "file", flags.findingsPath, "error", err)
		return nil
	}
	defer f.Close()

	findings, err := ingest.ParseFindings(filepath.Base(flags.findingsPath), f)
	if err != nil {
		var schemaErr *ingest.SchemaError
		if errors.As(err, &schemaErr) {
			logging.Logger.Warnw("DLP file must have columns asset_id, sensitive_found; ignoring DLP upload",
				"file", flags.findingsPath, "missing", schemaErr.Missing)
			return nil
		}
		logging.Logger.Warnw("cannot parse DLP findings, ignoring", "file", flags.findingsPath, "error", err)
		return nil
	}

	recordUpload(store, flags.findingsPath)
	return findings
}

func loadChecklist(ctx context.Context, cfg *config.Config, flags inputFlags) engine.Checklist {
	if flags.checklistPath != "" {
		checklist, err := engine.LoadChecklist(flags.checklistPath)
		if err == nil {
			return checklist
		}
		logging.Logger.Warnw("cannot load checklist file, falling back", "file", flags.checklistPath, "error", err)
	}

	if cfg.Endpoints.Controls != "" {
		client := remote.NewClient(cfg.Endpoints.Inventory, cfg.Endpoints.Controls)
		checklist, err := client.FetchChecklist(ctx)
		if err == nil {
			return checklist
		}
		logging.Logger.Warnw("cannot fetch remote checklist, using built-in controls",
			"endpoint", cfg.Endpoints.Controls, "error", err)
	}

	return engine.DefaultChecklist()
}

func recordUpload(store *ingest.Store, path string) {
	if store == nil {
		return
	}
	size := int64(0)
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}
	store.Add(filepath.Base(path), size)
}

func summarize(res engine.Result) string {
	inScope := 0
	for _, a := range res.Scoped {
		if a.InScope {
			inScope++
		}
	}
	gaps := 0
	for _, e := range res.Evaluations {
		if e.InScope && e.Status == engine.StatusGap {
			gaps++
		}
	}
	return fmt.Sprintf("%d assets (%d in scope), %d evaluations, %d in-scope gaps, %d remediation items",
		len(res.Inventory), inScope, len(res.Evaluations), gaps, len(res.Remediations))
}
