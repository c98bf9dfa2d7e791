package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/pciscope/pkg/config"
	"github.com/user/pciscope/pkg/engine"
	"github.com/user/pciscope/pkg/ingest"
	"github.com/user/pciscope/pkg/report"
)

var runFlags inputFlags
var runOutputPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the assessment pipeline and export the report",
	Long: `Runs the full pipeline (normalize, classify scope, evaluate
controls, plan remediation) over the given inventory and writes the
four-sheet Excel report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		ctx := context.Background()
		store := ingest.NewStore()
		res, err := loadAssessment(ctx, cfg, runFlags, store)
		if err != nil {
			return err
		}

		fmt.Println(engine.ScopeNote)
		fmt.Println(summarize(res))

		for _, r := range res.Remediations {
			fmt.Printf("[GAP] %s (%s) %s %s\n", r.AssetID, r.Asset, r.ReqID, r.Requirement)
			if r.RemediationText != "" {
				fmt.Printf("      Fix: %s\n", r.RemediationText)
			}
			if r.ScopeReduction != "" {
				fmt.Printf("      Scope reduction: %s\n", r.ScopeReduction)
			}
		}
		if len(res.Remediations) == 0 {
			fmt.Println("No gaps found for in-scope assets.")
		}

		f, err := os.Create(runOutputPath)
		if err != nil {
			return fmt.Errorf("error creating report file: %w", err)
		}
		defer f.Close()

		if err := report.WriteWorkbook(f, report.Sheets(res)); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", runOutputPath)
		return nil
	},
}

func init() {
	registerInputFlags(runCmd, &runFlags)
	runCmd.Flags().StringVarP(&runOutputPath, "out", "o", "pci_scope_report.xlsx", "Output path for the Excel report")
	rootCmd.AddCommand(runCmd)
}
