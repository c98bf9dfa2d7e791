package cmd

import (
	"github.com/spf13/cobra"

	"github.com/user/pciscope/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "pciscope",
	Short: "PCI-DSS scope and control-gap assessment pipeline",
	Long: `pciscope ingests an asset inventory, classifies which assets fall
into PCI scope, evaluates each in-scope asset against a control
checklist, derives remediation guidance, and emits an auditor-ready
Excel report. Results can optionally be mirrored into a Neo4j graph.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(DebugMode)
	},
}

var DebugMode bool

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&DebugMode, "debug", false, "Enable debug logging")
}
