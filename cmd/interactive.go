package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/pciscope/pkg/adk"
	"github.com/user/pciscope/pkg/config"
	"github.com/user/pciscope/pkg/graphdb"
	"github.com/user/pciscope/pkg/ingest"
	"github.com/user/pciscope/pkg/wrappers"
)

var interactiveFlags inputFlags

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start the assistant session over an assessment",
	Run: func(cmd *cobra.Command, args []string) {
		adk.DebugEnabled = DebugMode

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		providerName := cfg.SelectedProvider
		if providerName == "" {
			providerName = "gemini" // Default
		}

		apiKey := cfg.GetAPIKey(providerName)
		if apiKey == "" {
			// Fallback to env var for Gemini if not in config
			if providerName == "gemini" {
				apiKey = os.Getenv("GOOGLE_API_KEY")
			}
		}

		if apiKey == "" {
			fmt.Println("Error: API Key not found.")
			fmt.Println("Please run 'pciscope config setup' to configure your keys.")
			return
		}

		ctx := context.Background()

		// Run the pipeline up front so every tool sees the same tables.
		store := ingest.NewStore()
		res, err := loadAssessment(ctx, cfg, interactiveFlags, store)
		if err != nil {
			fmt.Printf("Error loading assessment: %v\n", err)
			return
		}
		fmt.Printf("Assessment loaded: %s\n", summarize(res))

		modelName := cfg.SelectedModel
		fmt.Printf("Connecting to %s (Model: %s)...\n", providerName, modelName)

		provider, err := adk.NewProvider(ctx, providerName, apiKey, modelName)
		if err != nil {
			fmt.Printf("Error creating AI provider: %v\n", err)
			return
		}
		if closer, ok := provider.(interface{ Close() }); ok {
			defer closer.Close()
		}

		agent := adk.NewAgent(provider)

		// Register Tools
		agent.RegisterTool(&wrappers.ScopeSummaryWrapper{Result: &res})
		agent.RegisterTool(&wrappers.GapListWrapper{Result: &res})
		agent.RegisterTool(&wrappers.RemediationWrapper{Result: &res})
		agent.RegisterTool(&wrappers.ExportReportWrapper{Result: &res})
		agent.RegisterTool(&wrappers.GraphPushWrapper{
			Result: &res,
			Config: graphdb.Config{
				URI:      cfg.Neo4j.URI,
				User:     cfg.Neo4j.User,
				Password: cfg.Neo4j.Password,
				Database: cfg.Neo4j.Database,
			},
		})

		// Set System Prompt
		agent.SetSystemPrompt(adk.GetSystemPrompt())

		// Start chat loop
		scanner := bufio.NewScanner(os.Stdin)
		fmt.Println("\n---------------------------------------------------------")
		fmt.Println("pciscope Assistant Initialized. Ready for questions.")
		fmt.Println("Example: 'Which assets are in scope and why?'")
		fmt.Println("Example: 'Show the remediation plan for REQ-02'")
		fmt.Println("Type 'quit' or 'exit' to stop.")
		fmt.Println("---------------------------------------------------------")

		for {
			fmt.Print("\n> ")
			if !scanner.Scan() {
				break
			}
			input := scanner.Text()
			if input == "quit" || input == "exit" {
				break
			}
			if input == "" {
				continue
			}

			fmt.Print("Assistant thinking... ")
			resp, err := agent.Chat(ctx, input, func(msg string) {
				// Clear current line and print progress
				fmt.Printf("\r\033[K[Progress]: %s\nAssistant thinking... ", msg)
			})
			// Clear thinking line
			fmt.Print("\r\033[K")

			if err != nil {
				fmt.Printf("Error: %v\n", err)
			} else {
				fmt.Printf("\n[Assistant]: %s\n", resp)
			}
		}
	},
}

func init() {
	registerInputFlags(interactiveCmd, &interactiveFlags)
	rootCmd.AddCommand(interactiveCmd)
}
