package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/pciscope/pkg/adk"
	"github.com/user/pciscope/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration (endpoints, Neo4j, assistant providers)",
}

var setEndpointCmd = &cobra.Command{
	Use:   "set-endpoint",
	Short: "Set the remote inventory/controls endpoints",
	Run: func(cmd *cobra.Command, args []string) {
		inventory, _ := cmd.Flags().GetString("inventory")
		controls, _ := cmd.Flags().GetString("controls")

		if inventory == "" && controls == "" {
			fmt.Println("Error: at least one of --inventory and --controls is required")
			return
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		if inventory != "" {
			cfg.Endpoints.Inventory = inventory
		}
		if controls != "" {
			cfg.Endpoints.Controls = controls
		}
		if err := config.SaveConfig(cfg); err != nil {
			fmt.Printf("Error saving config: %v\n", err)
			return
		}
		fmt.Printf("Endpoints updated: inventory=%s controls=%s\n", cfg.Endpoints.Inventory, cfg.Endpoints.Controls)
	},
}

var setNeo4jCmd = &cobra.Command{
	Use:   "set-neo4j",
	Short: "Set the Neo4j connection used by 'graph push'",
	Run: func(cmd *cobra.Command, args []string) {
		uri, _ := cmd.Flags().GetString("uri")
		user, _ := cmd.Flags().GetString("user")
		password, _ := cmd.Flags().GetString("password")
		database, _ := cmd.Flags().GetString("database")

		if uri == "" {
			fmt.Println("Error: --uri is required")
			return
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		cfg.Neo4j.URI = uri
		if user != "" {
			cfg.Neo4j.User = user
		}
		if password != "" {
			cfg.Neo4j.Password = password
		}
		if database != "" {
			cfg.Neo4j.Database = database
		}
		if err := config.SaveConfig(cfg); err != nil {
			fmt.Printf("Error saving config: %v\n", err)
			return
		}
		fmt.Printf("Neo4j connection saved: %s (database %s)\n", cfg.Neo4j.URI, cfg.Neo4j.Database)
	},
}

var setKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Manually set API key for an assistant provider",
	Run: func(cmd *cobra.Command, args []string) {
		provider, _ := cmd.Flags().GetString("provider")
		key, _ := cmd.Flags().GetString("key")

		if provider == "" || key == "" {
			fmt.Println("Error: --provider and --key are required")
			return
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		cfg.SetAPIKey(strings.ToLower(provider), key)
		if err := config.SaveConfig(cfg); err != nil {
			fmt.Printf("Error saving config: %v\n", err)
			return
		}
		fmt.Printf("API key saved for provider: %s\n", provider)
	},
}

var setModelCmd = &cobra.Command{
	Use:   "set-model",
	Short: "Manually set the active assistant provider and model",
	Run: func(cmd *cobra.Command, args []string) {
		provider, _ := cmd.Flags().GetString("provider")
		model, _ := cmd.Flags().GetString("model")

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		if provider != "" {
			cfg.SelectedProvider = strings.ToLower(provider)
		}
		if model != "" {
			cfg.SelectedModel = model
		}

		if err := config.SaveConfig(cfg); err != nil {
			fmt.Printf("Error saving config: %v\n", err)
			return
		}
		fmt.Printf("Active configuration updated: Provider=%s, Model=%s\n", cfg.SelectedProvider, cfg.SelectedModel)
	},
}

var listModelsCmd = &cobra.Command{
	Use:   "list-models",
	Short: "List available models from the configured assistant provider",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Println("Error loading config:", err)
			return
		}

		provider := cfg.SelectedProvider
		if provider == "" {
			fmt.Println("No provider selected. Please run 'pciscope config setup'.")
			return
		}
		apiKey := cfg.GetAPIKey(provider)
		if apiKey == "" {
			fmt.Printf("No API key found for %s.\n", provider)
			return
		}

		fmt.Printf("Fetching models for %s...\n", provider)
		ctx := context.Background()
		p, err := adk.NewProvider(ctx, provider, apiKey, "")
		if err != nil {
			fmt.Println("Error initializing provider:", err)
			return
		}

		models, err := p.ListModels(ctx)
		if err != nil {
			fmt.Println("Error fetching models:", err)
			return
		}

		fmt.Printf("\nAvailable Models (%s):\n", provider)
		for _, m := range models {
			mark := " "
			if m == cfg.SelectedModel {
				mark = "*"
			}
			fmt.Printf("%s %s\n", mark, m)
		}
	},
}

func init() {
	setEndpointCmd.Flags().String("inventory", "", "Inventory endpoint URL (JSON array or object)")
	setEndpointCmd.Flags().String("controls", "", "Controls endpoint URL (JSON array of control definitions)")

	setNeo4jCmd.Flags().String("uri", "", "Neo4j URI (e.g., neo4j+s://host:7687)")
	setNeo4jCmd.Flags().String("user", "neo4j", "Neo4j user")
	setNeo4jCmd.Flags().String("password", "", "Neo4j password")
	setNeo4jCmd.Flags().String("database", "neo4j", "Neo4j database name")

	setKeyCmd.Flags().StringP("provider", "p", "", "Provider (gemini, openai, anthropic)")
	setKeyCmd.Flags().StringP("key", "k", "", "API Key")

	setModelCmd.Flags().StringP("provider", "p", "", "Provider (gemini, openai, anthropic)")
	setModelCmd.Flags().StringP("model", "m", "", "Model name")

	configCmd.AddCommand(setEndpointCmd)
	configCmd.AddCommand(setNeo4jCmd)
	configCmd.AddCommand(setKeyCmd)
	configCmd.AddCommand(setModelCmd)
	configCmd.AddCommand(listModelsCmd)
	rootCmd.AddCommand(configCmd)
}
