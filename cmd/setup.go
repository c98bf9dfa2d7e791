package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/pciscope/pkg/adk"
	"github.com/user/pciscope/pkg/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard for the assistant and data sources",
	Run: func(cmd *cobra.Command, args []string) {
		scanner := bufio.NewScanner(os.Stdin)
		fmt.Println("Welcome to the pciscope Setup Wizard")
		fmt.Println("------------------------------------")

		fmt.Println("Step 1: Choose your AI provider")
		for i, name := range adk.SupportedProviders {
			fmt.Printf("%d. %s\n", i+1, name)
		}
		choice := prompt(scanner, "Enter number or name > ")

		provider := strings.ToLower(choice)
		if idx, err := strconv.Atoi(choice); err == nil && idx >= 1 && idx <= len(adk.SupportedProviders) {
			provider = adk.SupportedProviders[idx-1]
		}
		if !supportedProvider(provider) {
			fmt.Println("Invalid choice. Aborting.")
			return
		}

		fmt.Printf("\nStep 2: Enter API key for %s\n", provider)
		apiKey := prompt(scanner, "> ")
		if apiKey == "" {
			fmt.Println("API key cannot be empty.")
			return
		}

		fmt.Println("\nStep 3: Validating key and fetching available models...")
		ctx := context.Background()

		tempProvider, err := adk.NewProvider(ctx, provider, apiKey, "")
		if err != nil {
			fmt.Printf("Error initializing provider: %v\n", err)
			return
		}

		var selectedModel string
		models, err := tempProvider.ListModels(ctx)
		if err != nil {
			fmt.Printf("Warning: could not fetch models from API: %v\n", err)
			fmt.Println("Enter a model name manually (e.g. 'gemini-1.5-flash', 'gpt-4'):")
			selectedModel = prompt(scanner, "> ")
		} else {
			fmt.Printf("Retrieved %d models.\n", len(models))
			for i, m := range models {
				fmt.Printf("%d. %s\n", i+1, m)
			}
			selStr := prompt(scanner, "Select model (number) > ")
			selIdx, err := strconv.Atoi(selStr)
			if err != nil || selIdx < 1 || selIdx > len(models) {
				fmt.Println("Invalid selection. Using first available model.")
				selectedModel = models[0]
			} else {
				selectedModel = models[selIdx-1]
			}
		}

		fmt.Println("\nStep 4: Data sources (press Enter to skip any of these)")
		inventoryURL := prompt(scanner, "Inventory endpoint URL > ")
		controlsURL := prompt(scanner, "Controls endpoint URL > ")
		neo4jURI := prompt(scanner, "Neo4j URI (e.g. neo4j+s://host:7687) > ")

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		cfg.SelectedProvider = provider
		cfg.SelectedModel = selectedModel
		cfg.SetAPIKey(provider, apiKey)
		if inventoryURL != "" {
			cfg.Endpoints.Inventory = inventoryURL
		}
		if controlsURL != "" {
			cfg.Endpoints.Controls = controlsURL
		}
		if neo4jURI != "" {
			cfg.Neo4j.URI = neo4jURI
			cfg.Neo4j.User = prompt(scanner, "Neo4j user > ")
			cfg.Neo4j.Password = prompt(scanner, "Neo4j password > ")
		}

		if err := config.SaveConfig(cfg); err != nil {
			fmt.Printf("Error saving config: %v\n", err)
			return
		}

		fmt.Println("------------------------------------")
		fmt.Println("Setup complete.")
		fmt.Printf("Provider: %s\n", provider)
		fmt.Printf("Model:    %s\n", selectedModel)
		fmt.Println("Run 'pciscope run -i inventory.csv' or 'pciscope interactive' to start.")
	},
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func supportedProvider(name string) bool {
	for _, p := range adk.SupportedProviders {
		if p == name {
			return true
		}
	}
	return false
}

func init() {
	configCmd.AddCommand(setupCmd)
}
