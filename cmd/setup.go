package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kayz/reelcheck/internal/config"
	"github.com/kayz/reelcheck/internal/llm"
)

var (
	setupProvider string
	setupAPIKey   string
	setupModel    string
	setupBaseURL  string
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Write the config file for a provider",
	Long: `Write .reelcheck.yaml next to the executable.

Known providers carry default base URLs and models, so usually only the
API key needs setting (or leave it to the environment variables the
provider reads).`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().StringVar(&setupProvider, "provider", "gemini",
		"Provider: gemini, openai, deepseek, claude")
	setupCmd.Flags().StringVar(&setupAPIKey, "api-key", "",
		"API key to store in the config file (environment variables take precedence)")
	setupCmd.Flags().StringVar(&setupModel, "model", "",
		"Model code (defaults to the provider template's model)")
	setupCmd.Flags().StringVar(&setupBaseURL, "base-url", "",
		"API base URL override")
}

func runSetup(cmd *cobra.Command, args []string) error {
	tmpl, ok := llm.GetTemplate(setupProvider)
	if !ok {
		return fmt.Errorf("unknown provider: %s", setupProvider)
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	cfg.AI.Provider = tmpl.Name
	cfg.AI.APIKey = setupAPIKey
	cfg.AI.Model = setupModel
	cfg.AI.BaseURL = setupBaseURL

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	model := setupModel
	if model == "" {
		model = tmpl.DefaultModel
	}
	fmt.Printf("Wrote %s (provider=%s model=%s)\n", config.ConfigPath(), tmpl.Name, model)
	return nil
}
