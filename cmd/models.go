package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kayz/reelcheck/internal/config"
	"github.com/kayz/reelcheck/internal/llm"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List known providers and the active one",
	Run: func(cmd *cobra.Command, args []string) {
		active := "gemini"
		if cfg, err := config.Load(); err == nil && cfg.AI.Provider != "" {
			active = cfg.AI.Provider
		}

		fmt.Println("Known providers:")
		for _, t := range llm.ListTemplates() {
			marker := " "
			if t.Name == active {
				marker = "*"
			}
			fmt.Printf("  %s %-10s model=%s", marker, t.Name, t.DefaultModel)
			if len(t.EnvKeys) > 0 {
				fmt.Printf("  key env: %s", t.EnvKeys[0])
				for _, k := range t.EnvKeys[1:] {
					fmt.Printf(", %s", k)
				}
			}
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
