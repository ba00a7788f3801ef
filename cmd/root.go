package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kayz/reelcheck/internal/config"
	"github.com/kayz/reelcheck/internal/llm"
	"github.com/kayz/reelcheck/internal/logger"
	"github.com/kayz/reelcheck/internal/persist"
	"github.com/kayz/reelcheck/internal/review"
	"github.com/kayz/reelcheck/internal/schema"
)

var (
	logLevel  string
	movieFlag string
	modelFlag string
	noHistory bool
)

var rootCmd = &cobra.Command{
	Use:   "reelcheck",
	Short: "Structured movie reviews from hosted LLMs, validated and chained",
	Long: `reelcheck asks a hosted LLM for a structured JSON movie review,
validates it against an explicit schema, then chains a second prompt
asking whether the movie is suitable for children under 10.

Configure a provider with "reelcheck setup" or set an API key in the
environment (default provider gemini: GOOGLE_API_KEY or GEMINI_API_KEY).`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runChain,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info",
		"Log level: trace, debug, info, warn, error")
	rootCmd.Flags().StringVar(&movieFlag, "movie", "The Matrix",
		"Movie title to review")
	rootCmd.Flags().StringVar(&modelFlag, "model", "",
		"Model code override (default comes from config or provider template)")
	rootCmd.Flags().BoolVar(&noHistory, "no-history", false,
		"Skip recording this run in the history database")
}

func runChain(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if modelFlag != "" {
		cfg.AI.Model = modelFlag
	}

	provider, err := llm.NewProvider(cfg.AI)
	if err != nil {
		return err
	}

	var store *persist.Store
	if !noHistory && !cfg.History.Disabled {
		store, err = persist.NewStore(cfg.HistoryPath())
		if err != nil {
			l := logger.L()
			l.Warn().Err(err).Msg("history store unavailable, continuing without it")
			store = nil
		} else {
			defer store.Close()
		}
	}

	model := cfg.AI.Model
	if model == "" {
		if tmpl, ok := llm.GetTemplate(provider.Name()); ok {
			model = tmpl.DefaultModel
		}
	}

	chain := review.NewChain(provider, store, model)
	result, err := chain.Run(cmd.Context(), movieFlag)
	if err != nil {
		return err
	}

	printResult(result)
	return nil
}

func printResult(r *review.Result) {
	rev, suit := r.Review, r.Suitability

	fmt.Printf("Movie Review: %s\n", rev.Title)
	if rev.Genre != "" {
		fmt.Printf("  Genre:  %s\n", rev.Genre)
	}
	fmt.Printf("  Rating: %d/10\n", rev.Rating)
	fmt.Printf("  Summary: %s\n", rev.Summary)
	if len(rev.Pros) > 0 {
		fmt.Println("  Pros:")
		for _, p := range rev.Pros {
			fmt.Printf("    - %s\n", p)
		}
	}
	if len(rev.Cons) > 0 {
		fmt.Println("  Cons:")
		for _, c := range rev.Cons {
			fmt.Printf("    - %s\n", c)
		}
	}

	fmt.Println()
	fmt.Println("Kid Suitability:")
	verdict := "No"
	if suit.SuitableForUnder10 {
		verdict = "Yes"
	}
	fmt.Printf("  Suitable for under 10: %s\n", verdict)
	if suit.SuggestedMinAge != nil {
		fmt.Printf("  Suggested minimum age: %d\n", *suit.SuggestedMinAge)
	}
	fmt.Printf("  Reasoning: %s\n", suit.Reasoning)
	if len(suit.Warnings) > 0 {
		fmt.Println("  Warnings:")
		for _, w := range suit.Warnings {
			fmt.Printf("    - %s\n", w)
		}
	}
}

// printError reports one failure with as much field-level detail as the
// error carries. Validation failures list every violated field.
func printError(err error) {
	var valErr *schema.ValidationError
	var parseErr *schema.ParseError

	switch {
	case errors.As(err, &valErr):
		fmt.Fprintf(os.Stderr, "Error: %s response failed validation:\n", valErr.Schema)
		for _, f := range valErr.Fields {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", f.Field, f.Message)
		}
	case errors.As(err, &parseErr):
		fmt.Fprintf(os.Stderr, "Error: model response is not valid JSON: %v\n", parseErr.Err)
		fmt.Fprintf(os.Stderr, "  offending text: %s\n", parseErr.Text)
	case errors.Is(err, llm.ErrNoAPIKey):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "  run \"reelcheck setup\" or export the provider's API key")
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}
