package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/bough"
	"github.com/aretw0/bough/internal/logging"
	"github.com/aretw0/bough/internal/presentation/tui"
	"github.com/aretw0/bough/pkg/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Run the sample vacation recommender",
	Long:  `Walks the built-in vacation decision tree against preferences supplied via flags or a YAML file, and prints the recommendation with its explanation trace.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		levelFlag, _ := cmd.Flags().GetString("log-level")
		level, err := logging.ParseLevel(levelFlag)
		if err != nil {
			return err
		}
		logger := logging.New(level)

		prefs, err := resolvePreferences(cmd)
		if err != nil {
			return err
		}

		tree := recommend.Build(bough.WithLogger(logger))
		res, err := tree.Traverse(context.Background(), prefs)
		if err != nil {
			return fmt.Errorf("traversal failed: %w", err)
		}

		explain, _ := cmd.Flags().GetBool("explain")
		if !explain {
			if res.Value == "" {
				fmt.Println("No recommendation for these preferences.")
				return nil
			}
			fmt.Println(res.Value)
			return nil
		}

		if term.IsTerminal(int(os.Stdout.Fd())) {
			tui.PrintBanner(bough.Version)
			fmt.Print(tui.RenderTrace(res.Value, res.Effects))
			return nil
		}

		// Piped output: plain text, one step per line.
		if res.Value != "" {
			fmt.Println(res.Value)
		}
		for _, effect := range res.Effects {
			fmt.Println("- " + effect)
		}
		return nil
	},
}

// resolvePreferences loads the YAML file if given, then lets explicit flags
// override individual fields.
func resolvePreferences(cmd *cobra.Command) (*recommend.Preferences, error) {
	prefs := &recommend.Preferences{}

	if path, _ := cmd.Flags().GetString("prefs"); path != "" {
		loaded, err := recommend.LoadPreferences(path)
		if err != nil {
			return nil, err
		}
		prefs = loaded
	}

	if cmd.Flags().Changed("season") {
		season, _ := cmd.Flags().GetString("season")
		prefs.Season = strings.ToLower(season)
	}
	if cmd.Flags().Changed("budget") {
		prefs.Budget, _ = cmd.Flags().GetFloat64("budget")
	}
	if cmd.Flags().Changed("party") {
		prefs.Party, _ = cmd.Flags().GetInt("party")
	}
	if cmd.Flags().Changed("outdoor") {
		prefs.Outdoor, _ = cmd.Flags().GetBool("outdoor")
	}

	return prefs, nil
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().String("prefs", "", "Path to a YAML preferences file")
	recommendCmd.Flags().String("season", "", "Travel season (spring, summer, autumn, winter)")
	recommendCmd.Flags().Float64("budget", 0, "Budget for the trip")
	recommendCmd.Flags().Int("party", 1, "Number of travelers")
	recommendCmd.Flags().Bool("outdoor", false, "Prefer outdoor activities")
	recommendCmd.Flags().BoolP("explain", "e", false, "Show the decision trace alongside the recommendation")
}
