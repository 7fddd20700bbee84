package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gamescope/nexctl/filter"
)

var (
	filterExpr  string
	preset      string
	rankingDate string
	rankingPage int
)

// rankingCmd represents the ranking command
var rankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "List MapleStory overall ranking entries",
	Long: `Fetch a page of the MapleStory overall ranking and optionally narrow it
with a filter expression, e.g.:

  nexctl ranking --filter "CharacterLevel >= 280"
  nexctl ranking --filter "contains(ClassName, 'bishop')"`,
	RunE: runRanking,
}

func init() {
	rootCmd.AddCommand(rankingCmd)

	rankingCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	rankingCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	rankingCmd.Flags().StringVar(&rankingDate, "date", "", "ranking date (YYYY-MM-DD, default yesterday KST)")
	rankingCmd.Flags().StringVarP(&worldName, "world", "w", "", "limit to one world")
	rankingCmd.Flags().IntVar(&rankingPage, "page", 1, "ranking page")
}

func runRanking(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	date := rankingDate
	if date == "" {
		// Rankings are published per-day in KST; yesterday is the latest
		// complete one.
		kst := time.FixedZone("KST", 9*60*60)
		date = time.Now().In(kst).AddDate(0, 0, -1).Format("2006-01-02")
	}

	logger.Info().Str("date", date).Int("page", rankingPage).Msg("Fetching overall ranking")

	entries, err := mapleClient.GetOverallRanking(ctx, date, worldName, rankingPage, nil)
	if err != nil {
		return err
	}

	expr, err := rankingFilterExpression()
	if err != nil {
		return err
	}
	if expr != "" {
		f, err := filter.Compile(expr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		entries, err = f.Apply(entries)
		if err != nil {
			return err
		}
	}

	if len(entries) == 0 {
		fmt.Println("No ranking entries matched.")
		return nil
	}

	fmt.Printf("\n%d entries:\n", len(entries))
	fmt.Println(strings.Repeat("-", 72))
	for _, entry := range entries {
		fmt.Printf("%5d. %-14s Lv.%-3d %-16s %s\n",
			entry.Ranking, entry.CharacterName, entry.CharacterLevel, entry.ClassName, entry.WorldName)
	}

	return nil
}

// rankingFilterExpression determines the filter expression to use
func rankingFilterExpression() (string, error) {
	// Priority: command line filter > preset > config default
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if expression, ok := cfg.Filter.Presets[preset]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filter.DefaultExpression, nil
}
