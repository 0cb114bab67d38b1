package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// rankCmd represents the rank command
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank all configured divisions",
	Long: `Runs the full ranking pipeline for every configured division and
writes the resulting tables to the database.

The as-of date fixes the time window and activity checks, so the same date
over the same data always produces the same tables.

Example:
  go run ./cmd/ladder rank
  go run ./cmd/ladder rank --as-of 2024-06-01
  go run ./cmd/ladder rank --division CA:M:U14`,
	RunE: runRank,
}

var (
	rankAsOf     string
	rankDivision string
)

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringVar(&rankAsOf, "as-of", "", "as-of date YYYY-MM-DD (default today UTC)")
	rankCmd.Flags().StringVar(&rankDivision, "division", "", "rank a single division STATE:GENDER:AGE")
}

func runRank(cmd *cobra.Command, args []string) error {
	d, err := setup()
	if err != nil {
		return err
	}
	defer d.db.Close()

	asOf := time.Now().UTC()
	if rankAsOf != "" {
		asOf, err = time.Parse("2006-01-02", rankAsOf)
		if err != nil {
			return fmt.Errorf("parse --as-of: %w", err)
		}
	}

	divisions := d.divisions
	if rankDivision != "" {
		parsed, err := parseDivisions([]string{rankDivision})
		if err != nil {
			return err
		}
		divisions = parsed
	}
	if len(divisions) == 0 {
		return fmt.Errorf("no divisions configured; set RANKING_DIVISIONS or pass --division")
	}

	report := d.runner.RunAll(context.Background(), divisions, asOf, d.cfg.Ranking.Concurrency)

	fmt.Printf("=== Ranking run %s ===\n", asOf.Format("2006-01-02"))
	for _, dr := range report.Divisions {
		if dr.Error != "" {
			fmt.Printf("  %-20s FAILED: %s\n", dr.Division.Key(), dr.Error)
			continue
		}
		fmt.Printf("  %-20s teams=%-4d kept=%-5d dropped=%-4d sos_fallback=%v\n",
			dr.Division.Key(), dr.Summary.Teams, dr.Summary.KeptRows,
			dr.Summary.DroppedRows, dr.Summary.SOSFallback)
	}
	fmt.Printf("Done in %s (%d failed)\n", report.Elapsed.Round(time.Millisecond), report.Failed)

	if report.Failed > 0 {
		return fmt.Errorf("%d divisions failed", report.Failed)
	}
	return nil
}
