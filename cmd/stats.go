package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show anonymous quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		portal, err := openPortal(cmd)
		if err != nil {
			return err
		}
		defer portal.Close()

		stats, err := portal.Quiz.AnonymousStatistics(cmd.Context())
		if err != nil {
			return err
		}

		if stats.Count == 0 {
			fmt.Println("No quiz results recorded yet.")
			return nil
		}

		fmt.Printf("Results:       %d (most recent anonymous attempts)\n", stats.Count)
		fmt.Printf("Average score: %.1f%%\n", stats.AverageScore)
		fmt.Printf("Best score:    %.1f%%\n", stats.BestScore)

		if len(stats.DomainTrend) > 0 {
			fmt.Println("Per-domain averages:")
			domains := make([]string, 0, len(stats.DomainTrend))
			for d := range stats.DomainTrend {
				domains = append(domains, d)
			}
			sort.Strings(domains)
			for _, d := range domains {
				fmt.Printf("  %-45s %.1f%%\n", d, stats.DomainTrend[d])
			}
		}
		return nil
	},
}
