package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/totonoe/sauna-itta/internal/visit"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show visit statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
}

func runStats() error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	stats := visit.ComputeStats(st.Visits())

	if isJSON() {
		return printJSON(stats)
	}

	fmt.Printf("Total:        %d (visited %d, wishlist %d)\n",
		stats.Total, stats.VisitedCount, stats.WishlistCount)
	if stats.FirstDate != nil {
		fmt.Printf("Date range:   %s 〜 %s\n", *stats.FirstDate, *stats.LastDate)
	}
	if stats.AvgRating > 0 {
		fmt.Printf("Avg rating:   %.1f\n", stats.AvgRating)
	}
	fmt.Printf("Areas:        %d\n", stats.UniqueAreas)
	if stats.PrefectureCount > 0 {
		fmt.Printf("Prefectures:  %d (%s)\n", stats.PrefectureCount, strings.Join(stats.Prefectures, "、"))
	}

	if len(stats.RatingCounts) > 0 {
		fmt.Println("\nRatings:")
		ratings := make([]int, 0, len(stats.RatingCounts))
		for r := range stats.RatingCounts {
			ratings = append(ratings, r)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(ratings)))
		for _, r := range ratings {
			fmt.Printf("  %s  %d\n", formatRating(r), stats.RatingCounts[r])
		}
	}

	if len(stats.MonthlyVisits) > 0 {
		fmt.Println("\nVisits per month:")
		for _, m := range stats.MonthlyVisits {
			fmt.Printf("  %s  %s (%d)\n", m.Month, strings.Repeat("▇", m.Visits), m.Visits)
		}
	}

	return nil
}
