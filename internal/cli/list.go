package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/totonoe/sauna-itta/internal/visit"
)

func newListCmd() *cobra.Command {
	f := visit.DefaultFilters()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pinned saunas",
		Long:  "List all pinned saunas, optionally filtered by keyword, status, and minimum rating.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(f)
		},
	}

	cmd.Flags().StringVar(&f.Search, "search", "", "keyword over name, comment, area, and tags")
	cmd.Flags().StringVar(&f.Status, "status", visit.StatusFilterAll, "all, visited, or wishlist")
	cmd.Flags().IntVar(&f.MinRating, "min-rating", 0, "minimum rating (0-5)")
	cmd.Flags().StringVar(&f.Sort, "sort", visit.SortRecent, "recent, oldest, ratingDesc, or ratingAsc")

	return cmd
}

func runList(f visit.FilterState) error {
	if f.Status != visit.StatusFilterAll && !visit.ValidStatus(f.Status) {
		return fmt.Errorf("status must be all, visited, or wishlist")
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	visits := visit.Sort(visit.Filter(st.Visits(), f), f.Sort)

	if isJSON() {
		return printJSON(visits)
	}
	return printVisitTable(visits)
}
