package cli

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb/geo"
	"github.com/spf13/cobra"

	"github.com/totonoe/sauna-itta/internal/visit"
)

func newNearCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "near <lat> <lng>",
		Short: "List saunas closest to a coordinate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var lat, lng float64
			if _, err := fmt.Sscanf(args[0], "%f", &lat); err != nil {
				return fmt.Errorf("invalid latitude %q", args[0])
			}
			if _, err := fmt.Sscanf(args[1], "%f", &lng); err != nil {
				return fmt.Errorf("invalid longitude %q", args[1])
			}
			return runNear(visit.LatLng{Lat: lat, Lng: lng}, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "number of results")

	return cmd
}

// nearResult pairs a record with its great-circle distance from the
// query point. The record is a named field: embedding it would promote
// its MarshalJSON and drop the distance from JSON output.
type nearResult struct {
	Visit          visit.Record `json:"visit"`
	DistanceMeters float64      `json:"distanceMeters"`
}

func runNear(from visit.LatLng, limit int) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	origin := from.Point()
	results := make([]nearResult, 0, len(st.Visits()))
	for _, v := range st.Visits() {
		results = append(results, nearResult{
			Visit:          v,
			DistanceMeters: geo.Distance(origin, v.Point()),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceMeters < results[j].DistanceMeters
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	if isJSON() {
		return printJSON(results)
	}

	for _, r := range results {
		fmt.Printf("%8.1f km  %s (%s) %s\n",
			r.DistanceMeters/1000, r.Visit.Name, r.Visit.Status, r.Visit.Area)
	}
	return nil
}
