package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/totonoe/sauna-itta/internal/visit"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printVisitTable prints records as a formatted table.
func printVisitTable(visits []visit.Record) error {
	if len(visits) == 0 {
		fmt.Println("No visits found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tDATE\tRATING\tSTATUS\tAREA\tTAGS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t----\t----\t------\t------\t----\t----"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, v := range visits {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			truncate(v.ID, 14), truncate(v.Name, 28), v.Date, formatRating(v.Rating),
			v.Status, truncate(v.Area, 20), truncate(strings.Join(v.Tags, ","), 24)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d visits\n", len(visits))
	return nil
}

// printVisitDetail prints a single record in text format.
func printVisitDetail(v visit.Record) {
	fmt.Printf("%s (%s)\n", v.Name, v.ID)
	fmt.Printf("  Status:      %s\n", v.Status)
	fmt.Printf("  Date:        %s\n", v.Date)
	fmt.Printf("  Rating:      %s\n", formatRating(v.Rating))
	fmt.Printf("  Visits:      %d\n", v.VisitCount)
	fmt.Printf("  Location:    %v, %v\n", v.Lat, v.Lng)
	if v.Area != "" {
		fmt.Printf("  Area:        %s\n", v.Area)
	}
	if len(v.Tags) > 0 {
		fmt.Printf("  Tags:        %s\n", strings.Join(v.Tags, ", "))
	}
	if v.Comment != "" {
		fmt.Printf("  Comment:     %s\n", v.Comment)
	}
	if v.Image != "" {
		fmt.Printf("  Image:       embedded (%d bytes)\n", len(v.Image))
	}
	fmt.Printf("  Directions:  %s\n", v.DirectionsURL())
}

// formatRating returns a five-star representation of a 0-5 rating.
// 0 means unrated.
func formatRating(rating int) string {
	if rating < 1 {
		return "-"
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// truncate shortens a string to maxLen runes, adding "..." if
// truncated.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
