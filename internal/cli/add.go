package cli

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/totonoe/sauna-itta/internal/store"
	"github.com/totonoe/sauna-itta/internal/visit"
)

func newAddCmd() *cobra.Command {
	var (
		lat, lng   float64
		form       store.FormInput
		imagePath  string
		visitCount int
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Pin a new sauna visit",
		Long:  "Pin a new sauna at the given coordinates. The date defaults to today and tags are comma-separated.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form.Name = args[0]
			form.VisitCount = visitCount
			return runAdd(visit.LatLng{Lat: lat, Lng: lng}, form, imagePath)
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude (required)")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitude (required)")
	cmd.Flags().StringVar(&form.Date, "date", "", "visit date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&form.Rating, "rating", 0, "rating 0-5 (0 = unrated)")
	cmd.Flags().StringVar(&form.TagsText, "tags", "", "comma-separated tags")
	cmd.Flags().StringVar(&form.Status, "status", "visited", "visited or wishlist")
	cmd.Flags().StringVar(&form.Area, "area", "", "area, e.g. \"東京都 墨田区\"")
	cmd.Flags().StringVar(&form.Comment, "comment", "", "free-text comment")
	cmd.Flags().IntVar(&visitCount, "visits", 1, "number of times visited")
	cmd.Flags().StringVar(&imagePath, "image", "", "path to a photo to embed")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")

	return cmd
}

func runAdd(loc visit.LatLng, form store.FormInput, imagePath string) error {
	if imagePath != "" {
		dataURI, err := encodeImage(imagePath)
		if err != nil {
			return err
		}
		form.Image = dataURI
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	rec := st.Create(loc, form)
	warnUnsaved(st.Save(append([]visit.Record{rec}, st.Visits()...)))

	if isJSON() {
		return printJSON(rec)
	}
	printVisitDetail(rec)
	return nil
}

// encodeImage reads a photo and embeds it as a base64 data URI, the
// same representation the web UI stores.
func encodeImage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}

	mime := "image/jpeg"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		mime = "image/png"
	case ".gif":
		mime = "image/gif"
	case ".webp":
		mime = "image/webp"
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
