package store

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/totonoe/sauna-itta/internal/visit"
)

// seedJSON is the bundled default record list shipped with the app.
//
//go:embed data/seed.json
var seedJSON []byte

// seedRecords parses and normalizes the embedded seed bundle. The
// bundle is a build-time constant, so a parse failure is a programmer
// error.
func seedRecords() []visit.Record {
	var records []visit.Record
	if err := json.Unmarshal(seedJSON, &records); err != nil {
		panic(fmt.Sprintf("store: corrupt embedded seed data: %v", err))
	}
	return visit.NormalizeAll(records)
}
