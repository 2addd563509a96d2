package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/totonoe/sauna-itta/internal/store"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import visits from a JSON export",
		Long:  "Merge a JSON array of visit records into the store. Records whose id already exists are skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(args[0])
		},
	}
}

func runImport(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	added, merged, err := st.Import(data)
	if err != nil {
		var parseErr *store.ParseError
		if errors.As(err, &parseErr) {
			return fmt.Errorf("%s is not a valid visit export: %w", path, err)
		}
		return err
	}

	if added > 0 {
		warnUnsaved(st.Save(merged))
	}

	fmt.Printf("Imported %d visits (%d total).\n", added, len(merged))
	return nil
}
