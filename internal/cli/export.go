package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/totonoe/sauna-itta/internal/store"
)

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all visits as JSON",
		Long:  "Write the full visit list as indented JSON. The output can be imported back with the import command.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", store.ExportFilename, "output file, - for stdout")

	return cmd
}

func runExport(output string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	data, err := st.Export()
	if err != nil {
		return err
	}

	if output == "-" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	fmt.Printf("Exported %d visits to %s.\n", len(st.Visits()), output)
	return nil
}
