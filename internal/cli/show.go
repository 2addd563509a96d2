package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one pinned sauna",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args[0])
		},
	}
}

func runShow(id string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	rec, ok := st.Find(id)
	if !ok {
		return fmt.Errorf("visit %s not found", id)
	}

	if isJSON() {
		return printJSON(rec)
	}
	printVisitDetail(rec)
	return nil
}
