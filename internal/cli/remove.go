package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a pinned sauna",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args[0])
		},
	}
}

func runRemove(id string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	if _, ok := st.Find(id); !ok {
		return fmt.Errorf("visit %s not found", id)
	}

	warnUnsaved(st.Save(st.Delete(id)))
	fmt.Printf("Removed %s.\n", id)
	return nil
}
