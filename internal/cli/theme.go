package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [dark|light]",
		Short: "Show or set the web UI theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runThemeShow()
			}
			return runThemeSet(args[0])
		},
	}
}

func runThemeShow() error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	if isJSON() {
		return printJSON(map[string]string{"theme": st.Theme()})
	}
	fmt.Println(st.Theme())
	return nil
}

func runThemeSet(theme string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	if err := st.SetTheme(theme); err != nil {
		return err
	}
	fmt.Printf("Theme set to %s.\n", theme)
	return nil
}
