package cli

import (
	"github.com/spf13/cobra"

	"github.com/totonoe/sauna-itta/internal/logging"
	"github.com/totonoe/sauna-itta/internal/web"
)

func newServeCmd() *cobra.Command {
	var (
		port int
		dev  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web UI",
		Long:  "Starts the HTTP server that hosts the map UI and the JSON API.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, dev)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default: config or 8080)")
	cmd.Flags().BoolVar(&dev, "dev", false, "development mode (verbose text logs)")

	return cmd
}

func runServe(port int, dev bool) error {
	logging.Setup(dev)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port == 0 {
		port = cfg.resolvePort()
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	srv, err := web.NewServer(st)
	if err != nil {
		return err
	}
	return srv.ListenAndServe(port)
}
