package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/visitor-log/internal/logging"
	"github.com/evcraddock/visitor-log/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int
	var dev bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the visitor log web page",
		Long:  "Start an HTTP server for the visitor log page and JSON API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, dev)
		},
	}

	cmd.Flags().IntVar(&port, "port", defaultPort(), "port to listen on")
	cmd.Flags().BoolVar(&dev, "dev", false, "human-readable debug logging")

	return cmd
}

func runServe(port int, dev bool) error {
	logging.Setup(dev)

	svc, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	server, err := web.NewServer(svc)
	if err != nil {
		return err
	}

	return server.ListenAndServe(port)
}
