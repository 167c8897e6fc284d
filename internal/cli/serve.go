package cli

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/matzehuels/multicolumn/pkg/api"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API for editor integrations",
		Long: `Run the HTTP API for editor integrations.

Endpoints:
  POST /v1/blocks     generate a block from a preset, custom ratios or columns
  GET  /v1/presets    list presets (?lang=)
  GET  /v1/width      map column metadata to a style (?metadata=)
  POST /v1/render     apply column widths to an HTML body
  GET  /v1/settings   read settings
  PUT  /v1/settings   replace settings

The server stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.settingsStore()
			if err != nil {
				return err
			}

			printInfo("Serving on %s", StyleHighlight.Render("http://"+addr))
			printDetail("Settings: %s", store.Path())

			srv := api.New(store, loggerFromContext(ctx))
			err = srv.ListenAndServe(ctx, addr)
			if errors.Is(err, http.ErrServerClosed) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	return cmd
}
