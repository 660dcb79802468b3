package cli

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/conmx/conmx/internal/config"
	"github.com/conmx/conmx/internal/server"
	"github.com/conmx/conmx/pkg/controller"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		Long: `Serve the controller over HTTP under /api/v1.

Routes:
  GET    /api/v1/show
  GET    /api/v1/universes
  GET    /api/v1/universes/{id}
  GET    /api/v1/universes/{id}/channels/{ch}
  PUT    /api/v1/universes/{id}/channels/{ch}            {"value": N}
  PUT    /api/v1/universes/{id}/channels/{ch}/override   {"value": N}
  DELETE /api/v1/universes/{id}/channels/{ch}/override
  GET    /api/v1/graph
  GET    /api/v1/graph.svg

With --watch, universes added to the config file while serving are
registered without a restart. Existing universes keep their state.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.settings().Server.Addr
			}
			ctl := c.newController()
			srv, err := server.New(server.Config{Addr: addr, Controller: ctl, Logger: c.Logger})
			if err != nil {
				return err
			}
			printSuccess("Serving show %s", ctl.ID())
			printKeyValue("Address", "http://"+srv.Addr()+"/api/v1")
			printKeyValue("Universes", formatIDs(ctl.Registry().IDs()))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error { return srv.Run(ctx) })
			if source := c.settings().Source; watch && source != "" {
				printKeyValue("Watching", source)
				g.Go(func() error { return c.watchConfig(ctx, source, srv) })
			}
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, 127.0.0.1:7070)")
	cmd.Flags().BoolVar(&watch, "watch", false, "register universes added to the config file while serving")
	return cmd
}

// watchConfig applies config reloads to the served controller.
func (c *CLI) watchConfig(ctx context.Context, path string, srv *server.Server) error {
	return config.Watch(ctx, path, config.DefaultDebounce, c.Logger, func(cfg *config.Config) {
		srv.Apply(func(ctl *controller.Controller) {
			ctl.AddUniverses(cfg.Registry(c.Logger))
		})
	})
}
