package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rook-computer/avatarmaker/internal/avatar"
	"github.com/rook-computer/avatarmaker/internal/config"
	"github.com/rook-computer/avatarmaker/internal/web"
)

func newServeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve avatars over HTTP",
		Long: `Start an HTTP server answering GET /api/v1/avatar with PNG avatars.
Query parameters mirror the render flags: text, initials, size, width,
height, fit, caps, shape, strokeWidth, radius, bg, stroke, color, random,
textSize, unit and font.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := avatar.NewService(c.renderer(), c.cfg.CacheSize, c.log)
			if err != nil {
				return err
			}
			mux := web.NewDefaultMux(web.APIV1Config{
				Avatars:  svc,
				Defaults: c.cfg.Defaults,
				Logger:   c.log,
			})
			srv := web.NewHTTPServer(c.cfg.Server, mux, c.log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := srv.Start(ctx); err != nil {
				return err
			}
			<-ctx.Done()
			c.log.Infof("main", "shutting down")
			return srv.Stop()
		},
	}

	flags := cmd.Flags()
	flags.String("listen", ":8080", "http listen address")
	flags.Bool("dev", false, "enable dev mode (permissive CORS)")
	flags.Int("cache-size", avatar.DefaultCacheSize, "number of rendered avatars kept in memory, 0 to disable")
	c.bind(flags, map[string]string{
		config.KeyListen:    "listen",
		config.KeyDevMode:   "dev",
		config.KeyCacheSize: "cache-size",
	})
	return cmd
}
