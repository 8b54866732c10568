package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rook-computer/avatarmaker/internal/render"
	"github.com/rook-computer/avatarmaker/internal/system"
)

func newShowCmd(c *cli) *cobra.Command {
	var (
		device   string
		scale    int
		timeout  time.Duration
		stdioLog string
	)
	cmd := &cobra.Command{
		Use:   "show [text]",
		Short: "Show an avatar on the Linux framebuffer",
		Long: `Render an avatar and draw it centered on a framebuffer device. The
console is switched to graphics mode until a key is pressed, the timeout
expires or the process is interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The console stays in graphics mode while showing, so panics
			// would otherwise be invisible.
			if stdioLog != "" {
				if err := redirectStdIO(stdioLog); err != nil {
					c.log.Warnf("main", "stdio redirect to %s failed: %v", stdioLog, err)
				}
			}

			cfg, err := avatarConfig(cmd.Flags(), args, c.cfg.Defaults)
			if err != nil {
				return err
			}
			res, err := c.renderer().Render(cfg)
			if err != nil {
				return err
			}

			disp, err := render.OpenDisplay(device, c.log)
			if err != nil {
				return err
			}
			defer disp.Close()

			restore := system.EnterGraphics(c.log)
			defer restore()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			ctx, dismiss := context.WithCancel(ctx)
			defer dismiss()
			system.WatchKeys(ctx, c.log, dismiss)

			disp.Show(res.Image, scale)
			<-ctx.Done()
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&device, "fb", render.DefaultFramebuffer, "framebuffer device")
	flags.IntVar(&scale, "scale", 0, "integer zoom factor, 0 to fill the screen")
	flags.DurationVar(&timeout, "timeout", 0, "return after this long, 0 waits for a key")
	flags.StringVar(&stdioLog, "stdio-log", "", "redirect stdout and stderr (including panics) to this file")
	addAvatarFlags(flags)
	return cmd
}
