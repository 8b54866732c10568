package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rook-computer/avatarmaker/internal/avatar"
	"github.com/rook-computer/avatarmaker/internal/config"
	"github.com/rook-computer/avatarmaker/internal/logger"
	"github.com/rook-computer/avatarmaker/internal/render"
)

// cli carries the state shared by every subcommand once the root command
// has loaded the configuration.
type cli struct {
	v       *viper.Viper
	cfgFile string

	cfg     config.Config
	log     logger.Logger
	logFile *os.File
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.New(), log: logger.Noop{}}

	root := &cobra.Command{
		Use:   "avatarmaker",
		Short: "Render initials avatars",
		Long: `avatarmaker draws placeholder avatars: the initials of a name centered
in a filled oval or rounded rectangle. Avatars can be written to PNG files,
served over HTTP or shown on a Linux framebuffer.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			c.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.cfgFile, "config", "c", "", "configuration file (yaml, toml or json)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")
	flags.String("log-file", "", "append logs to this file instead of stderr")
	flags.Float64("dpi", 0, "display density used to resolve dp, sp, pt, in and mm text sizes")
	flags.Float64("font-scale", 0, "user font scale applied to sp text sizes")
	c.bind(flags, map[string]string{
		config.KeyLogLevel:  "log-level",
		config.KeyLogFormat: "log-format",
		config.KeyLogFile:   "log-file",
		config.KeyDPI:       "dpi",
		config.KeyFontScale: "font-scale",
	})

	root.AddCommand(newRenderCmd(c), newServeCmd(c), newShowCmd(c))
	return root
}

// bind maps viper keys to flag names.
func (c *cli) bind(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		checkNoErr(config.BindFlag(c.v, key, flags, name))
	}
}

func (c *cli) setup(stderr io.Writer) error {
	cfg, err := config.Load(c.v, c.cfgFile)
	if err != nil {
		return err
	}
	c.cfg = cfg

	out := stderr
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		c.logFile = f
		out = f
	}
	log, err := logger.New(logger.Options{Output: out, Level: cfg.Log.Level, JSON: cfg.Log.JSON})
	if err != nil {
		c.teardown()
		return err
	}
	c.log = log
	c.log.Debugf("main", "configuration loaded: defaults=%+v", cfg.Defaults)
	return nil
}

func (c *cli) teardown() {
	if c.logFile != nil {
		_ = c.logFile.Close()
		c.logFile = nil
	}
}

func (c *cli) renderer() *avatar.Renderer {
	surface := render.NewSurface(render.NewFonts(c.log))
	r := avatar.NewRenderer(surface, c.cfg.Defaults.Display)
	r.Logger = c.log
	return r
}

func checkNoErr(err error) {
	if err != nil {
		panic(err)
	}
}
