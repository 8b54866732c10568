package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rook-computer/avatarmaker/internal/avatar"
)

func newRenderCmd(c *cli) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "render [text]",
		Short: "Render an avatar to a PNG file",
		Example: `  avatarmaker render "Ada Lovelace" -o ada.png
  avatarmaker render --text "Jean Dupont" --shape rect --bg "#1FA8F1" -o - > jd.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := avatarConfig(cmd.Flags(), args, c.cfg.Defaults)
			if err != nil {
				return err
			}
			svc, err := avatar.NewService(c.renderer(), 0, c.log)
			if err != nil {
				return err
			}
			data, _, err := svc.Generate(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			c.log.Infof("main", "wrote %s (%d bytes)", out, len(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "avatar.png", "output file, - for stdout")
	addAvatarFlags(cmd.Flags())
	return cmd
}
