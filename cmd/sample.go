package main

import (
	"fmt"

	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/internal/sampledata"
	"github.com/okian/podium/pkg/logger"
	"github.com/spf13/cobra"
)

func (c *cli) sampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample [dir]",
		Short: "Write a small synthetic dataset (defaults to raw_dir)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := c.cfg.RawDir
			if len(args) == 1 {
				dir = args[0]
			}
			files, err := sampledata.Write(cmd.Context(), dir)
			if err != nil {
				c.log.Error(cmd.Context(), "sample failed", logger.Error(err))
				return err
			}
			c.log.Info(cmd.Context(), "sample dataset written", logger.String("dir", files.Dir))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "sample written to %s\nset %sBOUNDARIES_PATH=%s to draw the maps\n",
				files.Dir, config.EnvPrefix, files.Boundaries)
			return err
		},
	}
}
