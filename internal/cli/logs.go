package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/renatNoore/to-do-app/internal/config"
	"github.com/renatNoore/to-do-app/internal/logtail"
)

func newLogCmd(a *App) *cobra.Command {
	var (
		lines int
		level string
	)
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Print the tail of the TUI log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			minLevel, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
			if err != nil {
				return fmt.Errorf("parse level: %w", err)
			}
			path, err := a.logPath()
			if err != nil {
				return err
			}
			out, err := logtail.Read(path, logtail.Options{Lines: lines, MinLevel: minLevel})
			if err != nil {
				return err
			}
			for _, line := range out {
				if err := writeOut(cmd, "%s\n", line); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", logtail.DefaultLines, "Number of lines to show")
	cmd.Flags().StringVar(&level, "level", "debug", "Minimum level (debug|info|warn|error)")
	return cmd
}

// logPath resolves the log file without opening storage.
func (a *App) logPath() (string, error) {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	if a.DataDir != "" {
		dir, err := config.ExpandPath(a.DataDir)
		if err != nil {
			return "", fmt.Errorf("resolve data dir: %w", err)
		}
		cfg.DataDir = dir
	}
	return cfg.LogPath(), nil
}
