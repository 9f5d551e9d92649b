package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renatNoore/to-do-app/internal/app"
	"github.com/renatNoore/to-do-app/internal/config"
	"github.com/renatNoore/to-do-app/internal/state"
)

// App holds the persistent flags shared by every command.
type App struct {
	ConfigPath string
	Backend    string
	DataDir    string
	Ephemeral  bool

	// runTUI starts the interactive UI; tests replace it.
	runTUI func(cmd *cobra.Command, opts app.Options) error

	storeOpts []state.Option
}

// NewRootCmd builds the ticklist command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{runTUI: func(cmd *cobra.Command, opts app.Options) error {
		return app.Run(cmd.Context(), opts)
	}})
}

func newRootCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ticklist",
		Short:         "A local to-do list for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  ticklist

  # Scriptable commands
  ticklist add Buy milk
  ticklist list --filter active
  ticklist toggle 0199
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			return a.runTUI(cmd, a.options(nil))
		},
	}

	cmd.PersistentFlags().StringVar(&a.ConfigPath, "config", envOr("TICKLIST_CONFIG", ""), "Path to config.toml (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&a.Backend, "backend", envOr("TICKLIST_BACKEND", ""), "Storage backend (file|sqlite|badger|memory)")
	cmd.PersistentFlags().StringVar(&a.DataDir, "data-dir", envOr("TICKLIST_DATA_DIR", ""), "Directory holding the list and log file")
	cmd.PersistentFlags().BoolVar(&a.Ephemeral, "ephemeral", false, "Keep the list in memory only")

	cmd.AddCommand(newAddCmd(a))
	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newToggleCmd(a))
	cmd.AddCommand(newEditCmd(a))
	cmd.AddCommand(newRmCmd(a))
	cmd.AddCommand(newClearCompletedCmd(a))
	cmd.AddCommand(newLogCmd(a))

	return cmd
}

// options converts flags to app.Options. A nil logOut keeps the log file.
func (a *App) options(logOut io.Writer) app.Options {
	return app.Options{
		ConfigPath:   a.ConfigPath,
		Backend:      a.Backend,
		DataDir:      a.DataDir,
		Ephemeral:    a.Ephemeral,
		LogOutput:    logOut,
		StoreOptions: a.storeOpts,
	}
}

// withEnv opens the environment for one command and closes it afterwards.
// Scriptable commands log to stderr.
func (a *App) withEnv(cmd *cobra.Command, fn func(env *app.Env) error) error {
	env, err := app.Open(cmd.Context(), a.options(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	defer env.Close()
	return fn(env)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func writeOut(cmd *cobra.Command, format string, args ...any) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), format, args...)
	return err
}
