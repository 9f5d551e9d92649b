package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renatNoore/to-do-app/internal/app"
	"github.com/renatNoore/to-do-app/internal/state"
	"github.com/renatNoore/to-do-app/internal/todo"
	"github.com/renatNoore/to-do-app/internal/view"
)

var (
	errItemNotFound = errors.New("item not found")
	errAmbiguousID  = errors.New("ambiguous item id")
	errEmptyText    = errors.New("item text is empty")
	errNotAdded     = errors.New("item not added; see log for the id generator error")
)

func newAddCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add an item to the top of the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				return errEmptyText
			}
			return a.withEnv(cmd, func(env *app.Env) error {
				before := len(env.Store.Snapshot().Items)
				frame := env.Store.Add(cmd.Context(), text)
				if frame.Total == before {
					return errNotAdded
				}
				return writeOut(cmd, "%s\n", env.Store.Snapshot().Items[0].ID)
			})
		},
	}
}

func newListCmd(a *App) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := todo.ParseFilter(filter)
			if !ok {
				return fmt.Errorf("unknown filter %q (want all|active|completed)", filter)
			}
			return a.withEnv(cmd, func(env *app.Env) error {
				return printFrame(cmd, env.Store.SetFilter(f))
			})
		},
	}
	cmd.Flags().StringVar(&filter, "filter", string(todo.FilterAll), "Filter (all|active|completed)")
	return cmd
}

func newToggleCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip an item between active and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withEnv(cmd, func(env *app.Env) error {
				id, err := resolveID(env.Store, args[0])
				if err != nil {
					return err
				}
				return printFrame(cmd, env.Store.Toggle(cmd.Context(), id))
			})
		},
	}
}

func newEditCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <text...>",
		Short: "Replace an item's text",
		Long:  "Replace an item's text. Blank text leaves the item unchanged.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withEnv(cmd, func(env *app.Env) error {
				id, err := resolveID(env.Store, args[0])
				if err != nil {
					return err
				}
				return printFrame(cmd, env.Store.Edit(cmd.Context(), id, strings.Join(args[1:], " ")))
			})
		},
	}
}

func newRmCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withEnv(cmd, func(env *app.Env) error {
				id, err := resolveID(env.Store, args[0])
				if err != nil {
					return err
				}
				return printFrame(cmd, env.Store.Delete(cmd.Context(), id))
			})
		},
	}
}

func newClearCompletedCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-completed",
		Short: "Delete every completed item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withEnv(cmd, func(env *app.Env) error {
				return printFrame(cmd, env.Store.ClearCompleted(cmd.Context()))
			})
		},
	}
}

// resolveID accepts a full item id or a unique prefix of one.
func resolveID(store *state.Store, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", errItemNotFound
	}
	var match string
	for _, item := range store.Snapshot().Items {
		if item.ID == arg {
			return item.ID, nil
		}
		if strings.HasPrefix(item.ID, arg) {
			if match != "" {
				return "", fmt.Errorf("%w: %s", errAmbiguousID, arg)
			}
			match = item.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", errItemNotFound, arg)
	}
	return match, nil
}

// printFrame writes one line per visible row followed by the remaining count.
func printFrame(cmd *cobra.Command, frame view.Frame) error {
	var b strings.Builder
	for _, row := range frame.Rows {
		check := "[ ]"
		if row.Completed {
			check = "[x]"
		}
		fmt.Fprintf(&b, "%s  %s %s\n", row.ID, check, row.Text)
	}
	b.WriteString(frame.RemainingText)
	b.WriteString("\n")
	return writeOut(cmd, "%s", b.String())
}
