package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/rapport"
	storagelifecycle "github.com/aretw0/rapport/pkg/adapters/lifecycle"
	"github.com/aretw0/rapport/pkg/commands"
	"github.com/aretw0/rapport/pkg/core"
	"github.com/aretw0/rapport/pkg/logic"
)

var shellWatch bool

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell (default)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runShell(cmd)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
	rootCmd.PersistentFlags().BoolVar(&shellWatch, "watch", false, "Reload when the data file changes on disk")
}

func runShell(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	mgr, cfg := openManager(rapport.WithWatcherErrorHandler(func(err error) {
		slog.Warn("watcher error", "error", err)
	}))
	defer mgr.Close()

	out := cmd.OutOrStdout()
	if shellWatch || cfg.Watch {
		startReloader(ctx, mgr, out)
	}

	fmt.Fprintf(out, "Rapport %s. Type \"help\" for commands, \"exit\" to quit.\n", rapport.Version)
	mgr.Snapshot(func(model core.Model, view *commands.View) {
		renderMeetings(out, model.FilteredMeetings())
	})

	if err := repl(ctx, mgr, cmd.InOrStdin(), out); err != nil {
		fatal("Shell stopped", err)
	}
}

// repl reads one command per line until exit, EOF or ctx ends.
func repl(ctx context.Context, mgr *logic.Manager, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		res, err := mgr.Execute(ctx, line)
		if err != nil && !errors.Is(err, logic.ErrSave) {
			fmt.Fprintln(out, err)
			continue
		}
		mgr.Snapshot(func(model core.Model, view *commands.View) {
			render(out, res, model, view)
		})
		if err != nil {
			fmt.Fprintf(out, "Warning: %v\n", err)
		}
		if res.Exit {
			return nil
		}
	}
}

// startReloader reloads the address book whenever another process changes it.
func startReloader(ctx context.Context, mgr *logic.Manager, out io.Writer) {
	events, err := mgr.Watch(ctx)
	if err != nil {
		slog.Warn("live reload unavailable", "error", err)
		return
	}
	src := storagelifecycle.NewSource(events)
	if err := src.Start(ctx); err != nil {
		slog.Warn("live reload unavailable", "error", err)
		return
	}
	go func() {
		for e := range src.Events() {
			slog.Debug("storage changed", "event", e.String())
			if err := mgr.Reload(ctx); err != nil {
				fmt.Fprintf(out, "\nData file changed but could not be reloaded: %v\n> ", err)
				continue
			}
			fmt.Fprint(out, "\nData file changed on disk, reloaded.\n> ")
		}
	}()
}
