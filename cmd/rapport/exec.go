package main

import (
	"context"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/rapport/pkg/commands"
	"github.com/aretw0/rapport/pkg/core"
	"github.com/aretw0/rapport/pkg/parser"
)

var execCmd = &cobra.Command{
	Use:   "exec [command...]",
	Short: "Run a single command and exit",
	Long: `Run a single command, e.g.

  rapport exec add meeting ti/Standup tm/01/02/2024 09:00 pl/Zoom
  rapport exec delete note i/1 n/2`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeCommandWord,
	Run: func(cmd *cobra.Command, args []string) {
		mgr, _ := openManager()
		defer mgr.Close()

		res, err := mgr.Execute(context.Background(), strings.Join(args, " "))
		if err != nil {
			fatal("Command failed", err)
		}
		mgr.Snapshot(func(model core.Model, view *commands.View) {
			render(cmd.OutOrStdout(), res, model, view)
		})
	},
}

// completeCommandWord suggests the next word of every command word that
// extends the words typed so far.
func completeCommandWord(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	typed := len(args)
	seen := make(map[string]bool)
	var out []string
	for _, w := range parser.Words() {
		parts := strings.Fields(w)
		if len(parts) <= typed || strings.Join(parts[:typed], " ") != strings.Join(args, " ") {
			continue
		}
		next := parts[typed]
		if strings.HasPrefix(next, toComplete) && !seen[next] {
			seen[next] = true
			out = append(out, next)
		}
	}
	sort.Strings(out)
	return out, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(execCmd)
}
