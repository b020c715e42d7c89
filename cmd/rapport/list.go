package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/rapport/pkg/adapters/record"
	"github.com/aretw0/rapport/pkg/commands"
	"github.com/aretw0/rapport/pkg/core"
)

var (
	listJSON  bool
	filterTag string
)

var listCmd = &cobra.Command{
	Use:       "list [contacts|meetings]",
	Short:     "Print contacts or meetings (meetings by default)",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"contacts", "meetings"},
	Run: func(cmd *cobra.Command, args []string) {
		what := "meetings"
		if len(args) == 1 {
			what = args[0]
		}
		if what != "contacts" && what != "meetings" {
			fatal("Invalid argument", fmt.Errorf("want contacts or meetings, got %q", what))
		}

		mgr, _ := openManager()
		defer mgr.Close()

		out := cmd.OutOrStdout()
		mgr.Snapshot(func(model core.Model, _ *commands.View) {
			if filterTag != "" {
				model.UpdateFilteredContactList(core.ContactHasTag([]string{filterTag}))
			}

			var payload any
			if what == "contacts" {
				contacts := model.FilteredContacts()
				if !listJSON {
					renderContacts(out, contacts)
					return
				}
				recs := make([]record.Contact, len(contacts))
				for i, c := range contacts {
					recs[i] = record.FromContact(c)
				}
				payload = recs
			} else {
				meetings := model.FilteredMeetings()
				if !listJSON {
					renderMeetings(out, meetings)
					return
				}
				recs := make([]record.Meeting, len(meetings))
				for i, m := range meetings {
					recs[i] = record.FromMeeting(m)
				}
				payload = recs
			}

			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(payload); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&filterTag, "tag", "", "Filter contacts by tag")
}
