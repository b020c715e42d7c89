package rapport_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/rapport"
)

// Example_basic adds a meeting, notes it, then removes the note again.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "rapport-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	mgr, err := rapport.New(filepath.Join(tmpDir, "addressbook.json"), rapport.WithAutoInit(true))
	if err != nil {
		log.Fatal(err)
	}
	defer mgr.Close()

	ctx := context.Background()
	for _, input := range []string{
		"add meeting ti/Standup tm/01/02/2024 09:00 pl/Zoom",
		"add note i/1 note/Share the roadmap",
		"delete note i/1 n/1",
		"list",
	} {
		res, err := mgr.Execute(ctx, input)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Feedback)
	}
	// Output:
	// New meeting added: Standup; Time: 01/02/2024 09:00; Place: Zoom; Description: ; Notes: []; Contacts: []
	// Added note to Meeting: Standup; Time: 01/02/2024 09:00; Place: Zoom; Description: ; Notes: [[1] Share the roadmap]; Contacts: []
	// Removed note from Meeting: Standup; Time: 01/02/2024 09:00; Place: Zoom; Description: ; Notes: []; Contacts: []
	// Listed all meetings.
}
