package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/rapport"
	"github.com/aretw0/rapport/pkg/core"
)

func main() {
	contacts := flag.Int("contacts", 1000, "Number of contacts to generate")
	meetings := flag.Int("meetings", 500, "Number of meetings to generate")
	keep := flag.Bool("keep", false, "Keep the benchmark data after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "rapport_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	fmt.Printf("Generating %d contacts and %d meetings...\n", *contacts, *meetings)
	startGen := time.Now()
	book, err := generate(*contacts, *meetings)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Generation took: %v\n", time.Since(startGen))

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	targets := []struct {
		adapter string
		path    string
	}{
		{"fs", filepath.Join(benchDir, "addressbook.json")},
		{"fs", filepath.Join(benchDir, "addressbook.yaml")},
		{"sqlite", filepath.Join(benchDir, "rapport.db")},
	}

	ctx := context.TODO()
	fmt.Printf("--------------------------------------------------\n")
	for _, tgt := range targets {
		storage, err := rapport.OpenStorage(tgt.path,
			rapport.WithAdapter(tgt.adapter),
			rapport.WithAutoInit(true),
			rapport.WithLogger(logger),
		)
		if err != nil {
			panic(err)
		}

		startSave := time.Now()
		if err := storage.Save(ctx, book); err != nil {
			panic(err)
		}
		saveDur := time.Since(startSave)

		startLoad := time.Now()
		loaded, err := storage.Load(ctx)
		if err != nil {
			panic(err)
		}
		loadDur := time.Since(startLoad)

		if c, ok := storage.(core.Closer); ok {
			_ = c.Close()
		}
		fmt.Printf("%-28s save: %-12v load: %-12v (contacts: %d, meetings: %d)\n",
			filepath.Base(tgt.path), saveDur, loadDur, len(loaded.Contacts()), len(loaded.Meetings()))
	}
	fmt.Printf("--------------------------------------------------\n")
}

// generate builds an address book where every meeting links two contacts.
func generate(nContacts, nMeetings int) (*core.AddressBook, error) {
	ab := core.NewAddressBook()
	names := make([]core.Name, 0, nContacts)
	for i := 0; i < nContacts; i++ {
		name, err := core.NewName(fmt.Sprintf("Contact %d", i))
		if err != nil {
			return nil, err
		}
		phone, _ := core.NewPhone(fmt.Sprintf("9%07d", i))
		email, _ := core.NewEmail(fmt.Sprintf("contact%d@example.com", i))
		tag, _ := core.NewTag("bench")
		note, _ := core.NewNote(1, "Generated for benchmarking")
		if err := ab.AddContact(core.NewContact(name, phone, email, []core.Tag{tag}, []core.Note{note})); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	for i := 0; i < nMeetings; i++ {
		title, _ := core.NewTitle(fmt.Sprintf("Meeting %d", i))
		at, err := core.NewMeetingTime(start.Add(time.Duration(i) * time.Hour).Format(core.MeetingTimeLayout))
		if err != nil {
			return nil, err
		}
		place, _ := core.NewPlace("Room 1")
		notes := core.NewNoteSet()
		notes, _ = notes.Add(core.Note{Content: "Agenda"})
		var linked []core.Name
		if len(names) > 1 {
			linked = []core.Name{names[i%len(names)], names[(i+1)%len(names)]}
		}
		m := core.NewMeeting(title, at, place, core.NewDescription(""), notes, linked)
		if err := ab.AddMeeting(m); err != nil {
			return nil, err
		}
	}
	return ab, nil
}
