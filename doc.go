// Package rapport is the Composition Root for Rapport, a contact and meeting manager.
//
// It connects the domain (contacts, meetings, notes and the commands that
// change them) with the storage adapters using the Hexagonal Architecture pattern.
//
// Features:
//
//   - **Plain Commands**: every user action is one command run against an in-memory model.
//   - **Filtered Views**: list, find and view commands drive what is displayed.
//   - **File Storage (JSON/YAML)**: atomic writes, optional Git history of every change.
//   - **SQLite Storage**: the same data in a single database file.
//   - **Live Reload**: external edits to the data file are picked up by the shell.
//
// Usage:
//
//	mgr, err := rapport.New("./data/addressbook.json",
//		rapport.WithAutoInit(true),
//		rapport.WithLogger(logger),
//	)
//
//	res, err := mgr.Execute(ctx, "add meeting ti/Standup tm/01/02/2024 09:00 pl/Zoom")
//	fmt.Println(res.Feedback)
package rapport
