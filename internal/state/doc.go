// Package state owns the to-do list for the lifetime of the process.
//
// # Overview
//
// Store is the single owner of the item collection, the active filter and
// the (at most one) edit session. It sequences each user action:
//
//	cancel edit session -> apply todo operation -> persist -> render
//
// and hands back a view.Frame so callers never render from stale state.
//
// # Filter State
//
// The filter starts at "all" and changes only through SetFilter. It is never
// written to storage.
//
// # Edit Sessions
//
// BeginEdit opens a session for one item and disables that item's edit
// trigger. The caller schedules ReleaseEditTrigger on the next turn of its
// event loop so the same interaction cannot reopen the editor.
//
// CommitEdit re-resolves the item by id, since the collection may have
// changed, and writes the trimmed working text back through Edit when it is
// non-blank. Blank text is discarded silently, leaving the prior text. A
// commit always persists and re-renders. CancelEdit re-renders without
// touching the collection.
//
// Any other mutation or a filter change ends the session implicitly.
//
// # Concurrency
//
// Store methods are guarded by a mutex. The UI runs on a single event loop,
// but Bubble Tea commands execute on their own goroutines.
package state
