// Package todo defines the to-do item model and the pure operations that
// mutate an ordered collection of items.
//
// # Overview
//
// A Collection is an ordered slice of Items, newest first. Every operation in
// this package is copy-on-write: it takes a Collection and returns a new one
// together with a flag telling whether anything changed. Nothing here touches
// storage or the terminal; the state package sequences persistence and
// rendering around these functions.
//
// # Item Rules
//
//   - Text is trimmed on add and edit. Empty text after trimming is ignored:
//     Add becomes a no-op and Edit keeps the previous text.
//   - New items are inserted at the head of the collection.
//   - Toggle and Edit mutate in place and never reorder the collection.
//   - IDs come from an IDGenerator and are unique for the item's lifetime.
//
// # Filters
//
// Filter selects which items are visible:
//
//	all        every item
//	active     items with Completed == false
//	completed  items with Completed == true
//
// Visible preserves collection order for every filter.
package todo
