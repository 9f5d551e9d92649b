// Package ui is the Bubble Tea front end for the to-do list.
//
// The model owns no items. Every keystroke that changes the list is routed to
// state.Store, and the returned view.Frame replaces the previous render
// wholesale. Selection is tracked by item ID so it survives re-renders.
//
// # Focus
//
// Keys go to one of three surfaces:
//
//   - the add form, focused on start; enter submits and clears it
//   - the list, where single keys toggle, edit, delete and filter
//   - the inline editor, which replaces a row's label while editing
//
// Leaving the editor by enter, tab, up/down or terminal blur commits the
// edit; esc cancels it. Starting an edit disables the edit trigger until the
// next loop turn, when editTriggerReleasedMsg re-enables it.
//
// # Key Bindings
//
//   - a/n/i: Focus the add form
//   - space/x: Toggle completion
//   - e/enter: Edit the selected item
//   - d: Delete the selected item
//   - C: Clear completed items
//   - 1/2/3, f: Select or cycle the filter
//   - T: Cycle theme
//   - ?/h: Toggle help
//   - q or Ctrl+C: Quit
package ui
