package todo

import (
	"strings"
	"time"
)

// Add inserts a new item at the head of c. Blank text is ignored.
func Add(c Collection, rawText, id string, now time.Time) (Collection, bool) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return c, false
	}

	createdAt := now.UnixMilli()
	// Keep createdAt non-decreasing even if the wall clock steps backwards.
	if len(c) > 0 && c[0].CreatedAt > createdAt {
		createdAt = c[0].CreatedAt
	}

	out := make(Collection, 0, len(c)+1)
	out = append(out, Item{ID: id, Text: text, CreatedAt: createdAt})
	out = append(out, c...)
	return out, true
}

// Toggle flips the completion flag of the item with the given id.
func Toggle(c Collection, id string) (Collection, bool) {
	idx := indexOf(c, id)
	if idx < 0 {
		return c, false
	}
	out := c.Clone()
	out[idx].Completed = !out[idx].Completed
	return out, true
}

// Edit replaces the text of the item with the given id. An empty trimmed
// text leaves the item untouched.
func Edit(c Collection, id, rawText string) (Collection, bool) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return c, false
	}
	idx := indexOf(c, id)
	if idx < 0 {
		return c, false
	}
	if c[idx].Text == text {
		return c, false
	}
	out := c.Clone()
	out[idx].Text = text
	return out, true
}

// Delete removes the item with the given id.
func Delete(c Collection, id string) (Collection, bool) {
	idx := indexOf(c, id)
	if idx < 0 {
		return c, false
	}
	out := make(Collection, 0, len(c)-1)
	out = append(out, c[:idx]...)
	out = append(out, c[idx+1:]...)
	return out, true
}

// ClearCompleted drops every completed item, preserving relative order.
func ClearCompleted(c Collection) (Collection, bool) {
	out := make(Collection, 0, len(c))
	for _, item := range c {
		if !item.Completed {
			out = append(out, item)
		}
	}
	return out, len(out) != len(c)
}

// Find returns the item with the given id.
func Find(c Collection, id string) (Item, bool) {
	idx := indexOf(c, id)
	if idx < 0 {
		return Item{}, false
	}
	return c[idx], true
}

// Visible returns the items matching f in collection order.
func Visible(c Collection, f Filter) Collection {
	out := make(Collection, 0, len(c))
	for _, item := range c {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// Remaining counts items that are not completed.
func Remaining(c Collection) int {
	n := 0
	for _, item := range c {
		if !item.Completed {
			n++
		}
	}
	return n
}

// AnyCompleted reports whether at least one item is completed.
func AnyCompleted(c Collection) bool {
	for _, item := range c {
		if item.Completed {
			return true
		}
	}
	return false
}

func indexOf(c Collection, id string) int {
	if id == "" {
		return -1
	}
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}
