package ui

// Fixed rows around the list: header, add form, box borders and footer.
const listChromeHeight = 5

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which the footer drops key hints.
	LayoutCompactWidth = 60

	// minRowTextWidth keeps item text readable on narrow terminals.
	minRowTextWidth = 10
)
