package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renatNoore/to-do-app/internal/view"
)

// renderMain renders the full screen: header, add form, list and footer.
func (m Model) renderMain() string {
	parts := []string{
		m.renderHeader(),
		m.renderInput(),
		m.renderList(),
		m.renderFooter(),
	}
	return strings.Join(parts, "\n")
}

// renderHeader shows the logo and the filter selectors.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	buttons := make([]string, 0, len(m.frame.Filters))
	for i, b := range m.frame.Filters {
		label := fmt.Sprintf("%d %s", i+1, b.Label)
		if b.Pressed {
			buttons = append(buttons, styles.Pressed.Render(label))
		} else {
			buttons = append(buttons, styles.Unpressed.Render(label))
		}
	}

	content := styles.Logo.Render("ticklist") + "  " + strings.Join(buttons, " ")
	return styles.Header.Width(m.width).Render(content)
}

// renderInput renders the add form.
func (m Model) renderInput() string {
	line := m.input.View()
	if m.focus != focusInput {
		line = m.theme.Styles().FaintText.Render(line)
	}
	return padRight(" "+line, m.width)
}

// renderList renders the visible rows inside a titled box.
func (m Model) renderList() string {
	styles := m.theme.Styles()
	innerWidth := max(m.width-2, minRowTextWidth)
	height := max(m.height-listChromeHeight, 1)

	var content string
	if m.frame.Empty() {
		msg := "Nothing to do"
		if m.frame.Total > 0 {
			msg = fmt.Sprintf("No %s items", strings.ToLower(m.frame.Filter.Label()))
		}
		content = lipgloss.Place(innerWidth, height, lipgloss.Center, lipgloss.Center, styles.MutedText.Render(msg))
	} else {
		lines := make([]string, 0, len(m.frame.Rows))
		for i, row := range m.frame.Rows {
			lines = append(lines, m.renderRow(row, i == m.selected, innerWidth))
		}
		vp := m.list
		vp.Width = innerWidth
		vp.Height = height
		vp.SetContent(strings.Join(lines, "\n"))
		switch {
		case m.selected < vp.YOffset:
			vp.SetYOffset(m.selected)
		case m.selected >= vp.YOffset+vp.Height:
			vp.SetYOffset(m.selected - vp.Height + 1)
		}
		content = vp.View()
	}

	return m.renderTitledBox(m.listTitle(), content, m.width, height+2, m.focus != focusInput)
}

// renderRow formats one row: "› [x] text". The row being edited shows the
// inline editor in place of its label.
func (m Model) renderRow(row view.Row, selected bool, width int) string {
	styles := m.theme.Styles()

	marker := "  "
	if selected && m.focus != focusInput {
		marker = styles.AccentText.Render("› ")
	}

	check := styles.CheckOpen.Render("[ ]")
	if row.Completed {
		check = styles.CheckDone.Render("[x]")
	}

	textWidth := max(width-lipgloss.Width(marker)-4, minRowTextWidth)
	var label string
	switch {
	case row.Editing && m.focus == focusEdit:
		label = styles.EditField.Render(padRight(m.editor.View(), textWidth))
	case row.Completed:
		label = styles.DoneText.Render(truncate(row.Text, textWidth))
	default:
		label = styles.Text.Render(truncate(row.Text, textWidth))
	}

	line := marker + check + " " + label
	if selected && m.focus == focusList && !row.Editing {
		return styles.Selected.Render(padRight(line, width))
	}
	return line
}

// renderFooter shows the remaining count, the clear-completed control and
// key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	clearHint := styles.FaintText.Render("C clear completed")
	if m.frame.ClearEnabled {
		clearHint = styles.WarnText.Render("C clear completed")
	}

	const sep = "  ·  "
	content := styles.Text.Render(m.frame.RemainingText) + sep + clearHint
	if m.width >= LayoutCompactWidth {
		// Footer padding takes two cells; help truncates itself to what is left.
		h := m.help
		h.Width = m.width - 2 - lipgloss.Width(content+sep)
		if h.Width > 0 {
			content += sep + h.View(m.keys)
		}
	}
	return styles.Footer.Width(m.width).MaxHeight(1).Render(content)
}

// listTitle returns the list pane title with the filter indicator.
func (m Model) listTitle() string {
	visible := len(m.frame.Rows)
	if m.frame.Filter == "" || visible == m.frame.Total {
		return fmt.Sprintf("Items (%d)", m.frame.Total)
	}
	return fmt.Sprintf("Items (%d/%d) %s", visible, m.frame.Total, m.frame.Filter.Label())
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColor := m.theme.Border
	if focused {
		borderColor = m.theme.BorderFocus
	}
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColor))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	top := borderStyle.Render("┌"+strings.Repeat("─", leftPad)) +
		titleStyle.Render(" "+title+" ") +
		borderStyle.Render(strings.Repeat("─", rightPad)+"┐")
	bottom := borderStyle.Render("└" + strings.Repeat("─", innerWidth) + "┘")

	lines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)
	body := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		body = append(body, borderStyle.Render("│")+padRight(line, innerWidth)+borderStyle.Render("│"))
	}

	return top + "\n" + strings.Join(body, "\n") + "\n" + bottom
}
