// Package editor is the availability selection grid: the same date x time
// layout as the heat map, but showing one participant's own slots, toggled
// cell by cell.
package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imfreehq/imfree/internal/grid"
	"github.com/imfreehq/imfree/internal/models"
	"github.com/imfreehq/imfree/internal/utils"
)

const cellWidth = 11

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Bold(true)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(9)

	cursorStyle = lipgloss.NewStyle().
			Reverse(true).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type Model struct {
	Grid      grid.Grid
	Selection models.Availability
	Col       int
	Row       int
}

// New copies the participant's current availability so edits can be
// abandoned without touching the original.
func New(g grid.Grid, current models.Availability) Model {
	selection := models.Availability{}
	for key, ok := range current {
		if ok {
			selection[key] = true
		}
	}
	return Model{
		Grid:      g,
		Selection: selection,
	}
}

func (m *Model) MoveLeft() {
	if m.Col > 0 {
		m.Col--
	}
}

func (m *Model) MoveRight() {
	if m.Col < len(m.Grid.Dates)-1 {
		m.Col++
	}
}

func (m *Model) MoveUp() {
	if m.Row > 0 {
		m.Row--
	}
}

func (m *Model) MoveDown() {
	if m.Row < len(m.Grid.Times)-1 {
		m.Row++
	}
}

// Toggle flips the slot under the cursor. Deselected slots are removed
// rather than stored as false.
func (m *Model) Toggle() {
	if m.Col >= len(m.Grid.Dates) || m.Row >= len(m.Grid.Times) {
		return
	}
	key := models.SlotKey(m.Grid.Dates[m.Col], m.Grid.Times[m.Row])
	if m.Selection[key] {
		delete(m.Selection, key)
	} else {
		m.Selection[key] = true
	}
}

func (m Model) View() string {
	if len(m.Grid.Dates) == 0 || len(m.Grid.Times) == 0 {
		return "No slots in this event's date/time window."
	}

	var b strings.Builder

	b.WriteString(timeStyle.Render(""))
	for _, date := range m.Grid.Dates {
		b.WriteString(headerStyle.Render(pad(utils.FormatDateShort(date))))
	}
	b.WriteString("\n")

	for row, t := range m.Grid.Times {
		b.WriteString(timeStyle.Render(utils.FormatTime12(t)))
		for col, date := range m.Grid.Dates {
			key := models.SlotKey(date, t)

			label, style := pad("·"), emptyStyle
			if m.Selection[key] {
				label, style = pad("✓ free"), selectedStyle
			}
			if m.Col == col && m.Row == row {
				style = cursorStyle
			}
			b.WriteString(style.Render(label))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\n%d slots selected\n", m.Selection.SelectedCount()))
	return b.String()
}

func pad(s string) string {
	if w := lipgloss.Width(s); w < cellWidth {
		return s + strings.Repeat(" ", cellWidth-w)
	}
	return s
}
