// Package events renders the event picker list.
package events

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imfreehq/imfree/internal/models"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type Model struct {
	Events []models.Event
	Cursor int
}

func New(events []models.Event) Model {
	return Model{Events: events}
}

func (m *Model) SetEvents(events []models.Event) {
	m.Events = events
	if m.Cursor >= len(events) {
		m.Cursor = max(0, len(events)-1)
	}
}

func (m *Model) MoveUp() {
	if m.Cursor > 0 {
		m.Cursor--
	}
}

func (m *Model) MoveDown() {
	if m.Cursor < len(m.Events)-1 {
		m.Cursor++
	}
}

// Selected returns the event under the cursor.
func (m Model) Selected() (models.Event, bool) {
	if len(m.Events) == 0 {
		return models.Event{}, false
	}
	return m.Events[m.Cursor], true
}

func (m Model) View() string {
	if len(m.Events) == 0 {
		return "No events yet. Create one with 'imfree event create'."
	}

	var b strings.Builder
	for i, e := range m.Events {
		marker := "  "
		style := normalStyle
		if i == m.Cursor {
			marker = "> "
			style = selectedStyle
		}

		meetings := ""
		if len(e.Meetings) > 0 {
			meetings = fmt.Sprintf(", %d confirmed", len(e.Meetings))
		}
		b.WriteString(style.Render(marker + e.Title))
		b.WriteString("\n")
		b.WriteString(metaStyle.Render(fmt.Sprintf("    %s to %s by %s (%d participants%s)",
			e.StartDate, e.EndDate, e.Creator, len(e.Participants), meetings)))
		b.WriteString("\n")
	}
	return b.String()
}
