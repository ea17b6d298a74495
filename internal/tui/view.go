package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imfreehq/imfree/internal/cli"
	"github.com/imfreehq/imfree/internal/constants"
	"github.com/imfreehq/imfree/internal/tui/components/heatgrid"
	"github.com/imfreehq/imfree/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateEvents:
		content = m.viewEvents()
	case constants.StateHeatMap:
		content = m.viewHeatMap()
	case constants.StateAvailability:
		content = m.viewEditor()
	case constants.StateJoinForm:
		if m.form != nil {
			content = m.form.View()
		}
	}

	var status string
	if m.statusErr != "" {
		status = dangerStyle.Render(m.statusErr)
	} else if m.status != "" {
		status = statusStyle.Render(m.status)
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		status,
		m.help.View(m),
	))
}

func (m Model) viewHeader() string {
	who := "not logged in"
	if m.currentUser != "" {
		who = m.currentUser
	}
	return titleStyle.Render("imfree") + subtitleStyle.Render("  "+who) + "\n"
}

func (m Model) viewEvents() string {
	return m.eventList.View()
}

func (m Model) viewHeatMap() string {
	if m.event == nil {
		return "No event selected."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.event.Title))
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("  %d participants", len(m.event.Participants))))
	b.WriteString("\n\n")
	b.WriteString(m.heatGrid.View())
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(heatgrid.Legend(m.heatGrid.Result.TotalParticipants)))
	b.WriteString("\n")

	// Who is free in the slot under the cursor
	if date, t, ok := m.heatGrid.SelectedSlot(); ok {
		names := m.heatGrid.Result.AvailableNames(date, t)
		line := fmt.Sprintf("%s: ", utils.FormatDateTime(date, t))
		if len(names) == 0 {
			line += "nobody is free"
		} else {
			line += strings.Join(names, ", ")
		}
		b.WriteString("\n" + line + "\n")
	}

	res := m.heatGrid.Result
	if len(res.FullMatches) > 0 {
		b.WriteString(fmt.Sprintf("\nPerfect matches (%d):\n", len(res.FullMatches)))
		for _, match := range res.FullMatches {
			b.WriteString("  " + cli.FormatMatch(match, res.TotalParticipants) + "\n")
		}
	} else if len(res.PartialMatches) > 0 {
		b.WriteString("\nBest partial matches:\n")
		for _, match := range res.PartialMatches {
			b.WriteString("  " + cli.FormatMatch(match, res.TotalParticipants) + "\n")
		}
	}

	return b.String()
}

func (m Model) viewEditor() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Your availability - %s", m.event.Title)))
	b.WriteString("\n\n")
	b.WriteString(m.editor.View())
	return b.String()
}
