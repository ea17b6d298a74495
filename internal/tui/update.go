package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/imfreehq/imfree/internal/constants"
	"github.com/imfreehq/imfree/internal/tui/components/editor"
	"github.com/imfreehq/imfree/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// The join form owns all keys while it is active
		if m.state == constants.StateJoinForm {
			return m.updateJoinForm(msg)
		}

		if key.Matches(msg, m.keys.Quit) && m.state != constants.StateAvailability {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		switch m.state {
		case constants.StateEvents:
			return m.updateEvents(msg)
		case constants.StateHeatMap:
			return m.updateHeatMap(msg)
		case constants.StateAvailability:
			return m.updateEditor(msg)
		}
	}

	if m.state == constants.StateJoinForm && m.form != nil {
		return m.updateJoinForm(msg)
	}

	return m, nil
}

func (m Model) updateEvents(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.eventList.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.eventList.MoveDown()
	case key.Matches(msg, m.keys.Refresh):
		if events, err := m.store.GetAllEvents(); err == nil {
			m.eventList.SetEvents(events)
		}
	case key.Matches(msg, m.keys.Enter):
		if event, ok := m.eventList.Selected(); ok {
			m.openEvent(event)
		}
	}
	return m, nil
}

func (m Model) updateHeatMap(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.heatGrid.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.heatGrid.MoveDown()
	case key.Matches(msg, m.keys.Left):
		m.heatGrid.MoveLeft()
	case key.Matches(msg, m.keys.Right):
		m.heatGrid.MoveRight()
	case key.Matches(msg, m.keys.Back):
		m.state = constants.StateEvents
		m.status = ""
		m.statusErr = ""
	case key.Matches(msg, m.keys.Refresh):
		m.refresh()
	case key.Matches(msg, m.keys.Edit):
		return m.startEditing()
	case key.Matches(msg, m.keys.Join):
		return m.startJoinForm()
	case key.Matches(msg, m.keys.Confirm):
		return m.confirmSelected()
	}
	return m, nil
}

func (m Model) startEditing() (tea.Model, tea.Cmd) {
	if m.event == nil {
		return m, nil
	}
	if m.currentUser == "" {
		m.statusErr = "log in first: imfree login <username>"
		return m, nil
	}
	participant, ok := m.event.Participant(m.currentUser)
	if !ok {
		m.statusErr = "you have not joined this event yet, press J to join"
		return m, nil
	}

	m.editor = editor.New(m.grid, participant.Availability)
	m.editor.Col = m.heatGrid.Col
	m.editor.Row = m.heatGrid.Row
	m.state = constants.StateAvailability
	m.status = ""
	m.statusErr = ""
	return m, nil
}

func (m Model) startJoinForm() (tea.Model, tea.Cmd) {
	if m.event == nil {
		return m, nil
	}
	if m.currentUser == "" {
		m.statusErr = "log in first: imfree login <username>"
		return m, nil
	}
	if _, ok := m.event.Participant(m.currentUser); ok {
		m.statusErr = "you already joined this event"
		return m, nil
	}

	joinForm := &JoinFormModel{Name: m.currentUser}
	if username, err := m.store.GetCurrentUser(); err == nil && username != "" {
		if user, err := m.store.GetUser(username); err == nil {
			joinForm.Email = user.Email
		}
	}

	m.joinForm = joinForm
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&joinForm.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Email (optional)").
				Value(&joinForm.Email),
		),
	)
	m.state = constants.StateJoinForm
	m.status = ""
	m.statusErr = ""
	return m, m.form.Init()
}

func (m Model) updateJoinForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.form = nil
		m.state = constants.StateHeatMap
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		event := *m.event
		if err := event.Join(m.joinForm.Name, m.joinForm.Email, nil); err != nil {
			m.statusErr = err.Error()
		} else if err := m.store.SaveEvent(event); err != nil {
			m.statusErr = err.Error()
		} else {
			m.status = fmt.Sprintf("joined as %s", m.joinForm.Name)
		}
		m.form = nil
		m.state = constants.StateHeatMap
		m.refresh()
		return m, nil
	}

	return m, cmd
}

// confirmSelected confirms a meeting for the slot under the cursor. The TUI
// only offers confirmation for slots where everyone is available; the CLI
// confirm command is the escape hatch for deliberate partial-match meetings.
func (m Model) confirmSelected() (tea.Model, tea.Cmd) {
	if m.event == nil {
		return m, nil
	}
	if m.currentUser == "" {
		m.statusErr = "log in first: imfree login <username>"
		return m, nil
	}

	date, timeOfDay, ok := m.heatGrid.SelectedSlot()
	if !ok {
		return m, nil
	}
	if !m.heatGrid.Result.IsFullMatch(date, timeOfDay) {
		m.statusErr = "not everyone is free then; use 'imfree confirm' to override"
		return m, nil
	}

	event := *m.event
	meeting, added, err := event.ConfirmMeeting(date, timeOfDay, m.currentUser, time.Now())
	if err != nil {
		m.statusErr = err.Error()
		return m, nil
	}
	if !added {
		m.status = fmt.Sprintf("already confirmed by %s", meeting.ConfirmedBy)
		return m, nil
	}
	if err := m.store.SaveEvent(event); err != nil {
		m.statusErr = err.Error()
		return m, nil
	}

	m.status = fmt.Sprintf("confirmed %s", utils.FormatDateTime(date, timeOfDay))
	m.statusErr = ""
	m.refresh()
	return m, nil
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.editor.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.editor.MoveDown()
	case key.Matches(msg, m.keys.Left):
		m.editor.MoveLeft()
	case key.Matches(msg, m.keys.Right):
		m.editor.MoveRight()
	case key.Matches(msg, m.keys.Toggle):
		m.editor.Toggle()
	case key.Matches(msg, m.keys.Back):
		// Abandon edits
		m.state = constants.StateHeatMap
	case key.Matches(msg, m.keys.Save), key.Matches(msg, m.keys.Enter):
		event := *m.event
		if err := event.SetAvailability(m.currentUser, m.editor.Selection); err != nil {
			m.statusErr = err.Error()
		} else if err := m.store.SaveEvent(event); err != nil {
			m.statusErr = err.Error()
		} else {
			m.status = fmt.Sprintf("saved %d slots", m.editor.Selection.SelectedCount())
		}
		m.state = constants.StateHeatMap
		m.refresh()
	}
	return m, nil
}
