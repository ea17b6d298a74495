package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/imfreehq/imfree/internal/constants"
	"github.com/imfreehq/imfree/internal/grid"
	"github.com/imfreehq/imfree/internal/heatmap"
	"github.com/imfreehq/imfree/internal/models"
	"github.com/imfreehq/imfree/internal/storage"
	"github.com/imfreehq/imfree/internal/tui/components/editor"
	"github.com/imfreehq/imfree/internal/tui/components/events"
	"github.com/imfreehq/imfree/internal/tui/components/heatgrid"
)

// JoinFormModel backs the huh join form.
type JoinFormModel struct {
	Name  string
	Email string
}

type Model struct {
	store       storage.Provider
	state       constants.SessionState
	keys        KeyMap
	help        help.Model
	currentUser string // display name of the logged-in account, "" if none

	eventList events.Model
	event     *models.Event
	grid      grid.Grid
	heatGrid  heatgrid.Model
	editor    editor.Model

	form     *huh.Form
	joinForm *JoinFormModel

	quitting  bool
	width     int
	height    int
	status    string
	statusErr string
}

func NewModel(store storage.Provider, eventID string) Model {
	allEvents, err := store.GetAllEvents()
	if err != nil {
		allEvents = nil
	}

	currentUser := ""
	if username, err := store.GetCurrentUser(); err == nil && username != "" {
		if user, err := store.GetUser(username); err == nil {
			currentUser = user.Name
		}
	}

	m := Model{
		store:       store,
		state:       constants.StateEvents,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		currentUser: currentUser,
		eventList:   events.New(allEvents),
	}

	// Jump straight to the heat map when an event ID was given
	if eventID != "" {
		for i, e := range allEvents {
			if e.ID == eventID {
				m.eventList.Cursor = i
				m.openEvent(e)
				break
			}
		}
	}

	return m
}

// openEvent loads an event into the heat map view.
func (m *Model) openEvent(event models.Event) {
	g, err := grid.Generate(event.StartDate, event.EndDate, event.StartTime, event.EndTime)
	if err != nil {
		m.statusErr = err.Error()
		return
	}

	m.event = &event
	m.grid = g
	m.heatGrid = heatgrid.New(g, heatmap.Aggregate(g, event.Participants), confirmedSlots(event))
	m.state = constants.StateHeatMap
	m.status = ""
	m.statusErr = ""
}

// refresh re-reads the open event from storage and re-aggregates.
func (m *Model) refresh() {
	if m.event == nil {
		return
	}
	event, err := m.store.GetEvent(m.event.ID)
	if err != nil {
		m.statusErr = err.Error()
		return
	}
	m.event = &event
	m.heatGrid.SetData(m.grid, heatmap.Aggregate(m.grid, event.Participants), confirmedSlots(event))
}

func confirmedSlots(event models.Event) map[string]bool {
	confirmed := make(map[string]bool, len(event.Meetings))
	for _, meeting := range event.Meetings {
		confirmed[models.SlotKey(meeting.Date, meeting.Time)] = true
	}
	return confirmed
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case constants.StateEvents:
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Refresh, m.keys.Quit}
	case constants.StateHeatMap:
		return []key.Binding{m.keys.Edit, m.keys.Join, m.keys.Confirm, m.keys.Back, m.keys.Quit}
	case constants.StateAvailability:
		return []key.Binding{m.keys.Toggle, m.keys.Save, m.keys.Back}
	default:
		return []key.Binding{m.keys.Back, m.keys.Quit}
	}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter},
		{m.keys.Edit, m.keys.Join, m.keys.Confirm, m.keys.Toggle, m.keys.Save},
		{m.keys.Refresh, m.keys.Back, m.keys.Help, m.keys.Quit},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
