// Package heatgrid renders the availability heat map: dates across the top,
// time slots down the side, cells colored by how many participants are free.
package heatgrid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imfreehq/imfree/internal/grid"
	"github.com/imfreehq/imfree/internal/heatmap"
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

	confirmedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("28")).
			Bold(true)

	tierStyles = map[heatmap.Tier]lipgloss.Style{
		heatmap.TierNone:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		heatmap.TierLowest:  lipgloss.NewStyle().Foreground(lipgloss.Color("24")),
		heatmap.TierLow:     lipgloss.NewStyle().Foreground(lipgloss.Color("31")),
		heatmap.TierMedium:  lipgloss.NewStyle().Foreground(lipgloss.Color("38")),
		heatmap.TierHigh:    lipgloss.NewStyle().Foreground(lipgloss.Color("44")),
		heatmap.TierHighest: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		heatmap.TierFull:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	}
)

// TierStyle returns the style for an intensity tier.
func TierStyle(t heatmap.Tier) lipgloss.Style {
	return tierStyles[t]
}

// Options controls optional render features. The zero value renders a plain
// grid with no cursor and no confirmed markers.
type Options struct {
	CursorCol int // date index
	CursorRow int // time index
	HasCursor bool
	Confirmed map[string]bool // slot keys of confirmed meetings
}

// Render draws the heat map as a fixed-width grid. Every cell shows its
// count; confirmed meeting cells are marked with a check.
func Render(g grid.Grid, res heatmap.Result, opts Options) string {
	if len(g.Dates) == 0 || len(g.Times) == 0 {
		return "No slots in this event's date/time window."
	}

	var b strings.Builder

	// Header row with short dates
	b.WriteString(timeStyle.Render(""))
	for _, date := range g.Dates {
		b.WriteString(headerStyle.Render(pad(utils.FormatDateShort(date))))
	}
	b.WriteString("\n")

	for row, t := range g.Times {
		b.WriteString(timeStyle.Render(utils.FormatTime12(t)))
		for col, date := range g.Dates {
			key := models.SlotKey(date, t)
			label := pad(cellLabel(res.Counts[key], res.TotalParticipants, opts.Confirmed[key]))

			style := TierStyle(res.TierAt(date, t))
			if opts.Confirmed[key] {
				style = confirmedStyle
			}
			if opts.HasCursor && opts.CursorCol == col && opts.CursorRow == row {
				style = cursorStyle
			}
			b.WriteString(style.Render(label))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Legend explains the cell notation under a rendered grid.
func Legend(total int) string {
	full := TierStyle(heatmap.TierFull).Render("n/n")
	confirmed := confirmedStyle.Render(" ✓ ")
	return fmt.Sprintf("cells show available/total of %d participants, %s = everyone free, %s = confirmed", total, full, confirmed)
}

func cellLabel(count, total int, confirmed bool) string {
	label := fmt.Sprintf("%d/%d", count, total)
	if confirmed {
		label += " ✓"
	}
	return label
}

// Model is the interactive heat map: a cursor over the rendered grid.
type Model struct {
	Grid      grid.Grid
	Result    heatmap.Result
	Confirmed map[string]bool
	Col       int // date index
	Row       int // time index
}

func New(g grid.Grid, res heatmap.Result, confirmed map[string]bool) Model {
	return Model{
		Grid:      g,
		Result:    res,
		Confirmed: confirmed,
	}
}

// SetData replaces the grid and aggregation, clamping the cursor.
func (m *Model) SetData(g grid.Grid, res heatmap.Result, confirmed map[string]bool) {
	m.Grid = g
	m.Result = res
	m.Confirmed = confirmed
	if m.Col >= len(g.Dates) {
		m.Col = max(0, len(g.Dates)-1)
	}
	if m.Row >= len(g.Times) {
		m.Row = max(0, len(g.Times)-1)
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

// SelectedSlot returns the (date, time) under the cursor.
func (m Model) SelectedSlot() (string, string, bool) {
	if m.Col >= len(m.Grid.Dates) || m.Row >= len(m.Grid.Times) {
		return "", "", false
	}
	return m.Grid.Dates[m.Col], m.Grid.Times[m.Row], true
}

func (m Model) View() string {
	return Render(m.Grid, m.Result, Options{
		CursorCol: m.Col,
		CursorRow: m.Row,
		HasCursor: true,
		Confirmed: m.Confirmed,
	})
}

func pad(s string) string {
	// lipgloss.Width counts display cells, which matters for the check mark
	if w := lipgloss.Width(s); w < cellWidth {
		return s + strings.Repeat(" ", cellWidth-w)
	}
	return s
}
