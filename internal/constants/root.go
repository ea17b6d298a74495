package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "imfree"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/imfree/imfree.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// SlotKeySeparator joins a date and a time into a slot key ("2025-01-06_09:00").
	// The key format is shared with stored availability maps and must not change.
	SlotKeySeparator = "_"

	// SlotStepMinutes is the width of one availability slot.
	SlotStepMinutes = 30

	// PartialMatchLimit caps how many partial matches are surfaced.
	PartialMatchLimit = 10

	// DefaultStartTime and DefaultEndTime are the prefilled daily window for new events.
	DefaultStartTime = "09:00"
	DefaultEndTime   = "17:00"

	// Session States
	StateEvents SessionState = iota
	StateHeatMap
	StateAvailability
	StateJoinForm
)
