package grid

import (
	"reflect"
	"testing"
)

func TestDateRangeInclusive(t *testing.T) {
	dates, err := DateRange("2025-01-06", "2025-01-08")
	if err != nil {
		t.Fatalf("DateRange() failed: %v", err)
	}

	want := []string{"2025-01-06", "2025-01-07", "2025-01-08"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("DateRange() = %v, want %v", dates, want)
	}
}

func TestDateRangeSingleDay(t *testing.T) {
	dates, err := DateRange("2025-01-10", "2025-01-10")
	if err != nil {
		t.Fatalf("DateRange() failed: %v", err)
	}
	if len(dates) != 1 || dates[0] != "2025-01-10" {
		t.Errorf("DateRange() = %v, want exactly the one date", dates)
	}
}

func TestDateRangeCrossesMonthBoundary(t *testing.T) {
	dates, err := DateRange("2025-01-30", "2025-02-02")
	if err != nil {
		t.Fatalf("DateRange() failed: %v", err)
	}
	want := []string{"2025-01-30", "2025-01-31", "2025-02-01", "2025-02-02"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("DateRange() = %v, want %v", dates, want)
	}
}

func TestDateRangeInverted(t *testing.T) {
	dates, err := DateRange("2025-01-08", "2025-01-06")
	if err != nil {
		t.Fatalf("DateRange() failed: %v", err)
	}
	if len(dates) != 0 {
		t.Errorf("inverted DateRange() = %v, want empty", dates)
	}
}

func TestDateRangeMalformed(t *testing.T) {
	if _, err := DateRange("06-01-2025", "2025-01-08"); err == nil {
		t.Error("DateRange() should reject a malformed start date")
	}
	if _, err := DateRange("2025-01-06", "nope"); err == nil {
		t.Error("DateRange() should reject a malformed end date")
	}
}

func TestTimeSlotsHalfOpen(t *testing.T) {
	slots, err := TimeSlots("09:00", "10:00")
	if err != nil {
		t.Fatalf("TimeSlots() failed: %v", err)
	}

	// endTime itself is never a slot
	want := []string{"09:00", "09:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("TimeSlots() = %v, want %v", slots, want)
	}
}

func TestTimeSlotsCount(t *testing.T) {
	// 09:00-17:00 is 8 hours: 16 half-hour slots
	slots, err := TimeSlots("09:00", "17:00")
	if err != nil {
		t.Fatalf("TimeSlots() failed: %v", err)
	}
	if len(slots) != 16 {
		t.Errorf("TimeSlots() returned %d slots, want 16", len(slots))
	}
	if slots[0] != "09:00" || slots[15] != "16:30" {
		t.Errorf("TimeSlots() bounds = %s..%s, want 09:00..16:30", slots[0], slots[15])
	}
}

func TestTimeSlotsPartialTrailingInterval(t *testing.T) {
	// A window not divisible by 30 minutes drops the partial tail
	slots, err := TimeSlots("09:00", "10:15")
	if err != nil {
		t.Fatalf("TimeSlots() failed: %v", err)
	}
	want := []string{"09:00", "09:30", "10:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("TimeSlots() = %v, want %v", slots, want)
	}
}

func TestTimeSlotsOffsetStart(t *testing.T) {
	// Slots align to the start time's own minute value
	slots, err := TimeSlots("09:15", "10:45")
	if err != nil {
		t.Fatalf("TimeSlots() failed: %v", err)
	}
	want := []string{"09:15", "09:45", "10:15"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("TimeSlots() = %v, want %v", slots, want)
	}
}

func TestTimeSlotsInverted(t *testing.T) {
	slots, err := TimeSlots("17:00", "09:00")
	if err != nil {
		t.Fatalf("TimeSlots() failed: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("inverted TimeSlots() = %v, want empty", slots)
	}

	slots, err = TimeSlots("09:00", "09:00")
	if err != nil {
		t.Fatalf("TimeSlots() failed: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("equal-bounds TimeSlots() = %v, want empty", slots)
	}
}

func TestGenerateCellCount(t *testing.T) {
	g, err := Generate("2025-01-06", "2025-01-08", "09:00", "17:00")
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if len(g.Dates) != 3 {
		t.Errorf("Generate() dates = %d, want 3", len(g.Dates))
	}
	if len(g.Times) != 16 {
		t.Errorf("Generate() times = %d, want 16", len(g.Times))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate("2025-01-06", "2025-01-07", "09:00", "12:00")
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	b, err := Generate("2025-01-06", "2025-01-07", "09:00", "12:00")
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("Generate() is not deterministic for identical inputs")
	}
}

func TestContains(t *testing.T) {
	g, err := Generate("2025-01-06", "2025-01-07", "09:00", "10:00")
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if !g.Contains("2025-01-06", "09:30") {
		t.Error("Contains() = false for an in-grid cell")
	}
	if g.Contains("2025-01-08", "09:30") {
		t.Error("Contains() = true for an out-of-range date")
	}
	if g.Contains("2025-01-06", "10:00") {
		t.Error("Contains() = true for the excluded end time")
	}
	if g.Contains("2025-01-06", "09:15") {
		t.Error("Contains() = true for an off-step time")
	}
}
