package heatmap

import (
	"reflect"
	"testing"

	"github.com/imfreehq/imfree/internal/grid"
	"github.com/imfreehq/imfree/internal/models"
)

func testGrid(t *testing.T) grid.Grid {
	t.Helper()
	g, err := grid.Generate("2025-01-06", "2025-01-07", "09:00", "11:00")
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	return g
}

func avail(keys ...string) models.Availability {
	a := models.Availability{}
	for _, k := range keys {
		a[k] = true
	}
	return a
}

func TestAggregateCounts(t *testing.T) {
	g := testGrid(t)
	participants := []models.Participant{
		{Name: "Alice", Availability: avail("2025-01-06_09:00", "2025-01-06_09:30")},
		{Name: "Bob", Availability: avail("2025-01-06_09:00")},
	}

	res := Aggregate(g, participants)

	if res.TotalParticipants != 2 {
		t.Errorf("TotalParticipants = %d, want 2", res.TotalParticipants)
	}
	if got := res.Count("2025-01-06", "09:00"); got != 2 {
		t.Errorf("Count(09:00) = %d, want 2", got)
	}
	if got := res.Count("2025-01-06", "09:30"); got != 1 {
		t.Errorf("Count(09:30) = %d, want 1", got)
	}
	// Zero-count cells still have explicit entries
	if got, ok := res.Counts["2025-01-07_10:30"]; !ok || got != 0 {
		t.Errorf("Counts[empty cell] = %d (present=%v), want explicit 0", got, ok)
	}
	if len(res.Counts) != len(g.Dates)*len(g.Times) {
		t.Errorf("len(Counts) = %d, want %d", len(res.Counts), len(g.Dates)*len(g.Times))
	}
}

func TestAggregateCountsSumMatchesMarks(t *testing.T) {
	g := testGrid(t)
	participants := []models.Participant{
		{Name: "Alice", Availability: avail("2025-01-06_09:00", "2025-01-06_10:00", "2025-01-07_09:30")},
		{Name: "Bob", Availability: avail("2025-01-06_09:00", "2025-01-07_09:30")},
		{Name: "Carol", Availability: avail("2025-01-07_10:00")},
	}

	res := Aggregate(g, participants)

	marks := 0
	for _, p := range participants {
		marks += p.Availability.SelectedCount()
	}
	sum := 0
	for _, c := range res.Counts {
		sum += c
	}
	if sum != marks {
		t.Errorf("sum of counts = %d, want %d (total marked slots)", sum, marks)
	}
}

func TestAggregateNames(t *testing.T) {
	g := testGrid(t)
	participants := []models.Participant{
		{Name: "Carol", Availability: avail("2025-01-06_09:00")},
		{Name: "Alice", Availability: avail("2025-01-06_09:00")},
	}

	res := Aggregate(g, participants)

	// Names follow participant order, not alphabetical order
	want := []string{"Carol", "Alice"}
	if got := res.AvailableNames("2025-01-06", "09:00"); !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableNames() = %v, want %v", got, want)
	}
	if _, ok := res.Names["2025-01-06_09:30"]; ok {
		t.Error("Names should have no entry for an empty cell")
	}
}

func TestAggregatePartition(t *testing.T) {
	g := testGrid(t)
	participants := []models.Participant{
		{Name: "Alice", Availability: avail("2025-01-06_09:00", "2025-01-06_09:30")},
		{Name: "Bob", Availability: avail("2025-01-06_09:00")},
	}

	res := Aggregate(g, participants)

	if len(res.FullMatches) != 1 {
		t.Fatalf("FullMatches = %v, want exactly one", res.FullMatches)
	}
	if m := res.FullMatches[0]; m.Date != "2025-01-06" || m.Time != "09:00" || m.Count != 2 {
		t.Errorf("FullMatches[0] = %+v", m)
	}
	if len(res.PartialMatches) != 1 {
		t.Fatalf("PartialMatches = %v, want exactly one", res.PartialMatches)
	}
	if m := res.PartialMatches[0]; m.Date != "2025-01-06" || m.Time != "09:30" || m.Count != 1 {
		t.Errorf("PartialMatches[0] = %+v", m)
	}
}

func TestAggregateChronologicalTieBreak(t *testing.T) {
	g := testGrid(t)
	// Two equal-count partial cells on different days; the earlier one must
	// rank first.
	participants := []models.Participant{
		{Name: "Alice", Availability: avail("2025-01-07_09:00", "2025-01-06_10:00")},
		{Name: "Bob", Availability: nil},
	}

	res := Aggregate(g, participants)

	if len(res.PartialMatches) != 2 {
		t.Fatalf("PartialMatches = %v, want two", res.PartialMatches)
	}
	first, second := res.PartialMatches[0], res.PartialMatches[1]
	if first.Date != "2025-01-06" || first.Time != "10:00" {
		t.Errorf("first partial = %+v, want 2025-01-06 10:00", first)
	}
	if second.Date != "2025-01-07" || second.Time != "09:00" {
		t.Errorf("second partial = %+v, want 2025-01-07 09:00", second)
	}
}

func TestAggregateCountOrdersBeforeTime(t *testing.T) {
	g := testGrid(t)
	participants := []models.Participant{
		{Name: "Alice", Availability: avail("2025-01-06_09:00", "2025-01-07_09:00")},
		{Name: "Bob", Availability: avail("2025-01-07_09:00")},
		{Name: "Carol", Availability: nil},
	}

	res := Aggregate(g, participants)

	// The later slot has a higher count and must outrank the earlier one
	if len(res.PartialMatches) != 2 {
		t.Fatalf("PartialMatches = %v, want two", res.PartialMatches)
	}
	if m := res.PartialMatches[0]; m.Date != "2025-01-07" || m.Count != 2 {
		t.Errorf("top partial = %+v, want count-2 cell first", m)
	}
}

func TestAggregatePartialTruncation(t *testing.T) {
	// 2 days x 8 slots = 16 cells, all partial
	g, err := grid.Generate("2025-01-06", "2025-01-07", "09:00", "13:00")
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	everywhere := models.Availability{}
	for _, date := range g.Dates {
		for _, tm := range g.Times {
			everywhere[models.SlotKey(date, tm)] = true
		}
	}
	participants := []models.Participant{
		{Name: "Alice", Availability: everywhere},
		{Name: "Bob", Availability: nil},
	}

	res := Aggregate(g, participants)

	if len(res.FullMatches) != 0 {
		t.Errorf("FullMatches = %v, want none", res.FullMatches)
	}
	if len(res.PartialMatches) != 10 {
		t.Errorf("PartialMatches length = %d, want the top-10 cap", len(res.PartialMatches))
	}
	// With equal counts the cap keeps the earliest cells
	if m := res.PartialMatches[0]; m.Date != "2025-01-06" || m.Time != "09:00" {
		t.Errorf("first capped partial = %+v, want the chronologically first cell", m)
	}
}

func TestAggregateNoParticipants(t *testing.T) {
	g := testGrid(t)
	res := Aggregate(g, nil)

	if res.TotalParticipants != 0 {
		t.Errorf("TotalParticipants = %d, want 0", res.TotalParticipants)
	}
	for key, count := range res.Counts {
		if count != 0 {
			t.Errorf("Counts[%s] = %d, want 0", key, count)
		}
	}
	if len(res.FullMatches) != 0 || len(res.PartialMatches) != 0 {
		t.Error("no participants should produce no matches")
	}
	if res.IsFullMatch("2025-01-06", "09:00") {
		t.Error("IsFullMatch() must be false with zero participants")
	}
}

func TestIsFullMatch(t *testing.T) {
	g := testGrid(t)
	participants := []models.Participant{
		{Name: "Alice", Availability: avail("2025-01-06_09:00", "2025-01-06_09:30")},
		{Name: "Bob", Availability: avail("2025-01-06_09:00")},
	}

	res := Aggregate(g, participants)

	if !res.IsFullMatch("2025-01-06", "09:00") {
		t.Error("IsFullMatch() = false for a full cell")
	}
	if res.IsFullMatch("2025-01-06", "09:30") {
		t.Error("IsFullMatch() = true for a partial cell")
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		name  string
		count int
		total int
		want  Tier
	}{
		{"zero total", 0, 0, TierNone},
		{"zero count", 0, 5, TierNone},
		{"negative count", -1, 5, TierNone},
		{"below lowest boundary", 1, 10, TierLowest},
		{"exactly 0.2", 2, 10, TierLow},
		{"just under 0.4", 3, 10, TierLow},
		{"exactly 0.4", 4, 10, TierMedium},
		{"exactly 0.6", 6, 10, TierHigh},
		{"exactly 0.8", 8, 10, TierHighest},
		{"just under full", 9, 10, TierHighest},
		{"full", 10, 10, TierFull},
		{"one of one", 1, 1, TierFull},
		{"one of three", 1, 3, TierLow},
		{"two of three", 2, 3, TierHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierFor(tt.count, tt.total); got != tt.want {
				t.Errorf("TierFor(%d, %d) = %v, want %v", tt.count, tt.total, got, tt.want)
			}
		})
	}
}

func TestTierAt(t *testing.T) {
	g := testGrid(t)
	participants := []models.Participant{
		{Name: "Alice", Availability: avail("2025-01-06_09:00")},
		{Name: "Bob", Availability: avail("2025-01-06_09:00")},
	}

	res := Aggregate(g, participants)

	if got := res.TierAt("2025-01-06", "09:00"); got != TierFull {
		t.Errorf("TierAt(full cell) = %v, want TierFull", got)
	}
	if got := res.TierAt("2025-01-07", "10:00"); got != TierNone {
		t.Errorf("TierAt(empty cell) = %v, want TierNone", got)
	}
}
