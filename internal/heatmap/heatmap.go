// Package heatmap aggregates participant availability over a slot grid. It
// is a stateless pure function of (grid, participants): callers recompute it
// whenever availability, the participant set, or the grid changes, rather
// than patching earlier results.
package heatmap

import (
	"sort"

	"github.com/imfreehq/imfree/internal/constants"
	"github.com/imfreehq/imfree/internal/grid"
	"github.com/imfreehq/imfree/internal/models"
)

// Match is a ranked (date, time) cell with its availability count.
type Match struct {
	Date  string
	Time  string
	Count int
}

// Result holds everything derived from one aggregation pass.
type Result struct {
	// Counts maps slot keys to the number of available participants. Every
	// grid cell has an entry, including zero-count cells.
	Counts map[string]int
	// Names maps slot keys to the names of the available participants, in
	// participant order. Only non-empty cells have entries.
	Names map[string][]string
	// FullMatches are the cells where every participant is available, sorted
	// by count descending then chronologically. Unbounded.
	FullMatches []Match
	// PartialMatches are the cells where some but not all participants are
	// available, sorted the same way and truncated to the top 10.
	PartialMatches []Match
	// TotalParticipants is the participant count the tiers are relative to.
	TotalParticipants int
}

// Aggregate counts, partitions and ranks availability across the grid.
// Participants with empty or nil availability maps simply count nowhere; an
// empty participant list yields all-zero counts and no matches.
func Aggregate(g grid.Grid, participants []models.Participant) Result {
	res := Result{
		Counts:            make(map[string]int, len(g.Dates)*len(g.Times)),
		Names:             make(map[string][]string),
		TotalParticipants: len(participants),
	}

	// Dates outer, times inner: the iteration order is the chronological
	// tie-break order for the stable sorts below.
	var nonZero []Match
	for _, date := range g.Dates {
		for _, t := range g.Times {
			key := models.SlotKey(date, t)
			count := 0
			for _, p := range participants {
				if p.Availability[key] {
					count++
					res.Names[key] = append(res.Names[key], p.Name)
				}
			}
			res.Counts[key] = count
			if count > 0 {
				nonZero = append(nonZero, Match{Date: date, Time: t, Count: count})
			}
		}
	}

	for _, m := range nonZero {
		if m.Count == len(participants) {
			res.FullMatches = append(res.FullMatches, m)
		} else {
			res.PartialMatches = append(res.PartialMatches, m)
		}
	}

	sort.SliceStable(res.FullMatches, func(i, j int) bool {
		return res.FullMatches[i].Count > res.FullMatches[j].Count
	})
	sort.SliceStable(res.PartialMatches, func(i, j int) bool {
		return res.PartialMatches[i].Count > res.PartialMatches[j].Count
	})
	if len(res.PartialMatches) > constants.PartialMatchLimit {
		res.PartialMatches = res.PartialMatches[:constants.PartialMatchLimit]
	}

	return res
}

// Count returns the availability count for a cell.
func (r Result) Count(date, timeOfDay string) int {
	return r.Counts[models.SlotKey(date, timeOfDay)]
}

// AvailableNames returns who is available for a cell.
func (r Result) AvailableNames(date, timeOfDay string) []string {
	return r.Names[models.SlotKey(date, timeOfDay)]
}

// IsFullMatch reports whether every participant is available for the cell.
// Always false with zero participants.
func (r Result) IsFullMatch(date, timeOfDay string) bool {
	return r.TotalParticipants > 0 && r.Count(date, timeOfDay) == r.TotalParticipants
}

// Tier buckets a cell for presentation intensity.
type Tier int

const (
	TierNone Tier = iota
	TierLowest
	TierLow
	TierMedium
	TierHigh
	TierHighest
	TierFull
)

// TierFor classifies count/total into the six intensity tiers at the
// canonical 0.2/0.4/0.6/0.8 boundaries, inclusive on the lower side.
// TierFull requires every participant, not just a ratio rounding to 1.
// A zero total is TierNone, never a division error.
func TierFor(count, total int) Tier {
	if total == 0 || count <= 0 {
		return TierNone
	}
	if count >= total {
		return TierFull
	}
	ratio := float64(count) / float64(total)
	switch {
	case ratio >= 0.8:
		return TierHighest
	case ratio >= 0.6:
		return TierHigh
	case ratio >= 0.4:
		return TierMedium
	case ratio >= 0.2:
		return TierLow
	default:
		return TierLowest
	}
}

// TierAt classifies a cell of this result.
func (r Result) TierAt(date, timeOfDay string) Tier {
	return TierFor(r.Count(date, timeOfDay), r.TotalParticipants)
}
