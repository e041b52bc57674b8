package schedule

import "time"

// Milestone is one named point in a scheme's lifecycle. A zero Date means
// the feed carried no parseable date for it.
type Milestone struct {
	Key   string
	Label string
	Date  time.Time
}

// HasDate reports whether the milestone carries a usable date.
func (m Milestone) HasDate() bool { return !m.Date.IsZero() }

// ResolveNext scans the milestones in their given order (commencement,
// stage 1..N) after dropping undated entries, and returns the next upcoming
// milestone together with the one immediately preceding it.
//
// The first dated milestone on or after today is "next"; "previous" is the
// entry before it in the filtered order, or the first entry when "next" is
// itself first. When every milestone is in the past the last one is returned
// as "next" so the caller degrades to showing the final, overdue milestone.
// Both results are nil when no milestone has a date.
func ResolveNext(milestones []Milestone, today time.Time) (next, previous *Milestone) {
	dated := make([]Milestone, 0, len(milestones))
	for _, m := range milestones {
		if m.HasDate() {
			dated = append(dated, m)
		}
	}
	if len(dated) == 0 {
		return nil, nil
	}

	today = Midnight(today)
	idx := len(dated) - 1
	for i, m := range dated {
		if !m.Date.Before(today) {
			idx = i
			break
		}
	}

	prevIdx := 0
	if idx > 0 {
		prevIdx = idx - 1
	}
	return &dated[idx], &dated[prevIdx]
}

// SegmentProgress returns the fraction of time elapsed between start and
// end as of today, clamped to [0, 1]. Missing endpoints and inverted or
// zero-length ranges yield 0.
func SegmentProgress(today, start, end time.Time) float64 {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	start, end, today = Midnight(start), Midnight(end), Midnight(today)
	if !end.After(start) {
		return 0
	}
	if !today.After(start) {
		return 0
	}
	if !today.Before(end) {
		return 1
	}
	return float64(today.Sub(start)) / float64(end.Sub(start))
}
