package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNext(t *testing.T) {
	today := Date(2024, time.June, 15)

	commencement := Milestone{Key: "commencement", Label: "Commencement", Date: Date(2024, time.January, 1)}
	stage1 := Milestone{Key: "stage1", Label: "Stage 1 deadline", Date: Date(2024, time.May, 1)}
	stage2 := Milestone{Key: "stage2", Label: "Stage 2 deadline", Date: Date(2024, time.September, 1)}
	stage3 := Milestone{Key: "stage3", Label: "Stage 3 deadline", Date: Date(2025, time.March, 1)}
	undated := Milestone{Key: "stage2", Label: "Stage 2 deadline"}

	t.Run("stage1 past, stage2 future", func(t *testing.T) {
		next, prev := ResolveNext([]Milestone{commencement, stage1, stage2, stage3}, today)
		require.NotNil(t, next)
		require.NotNil(t, prev)
		assert.Equal(t, "stage2", next.Key)
		assert.Equal(t, "stage1", prev.Key)
	})

	t.Run("undated milestones are skipped", func(t *testing.T) {
		next, prev := ResolveNext([]Milestone{commencement, stage1, undated, stage3}, today)
		require.NotNil(t, next)
		assert.Equal(t, "stage3", next.Key)
		assert.Equal(t, "stage1", prev.Key)
	})

	t.Run("next is first milestone", func(t *testing.T) {
		next, prev := ResolveNext([]Milestone{stage2, stage3}, today)
		require.NotNil(t, next)
		assert.Equal(t, "stage2", next.Key)
		// Previous degrades to the first entry.
		assert.Equal(t, "stage2", prev.Key)
	})

	t.Run("all past degrades to final milestone", func(t *testing.T) {
		next, prev := ResolveNext([]Milestone{commencement, stage1}, today)
		require.NotNil(t, next)
		assert.Equal(t, "stage1", next.Key)
		assert.Equal(t, "commencement", prev.Key)
	})

	t.Run("milestone due today counts as next", func(t *testing.T) {
		dueToday := Milestone{Key: "stage1", Label: "Stage 1 deadline", Date: today}
		next, _ := ResolveNext([]Milestone{commencement, dueToday, stage2}, today)
		require.NotNil(t, next)
		assert.Equal(t, "stage1", next.Key)
	})

	t.Run("no dated milestones", func(t *testing.T) {
		next, prev := ResolveNext([]Milestone{undated}, today)
		assert.Nil(t, next)
		assert.Nil(t, prev)
	})
}

func TestSegmentProgress(t *testing.T) {
	start := Date(2024, time.June, 1)
	end := Date(2024, time.June, 11)

	assert.Equal(t, 0.0, SegmentProgress(start, start, end))
	assert.Equal(t, 1.0, SegmentProgress(end, start, end))
	assert.InDelta(t, 0.5, SegmentProgress(Date(2024, time.June, 6), start, end), 1e-9)
	assert.InDelta(t, 0.2, SegmentProgress(Date(2024, time.June, 3), start, end), 1e-9)

	// Clamped outside the range.
	assert.Equal(t, 0.0, SegmentProgress(Date(2024, time.May, 20), start, end))
	assert.Equal(t, 1.0, SegmentProgress(Date(2024, time.July, 1), start, end))

	// Degenerate inputs.
	assert.Equal(t, 0.0, SegmentProgress(start, time.Time{}, end))
	assert.Equal(t, 0.0, SegmentProgress(start, start, time.Time{}))
	assert.Equal(t, 0.0, SegmentProgress(start, end, start), "inverted range")
	assert.Equal(t, 0.0, SegmentProgress(start, start, start), "zero-length range")
}

func TestSegmentProgressNeverEscapesUnitInterval(t *testing.T) {
	start := Date(2024, time.January, 10)
	end := Date(2024, time.February, 10)
	for d := -20; d <= 60; d++ {
		today := start.AddDate(0, 0, d)
		p := SegmentProgress(today, start, end)
		assert.GreaterOrEqual(t, p, 0.0, "offset=%d", d)
		assert.LessOrEqual(t, p, 1.0, "offset=%d", d)
	}
}
