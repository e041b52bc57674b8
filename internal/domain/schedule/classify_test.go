package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lohum/schemetrack/pkg/types"
)

func TestDaysRemaining(t *testing.T) {
	today := Date(2024, time.June, 15)

	assert.Equal(t, 0, DaysRemaining(today, Date(2024, time.June, 15)))
	assert.Equal(t, 3, DaysRemaining(today, Date(2024, time.June, 18)))
	assert.Equal(t, -5, DaysRemaining(today, Date(2024, time.June, 10)))

	// Time-of-day components are truncated before differencing.
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2024, time.June, 15, 18, 30, 0, 0, loc)
	target := time.Date(2024, time.June, 16, 9, 0, 0, 0, loc)
	assert.Equal(t, 1, DaysRemaining(now, target))
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		days int
		want types.Bucket
	}{
		{-1, types.BucketUrgent},
		{0, types.BucketUrgent},
		{6, types.BucketUrgent},
		{7, types.BucketSoon},
		{14, types.BucketSoon},
		{15, types.BucketMid},
		{29, types.BucketMid},
		{30, types.BucketSafe},
		{365, types.BucketSafe},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(KnownDays(tc.days)), "days=%d", tc.days)
	}

	assert.Equal(t, types.BucketUnknown, Classify(UnknownDays()))
}

// Urgency must be monotonic non-increasing as days-remaining grows.
func TestClassifyMonotonic(t *testing.T) {
	rank := map[types.Bucket]int{
		types.BucketUrgent: 3,
		types.BucketSoon:   2,
		types.BucketMid:    1,
		types.BucketSafe:   0,
	}
	prev := rank[Classify(KnownDays(-30))]
	for d := -29; d <= 60; d++ {
		cur := rank[Classify(KnownDays(d))]
		assert.LessOrEqual(t, cur, prev, "days=%d", d)
		prev = cur
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Unknown", Label(UnknownDays()))
	assert.Equal(t, "Overdue 3d", Label(KnownDays(-3)))
	assert.Equal(t, "0 days", Label(KnownDays(0)))
	assert.Equal(t, "1 day", Label(KnownDays(1)))
	assert.Equal(t, "12 days", Label(KnownDays(12)))
}
