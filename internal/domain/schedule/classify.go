package schedule

import (
	"fmt"
	"time"

	"github.com/lohum/schemetrack/pkg/types"
)

// DaysLeft is an optional integer count of days remaining. Known=false
// stands in for the "no deadline" case.
type DaysLeft struct {
	Days  int
	Known bool
}

// KnownDays wraps an integer count into a known DaysLeft.
func KnownDays(n int) DaysLeft { return DaysLeft{Days: n, Known: true} }

// UnknownDays returns the "no usable figure" value.
func UnknownDays() DaysLeft { return DaysLeft{} }

// DaysRemaining computes the calendar-day difference between target and
// today. Both are truncated to midnight first, so partial days count as a
// full day toward the target. Negative values mean the target has passed.
func DaysRemaining(today, target time.Time) int {
	diff := Midnight(target).Sub(Midnight(today))
	return int(diff / (24 * time.Hour))
}

// Classify maps a days-remaining figure to its urgency bucket. The
// thresholds are presentation policy and downstream display keys off them:
// <7 (incl. negative) urgent, <15 soon, <30 mid, >=30 safe.
func Classify(days DaysLeft) types.Bucket {
	switch {
	case !days.Known:
		return types.BucketUnknown
	case days.Days < 7:
		return types.BucketUrgent
	case days.Days < 15:
		return types.BucketSoon
	case days.Days < 30:
		return types.BucketMid
	default:
		return types.BucketSafe
	}
}

// Label renders the human-readable days-left text: "Unknown", "Overdue Nd",
// "1 day", or "N days".
func Label(days DaysLeft) string {
	switch {
	case !days.Known:
		return "Unknown"
	case days.Days < 0:
		return fmt.Sprintf("Overdue %dd", -days.Days)
	case days.Days == 1:
		return "1 day"
	default:
		return fmt.Sprintf("%d days", days.Days)
	}
}
