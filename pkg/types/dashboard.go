// Package types holds the public data types of the schemetrack API: the
// display bundles served over HTTP and consumed by pkg/client. Everything
// here is a plain value, fully resolved for display; the presentation layer
// applies no business logic of its own.
package types

// Bucket is the display classification of how soon or overdue a deadline is.
type Bucket string

const (
	// BucketUnknown means no usable days-remaining figure exists.
	BucketUnknown Bucket = "unknown"

	// BucketUrgent covers overdue deadlines and anything due within 7 days.
	BucketUrgent Bucket = "overdue_or_urgent"

	// BucketSoon covers deadlines 7 to 14 days out.
	BucketSoon Bucket = "soon"

	// BucketMid covers deadlines 15 to 29 days out.
	BucketMid Bucket = "mid"

	// BucketSafe covers deadlines 30 or more days out.
	BucketSafe Bucket = "safe"
)

// OverviewRow is one dashboard table row.
type OverviewRow struct {
	RowID           string `json:"row_id"`
	Scheme          string `json:"scheme"`
	Ministry        string `json:"ministry,omitempty"`
	StagePath       string `json:"stage_path,omitempty"`
	BudgetCrores    string `json:"budget_crores"`
	IncentiveCrores string `json:"incentive_crores"`
	Deadline        string `json:"deadline"`
	DaysLeft        string `json:"days_left"`
	Urgency         Bucket `json:"urgency"`
}

// Summary aggregates the whole collection for the dashboard header.
type Summary struct {
	SchemeCount          int    `json:"scheme_count"`
	TotalIncentiveCrores string `json:"total_incentive_crores"`
	LastUpdated          string `json:"last_updated"`
}

// Overview is the complete dashboard payload.
type Overview struct {
	Summary Summary       `json:"summary"`
	Rows    []OverviewRow `json:"rows"`
}

// StageInfo is one of the three fixed stage slots on the detail page.
type StageInfo struct {
	Name     string `json:"name"`     // stage label or "-"
	Deadline string `json:"deadline"` // formatted date or "Unknown"
}

// MilestoneView is a resolved milestone.
type MilestoneView struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Date  string `json:"date"`
}

// Chart carries the two numeric inputs of the budget proportion
// visualization; drawing is the presentation layer's concern.
type Chart struct {
	Incentive float64 `json:"incentive"`
	Budget    float64 `json:"budget"`
}

// Detail is the complete per-scheme payload.
type Detail struct {
	RowID       string `json:"row_id"`
	Scheme      string `json:"scheme"`
	Ministry    string `json:"ministry,omitempty"`
	Description string `json:"description,omitempty"`

	Commencement string      `json:"commencement"`
	Stages       []StageInfo `json:"stages"`

	NextMilestone *MilestoneView `json:"next_milestone,omitempty"`
	PrevMilestone *MilestoneView `json:"prev_milestone,omitempty"`

	// NextDeadline is the date text shown beside the days-left pill: the
	// next milestone's date, the final deadline, or the raw feed text.
	NextDeadline string `json:"next_deadline"`
	NextDaysLeft string `json:"next_days_left"`
	NextUrgency  Bucket `json:"next_urgency"`

	FinalDaysLeft string `json:"final_days_left"`
	FinalUrgency  Bucket `json:"final_urgency"`

	SegmentProgressPercent int `json:"segment_progress_percent"`
	OverallProgressPercent int `json:"overall_progress_percent"`

	SharePercent    int    `json:"share_percent"`
	AppliedCrores   string `json:"applied_crores"`
	RemainingCrores string `json:"remaining_crores"`
	Chart           Chart  `json:"chart"`

	Status    []string `json:"status"`
	Pending   []string `json:"pending"`
	Ongoing   []string `json:"ongoing"`
	Completed []string `json:"completed"`
}
