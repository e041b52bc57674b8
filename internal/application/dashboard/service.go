// Package dashboard assembles the display bundles of pkg/types from feed
// records. Handlers pass in the wall-clock "today" once per request;
// everything below that is a pure transform, so the presentation layer
// applies no business logic of its own.
package dashboard

import (
	"math"
	"strings"
	"time"

	"github.com/lohum/schemetrack/internal/domain/schedule"
	"github.com/lohum/schemetrack/internal/domain/scheme"
	"github.com/lohum/schemetrack/internal/infrastructure/monitoring/logging"
	"github.com/lohum/schemetrack/pkg/errors"
	"github.com/lohum/schemetrack/pkg/types"
)

// Provider hands out the current feed snapshot. Implementations return a
// CodeFeedUnavailable error when no snapshot has ever been loaded.
type Provider interface {
	Current() (*scheme.Feed, error)
}

// Service builds display bundles from the current feed snapshot.
type Service struct {
	feed   Provider
	logger logging.Logger
}

// NewService constructs a dashboard Service.
func NewService(feed Provider, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Service{feed: feed, logger: logger.Named("dashboard")}
}

// timestampLayouts are accepted for the feed's last_modified stamp.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Overview assembles the dashboard payload for the given "today". A loaded
// feed with zero records yields an empty row list and a zero summary, which
// is the distinct "no data found" state.
func (s *Service) Overview(today time.Time) (*types.Overview, error) {
	feed, err := s.feed.Current()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeFeedUnavailable, "unable to load scheme data")
	}

	rows := make([]types.OverviewRow, 0, len(feed.Records))
	for i, rec := range feed.Records {
		rows = append(rows, s.buildRow(rec, i, today))
	}

	return &types.Overview{
		Summary: types.Summary{
			SchemeCount:          len(feed.Records),
			TotalIncentiveCrores: scheme.FormatCrores(scheme.TotalIncentive(feed.Records), 2),
			LastUpdated:          formatLastUpdated(feed.LastModified),
		},
		Rows: rows,
	}, nil
}

// Summary returns only the collection aggregates.
func (s *Service) Summary(today time.Time) (*types.Summary, error) {
	overview, err := s.Overview(today)
	if err != nil {
		return nil, err
	}
	return &overview.Summary, nil
}

func (s *Service) buildRow(rec scheme.Record, position int, today time.Time) types.OverviewRow {
	deadlineDate, hasDeadline := schedule.Parse(rec.OverallDeadline, today)

	deadlineText := rec.OverallDeadline
	if hasDeadline {
		deadlineText = schedule.FormatDate(deadlineDate)
	} else if strings.TrimSpace(deadlineText) == "" {
		deadlineText = "Unknown"
	}

	days := schedule.UnknownDays()
	if hasDeadline {
		days = schedule.KnownDays(schedule.DaysRemaining(today, deadlineDate))
	}
	// The hand-tuned override wins over the derived figure.
	if n, ok := scheme.ParseDaysOverride(rec.DaysLeft); ok {
		days = schedule.KnownDays(n)
	}

	return types.OverviewRow{
		RowID:           rec.RowID(position),
		Scheme:          rec.Name(),
		Ministry:        rec.Ministry,
		StagePath:       strings.Join(rec.StageLabels(), " -> "),
		BudgetCrores:    scheme.FormatCrores(scheme.ParseMoney(rec.GovernmentBudget), 2),
		IncentiveCrores: scheme.FormatCrores(scheme.ParseMoney(rec.IncentiveSize), 2),
		Deadline:        deadlineText,
		DaysLeft:        schedule.Label(days),
		Urgency:         schedule.Classify(days),
	}
}

// Detail resolves one record by row identifier, then scheme name, then the
// first record, and assembles its full display bundle. Only an empty
// collection produces a not-found error.
func (s *Service) Detail(today time.Time, row, name string) (*types.Detail, error) {
	feed, err := s.feed.Current()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeFeedUnavailable, "unable to load scheme data")
	}

	rec, position := findRecord(feed.Records, row, name)
	if rec == nil {
		return nil, errors.New(errors.CodeSchemeNotFound, "no matching scheme found").
			WithDetail("row=" + row + " scheme=" + name)
	}

	return s.buildDetail(*rec, position, today), nil
}

// findRecord matches row against the record identifier, falls back to the
// scheme name parameter, and finally to the first record. Returns nil only
// for an empty collection.
func findRecord(records []scheme.Record, row, name string) (*scheme.Record, int) {
	if len(records) == 0 {
		return nil, 0
	}
	if row != "" {
		for i, r := range records {
			id := string(r.RowIndex)
			if id == "" {
				id = string(r.SerialNo)
			}
			if id == row {
				return &records[i], i
			}
		}
	}
	if name != "" {
		for i, r := range records {
			if r.Scheme == name {
				return &records[i], i
			}
		}
	}
	return &records[0], 0
}

func (s *Service) buildDetail(rec scheme.Record, position int, today time.Time) *types.Detail {
	budget := scheme.ParseMoney(rec.GovernmentBudget)
	incentive := scheme.ParseMoney(rec.IncentiveSize)

	commencement, _ := schedule.Parse(rec.CommencementDate, today)
	stage1, _ := schedule.Parse(rec.Stage1Deadline, today)
	stage2, _ := schedule.Parse(rec.Stage2Deadline, today)

	// The final deadline falls back from the stage 3 column to the legacy
	// single-deadline column.
	finalDeadline, _ := schedule.Parse(rec.Stage3Deadline, today)
	if finalDeadline.IsZero() {
		finalDeadline, _ = schedule.Parse(rec.OverallDeadline, today)
	}

	milestones := []schedule.Milestone{
		{Key: "commencement", Label: "Commencement", Date: commencement},
		{Key: "stage1", Label: "Stage 1 deadline", Date: stage1},
		{Key: "stage2", Label: "Stage 2 deadline", Date: stage2},
		{Key: "stage3", Label: "Stage 3 deadline", Date: finalDeadline},
	}
	next, prev := schedule.ResolveNext(milestones, today)

	segment := 0.0
	if next != nil && prev != nil {
		segment = schedule.SegmentProgress(today, prev.Date, next.Date)
	}

	overall := 0.0
	if first, last := firstLastDated(milestones); first != nil && last != nil {
		overall = schedule.SegmentProgress(today, first.Date, last.Date)
	}

	nextDeadlineDate := finalDeadline
	if next != nil {
		nextDeadlineDate = next.Date
	}
	nextDeadlineText := rec.OverallDeadline
	if !nextDeadlineDate.IsZero() {
		nextDeadlineText = schedule.FormatDate(nextDeadlineDate)
	} else if strings.TrimSpace(nextDeadlineText) == "" {
		nextDeadlineText = "Unknown"
	}

	nextDays := schedule.UnknownDays()
	if !nextDeadlineDate.IsZero() {
		nextDays = schedule.KnownDays(schedule.DaysRemaining(today, nextDeadlineDate))
	}

	finalDays := schedule.UnknownDays()
	if !finalDeadline.IsZero() {
		finalDays = schedule.KnownDays(schedule.DaysRemaining(today, finalDeadline))
	}
	// The hand-tuned override wins for the final-deadline stat only; the
	// next-milestone pill always reflects the resolved segment.
	if n, ok := scheme.ParseDaysOverride(rec.DaysLeft); ok {
		finalDays = schedule.KnownDays(n)
	}

	return &types.Detail{
		RowID:       rec.RowID(position),
		Scheme:      rec.Name(),
		Ministry:    rec.Ministry,
		Description: rec.Description,

		Commencement: formatOrUnknown(commencement),
		Stages: []types.StageInfo{
			{Name: stageOrDash(rec.Stage1), Deadline: formatOrUnknown(stage1)},
			{Name: stageOrDash(rec.Stage2), Deadline: formatOrUnknown(stage2)},
			{Name: stageOrDash(rec.Stage3), Deadline: formatOrUnknown(finalDeadline)},
		},

		NextMilestone: milestoneView(next),
		PrevMilestone: milestoneView(prev),

		NextDeadline: nextDeadlineText,
		NextDaysLeft: schedule.Label(nextDays),
		NextUrgency:  schedule.Classify(nextDays),

		FinalDaysLeft: schedule.Label(finalDays),
		FinalUrgency:  schedule.Classify(finalDays),

		SegmentProgressPercent: roundPercent(segment),
		OverallProgressPercent: roundPercent(overall),

		SharePercent:    scheme.SharePercent(incentive, budget),
		AppliedCrores:   scheme.FormatCrores(incentive, 0),
		RemainingCrores: scheme.FormatCrores(scheme.Remaining(budget, incentive), 0),
		Chart:           types.Chart{Incentive: math.Max(incentive, 0), Budget: math.Max(budget, 0)},

		Status:    scheme.ParseList(rec.Status),
		Pending:   scheme.ParseList(rec.PendingDeliverables),
		Ongoing:   scheme.ParseList(rec.OngoingDeliverables),
		Completed: scheme.ParseList(rec.CompletedDeliverables),
	}
}

func firstLastDated(milestones []schedule.Milestone) (first, last *schedule.Milestone) {
	for i := range milestones {
		if !milestones[i].HasDate() {
			continue
		}
		if first == nil {
			first = &milestones[i]
		}
		last = &milestones[i]
	}
	return first, last
}

func milestoneView(m *schedule.Milestone) *types.MilestoneView {
	if m == nil {
		return nil
	}
	return &types.MilestoneView{Key: m.Key, Label: m.Label, Date: schedule.FormatDate(m.Date)}
}

func formatOrUnknown(d time.Time) string {
	if d.IsZero() {
		return "Unknown"
	}
	return schedule.FormatDate(d)
}

func stageOrDash(label string) string {
	if strings.TrimSpace(label) == "" {
		return "-"
	}
	return label
}

func roundPercent(fraction float64) int {
	return int(math.Round(fraction * 100))
}

func formatLastUpdated(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "Unknown"
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02 Jan 2006, 15:04")
		}
	}
	return "Unknown"
}
