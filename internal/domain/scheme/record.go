// Package scheme defines the feed record model and the derived-metric
// helpers (money parsing, budget shares, deliverable lists) for government
// incentive schemes. Records are immutable inputs owned by the external
// feed; every field may be malformed and the helpers degrade to zero values
// rather than failing a render.
package scheme

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexString is a feed field that may arrive as a JSON string or number.
// Decoding never fails; unexpected shapes collapse to their raw text.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}
	*f = FlexString(raw)
	return nil
}

func (f FlexString) String() string { return string(f) }

// Record is one government incentive scheme row as delivered by the feed.
// Field names mirror the sheet's column headers; older feed variants omit
// the stage deadline and commencement columns, so all of them are optional.
type Record struct {
	SerialNo         FlexString `json:"S.No"`
	RowIndex         FlexString `json:"row_index"`
	Scheme           string     `json:"Scheme"`
	Ministry         string     `json:"Ministry"`
	Description      string     `json:"Description"`
	GovernmentBudget string     `json:"Government Budget (INR crores)"`
	IncentiveSize    string     `json:"Lohum Incentive Size (INR crores)"`

	Stage1 string `json:"Stage 1"`
	Stage2 string `json:"Stage 2"`
	Stage3 string `json:"Stage 3"`

	CommencementDate string `json:"Commencement Date"`
	Stage1Deadline   string `json:"Stage 1 Deadline"`
	Stage2Deadline   string `json:"Stage 2 Deadline"`
	Stage3Deadline   string `json:"Stage 3 Deadline"`

	// OverallDeadline is the legacy single-deadline column, still the
	// fallback when no stage 3 deadline is present.
	OverallDeadline string `json:"Timelines (by when)"`

	// DaysLeft is the hand-tuned override; when it parses as an integer it
	// wins over any date-derived figure for display.
	DaysLeft FlexString `json:"Days left"`

	// ProgressPercent is only populated by the oldest feed variant.
	ProgressPercent FlexString `json:"Progress %"`

	Status                string `json:"Status"`
	PendingDeliverables   string `json:"Pending deliverables"`
	OngoingDeliverables   string `json:"Ongoing deliverables"`
	CompletedDeliverables string `json:"Completed deliverables"`
}

// Name returns the scheme name with the display fallback for blank cells.
func (r Record) Name() string {
	if strings.TrimSpace(r.Scheme) == "" {
		return "Untitled scheme"
	}
	return r.Scheme
}

// RowID returns the stable cross-page identifier: row_index, then S.No,
// then the 1-based position in the collection.
func (r Record) RowID(position int) string {
	if r.RowIndex != "" {
		return string(r.RowIndex)
	}
	if r.SerialNo != "" {
		return string(r.SerialNo)
	}
	return strconv.Itoa(position + 1)
}

// StageLabels returns the non-empty stage labels in order.
func (r Record) StageLabels() []string {
	labels := make([]string, 0, 3)
	for _, s := range []string{r.Stage1, r.Stage2, r.Stage3} {
		if strings.TrimSpace(s) != "" {
			labels = append(labels, s)
		}
	}
	return labels
}

// Feed is the JSON document produced by the updater and consumed by the
// dashboard: a record collection plus bookkeeping metadata.
type Feed struct {
	Records           []Record `json:"records"`
	LastModified      string   `json:"last_modified"`
	RecordsCount      int      `json:"records_count"`
	RecordsStartIndex int      `json:"records_start_index"`
	RecordsEndIndex   int      `json:"records_end_index"`
}

// UnmarshalJSON decodes a feed document tolerantly: a missing or non-array
// records field yields an empty collection instead of failing the render.
func (f *Feed) UnmarshalJSON(b []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}

	f.Records = nil
	if raw, ok := doc["records"]; ok {
		var records []Record
		if err := json.Unmarshal(raw, &records); err == nil {
			f.Records = records
		}
	}
	if raw, ok := doc["last_modified"]; ok {
		_ = json.Unmarshal(raw, &f.LastModified)
	}
	f.RecordsCount = intField(doc, "records_count")
	f.RecordsStartIndex = intField(doc, "records_start_index")
	f.RecordsEndIndex = intField(doc, "records_end_index")
	return nil
}

func intField(doc map[string]json.RawMessage, key string) int {
	raw, ok := doc[key]
	if !ok {
		return 0
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0
	}
	return n
}

// ParseDaysOverride extracts the leading integer from a hand-tuned days-left
// cell ("45", "45 days"). ok is false when no integer prefix exists.
func ParseDaysOverride(raw FlexString) (int, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return 0, false
	}
	i := 0
	if s[0] == '-' || s[0] == '+' {
		i = 1
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}
	n, err := strconv.Atoi(s[:j])
	if err != nil {
		return 0, false
	}
	return n, true
}
