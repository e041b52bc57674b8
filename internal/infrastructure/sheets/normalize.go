package sheets

import (
	"fmt"
	"strings"

	"github.com/lohum/schemetrack/pkg/errors"
)

// knownMinistries are canonical spellings; sheet values matching one of them
// case-insensitively are rewritten to the canonical form.
var knownMinistries = []string{
	"Ministry of Mines",
	"Ministry of Electronics and IT",
	"Ministry of Heavy Industries",
	"Department of Science and Technology",
	"UP Government",
	"Gujarat Government",
	"Telangana Government",
}

// stageFields are guaranteed present (possibly empty) on every normalized
// record so downstream consumers never see a missing column.
var stageFields = []string{
	"Description",
	"Commencement Date",
	"Stage 1 Deadline",
	"Stage 2 Deadline",
	"Stage 3 Deadline",
}

// NormalizeMinistry collapses whitespace and canonicalizes known ministry
// names. Unknown ministries pass through collapsed but otherwise untouched.
func NormalizeMinistry(value any) string {
	if value == nil {
		return ""
	}
	collapsed := strings.Join(strings.Fields(fmt.Sprint(value)), " ")
	if collapsed == "" {
		return ""
	}
	for _, name := range knownMinistries {
		if strings.EqualFold(name, collapsed) {
			return name
		}
	}
	return collapsed
}

// NormalizePayload reshapes a raw sheet API payload in place: records are
// hoisted out of the nested data block, legacy column names are folded into
// their current ones, stage columns are defaulted, and record-count
// bookkeeping is filled in.
func NormalizePayload(payload map[string]any) error {
	dataBlock, _ := payload["data"].(map[string]any)

	records := payload["records"]
	if records == nil && dataBlock != nil {
		records = dataBlock["records"]
	}
	if records == nil {
		records = []any{}
	}
	list, ok := records.([]any)
	if !ok {
		return errors.New(errors.CodeSheetError, "unexpected records payload shape")
	}
	payload["records"] = list

	if dataBlock != nil {
		for _, field := range []string{"records_count", "records_start_index", "records_end_index"} {
			if _, present := payload[field]; !present {
				if v, present := dataBlock[field]; present {
					payload[field] = v
				}
			}
		}
	}

	for _, item := range list {
		record, ok := item.(map[string]any)
		if !ok {
			continue
		}
		normalizeRecord(record)
	}

	if _, present := payload["records_count"]; !present {
		payload["records_count"] = len(list)
	}
	if _, present := payload["records_start_index"]; !present {
		if len(list) > 0 {
			payload["records_start_index"] = 1
		} else {
			payload["records_start_index"] = 0
		}
	}
	if _, present := payload["records_end_index"]; !present {
		if len(list) > 0 {
			payload["records_end_index"] = intValue(payload["records_start_index"], 1) + len(list) - 1
		} else {
			payload["records_end_index"] = 0
		}
	}
	return nil
}

func normalizeRecord(record map[string]any) {
	if isBlank(record["Ministry"]) && !isBlank(record["Ministry / Department"]) {
		record["Ministry"] = record["Ministry / Department"]
	}
	record["Ministry"] = NormalizeMinistry(record["Ministry"])

	if isBlank(record["Description"]) && !isBlank(record["Scheme Description"]) {
		record["Description"] = record["Scheme Description"]
	}

	for _, field := range stageFields {
		if _, present := record[field]; !present {
			record[field] = ""
		}
	}
	if isBlank(record["Timelines (by when)"]) && !isBlank(record["Stage 3 Deadline"]) {
		record["Timelines (by when)"] = record["Stage 3 Deadline"]
	}
}

// intValue reads an int out of a decoded JSON value, which arrives as
// float64 from encoding/json and as int when set by this package.
func intValue(value any, fallback int) int {
	switch v := value.(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return fallback
	}
}

// isBlank treats missing values, whitespace-only strings and numeric zero as
// empty, matching how the sheet reports unfilled cells.
func isBlank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case float64:
		return v == 0
	case bool:
		return !v
	default:
		return false
	}
}
