package scheme

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var nonMoneyChars = regexp.MustCompile(`[^0-9.]`)

// ParseMoney extracts a decimal number from a free-form money string by
// stripping every character that is not a digit or decimal point. Lossy by
// design: currency symbols, thousands separators, and textual qualifiers
// ("₹1,200 Cr") all drop out. Empty or unparseable input yields 0; the whole
// stripped string must parse as one number, so a stray second decimal point
// ("1.2.3") yields 0, not a prefix.
func ParseMoney(raw string) float64 {
	cleaned := nonMoneyChars.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// SharePercent returns round(incentive / budget * 100), or 0 when the
// budget is not positive.
func SharePercent(incentive, budget float64) int {
	if budget <= 0 {
		return 0
	}
	return int(math.Round(incentive / budget * 100))
}

// Remaining returns the unclaimed portion of the budget, floored at 0.
func Remaining(budget, incentive float64) float64 {
	return math.Max(budget-incentive, 0)
}

// TotalIncentive sums the parsed incentive values across a record
// collection. An empty collection totals 0.
func TotalIncentive(records []Record) float64 {
	var total float64
	for _, r := range records {
		total += ParseMoney(r.IncentiveSize)
	}
	return total
}

// FormatCrores renders a crore amount with Indian digit grouping, e.g.
// 1234567.5 -> "12,34,567.50" with two decimals. Negative values keep
// their sign.
func FormatCrores(v float64, decimals int) string {
	neg := v < 0
	s := strconv.FormatFloat(math.Abs(v), 'f', decimals, 64)

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	grouped := groupIndian(intPart)
	if neg {
		grouped = "-" + grouped
	}
	return grouped + fracPart
}

// groupIndian inserts commas per the en-IN convention: the last three
// digits form one group, every preceding pair forms another.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)
	return strings.Join(groups, ",")
}
