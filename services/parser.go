package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// nonNumericRegexp drops every rune outside digits and the decimal point.
	nonNumericRegexp = regexp.MustCompile(`[^0-9.]`)
)

// priceStrip removes currency decoration before the generic numeric filter:
// the pound sign (and its mojibake form scraped pages sometimes carry),
// thousands separators, embedded spaces, and trailing asterisk markers.
var priceStrip = strings.NewReplacer(
	"£", "",
	"Â", "",
	",", "",
	" ", "",
	"*", "",
)

// drivetrainNames canonicalizes free-text drivetrain descriptions, including
// the "Rare Wheel Drive" typo present in the source data. Unmapped values
// pass through unchanged.
var drivetrainNames = map[string]string{
	"All Wheel Drive":   "AWD",
	"Rear Wheel Drive":  "RWD",
	"Rare Wheel Drive":  "RWD",
	"Front Wheel Drive": "FWD",
}

// classNames expands single-letter vehicle class codes. Matching is
// case-insensitive; unmapped values pass through unchanged.
var classNames = map[string]string{
	"A": "mini",
	"B": "compact",
	"C": "medium",
	"D": "large",
	"E": "executive",
	"F": "luxury",
	"N": "passenger van",
	"S": "sports",
}

// parseDecimal is the one canonical numeric-extraction rule: strip every
// character outside {digits, decimal point} and parse what remains. An empty
// or unparseable remainder yields nil, never an error — the row is kept and
// the field stored as NULL.
func parseDecimal(raw *string) *float64 {
	if raw == nil {
		return nil
	}
	cleaned := nonNumericRegexp.ReplaceAllString(*raw, "")
	if cleaned == "" {
		return nil
	}
	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &val
}

// parseInt applies the canonical rule and truncates any fractional part.
func parseInt(raw *string) *int64 {
	val := parseDecimal(raw)
	if val == nil {
		return nil
	}
	n := int64(*val)
	return &n
}

// parsePrice strips currency decoration first, then applies the same
// canonical rule as every other field and casts to a whole-pound amount.
func parsePrice(raw *string) *int64 {
	if raw == nil {
		return nil
	}
	stripped := priceStrip.Replace(*raw)
	return parseInt(&stripped)
}

// remapDrivetrain canonicalizes a trimmed drivetrain value.
func remapDrivetrain(raw *string) *string {
	if raw == nil {
		return nil
	}
	if canonical, ok := drivetrainNames[*raw]; ok {
		return &canonical
	}
	return raw
}

// remapClass expands a trimmed class code, matching case-insensitively.
func remapClass(raw *string) *string {
	if raw == nil {
		return nil
	}
	if name, ok := classNames[strings.ToUpper(*raw)]; ok {
		return &name
	}
	return raw
}

// roundTo rounds half up to the given number of decimal places, matching the
// store's ROUND semantics for the derived metrics.
func roundTo(val float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(val*factor) / factor
}
