package statement

import (
	"regexp"
	"strconv"
	"strings"
)

// creditMarker tags the occurrence item carrying the benefit credit line.
// Fixed, case-sensitive, as emitted by the DAF service.
const creditMarker = "CREDITO BENEF."

// Localized currency followed by the credit flag: 1.234,56C
var creditPattern = regexp.MustCompile(`(\d{1,3}(?:\.\d{3})*,\d{2})C`)

// CreditAmount extracts the benefit credit value from a DAF response.
// Only the first occurrence item containing the credit marker is
// consulted; if that item carries no parsable value, or no item carries
// the marker at all, the amount is 0. Never fails on malformed input.
func CreditAmount(resp Response) float64 {
	for _, item := range resp.Occurrences {
		if !strings.Contains(item.BenefitName, creditMarker) {
			continue
		}
		match := creditPattern.FindStringSubmatch(item.BenefitName)
		if match == nil {
			return 0
		}
		raw := strings.ReplaceAll(match[1], ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0
		}
		return value
	}
	return 0
}
