package appetite

import (
	"strconv"
	"strings"
)

// Boundary normalization. Appetite data arrives from LLM extraction and
// spreadsheet imports, so numeric fields show up as strings with currency
// symbols and revenue bands come in a handful of spellings. Everything here
// coerces malformed input to "absent" or a canonical form; nothing returns
// an error, preserving the scorer's graceful-degradation contract.

// ParsePremium coerces a premium value of unknown shape to a float pointer.
// Accepts numbers and numeric strings with currency symbols, commas and
// "k"/"m" suffixes. Anything unparseable or negative yields nil (treated as
// "no constraint").
func ParsePremium(value interface{}) *float64 {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		return positive(v)
	case float32:
		return positive(float64(v))
	case int:
		return positive(float64(v))
	case int64:
		return positive(float64(v))
	case string:
		return parsePremiumString(v)
	default:
		return nil
	}
}

func parsePremiumString(raw string) *float64 {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	cleaned = strings.NewReplacer("£", "", "$", "", "€", "", ",", "", " ", "").Replace(cleaned)
	if cleaned == "" {
		return nil
	}

	multiplier := 1.0
	switch {
	case strings.HasSuffix(cleaned, "k"):
		multiplier = 1_000
		cleaned = strings.TrimSuffix(cleaned, "k")
	case strings.HasSuffix(cleaned, "m"):
		multiplier = 1_000_000
		cleaned = strings.TrimSuffix(cleaned, "m")
	}

	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return positive(parsed * multiplier)
}

func positive(v float64) *float64 {
	if v < 0 {
		return nil
	}
	return &v
}

// NormalizeRevenueBand canonicalizes a revenue band label so it can key the
// premium lookup table: lowercased, whitespace and currency markers removed.
// "£1-5M" and "1-5m " both normalize to "1-5m". Unrecognized input passes
// through normalized and simply misses the lookup.
func NormalizeRevenueBand(band string) string {
	band = strings.ToLower(strings.TrimSpace(band))
	return strings.NewReplacer("£", "", "$", "", "€", "", " ", "").Replace(band)
}

// NormalizeList trims entries, drops blanks and removes case-insensitive
// duplicates while preserving the first spelling and original order.
func NormalizeList(entries []string) []string {
	if len(entries) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(entries))
	var out []string
	for _, entry := range entries {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}

// SanitizeRecord applies list normalization to every set-valued field of an
// appetite record. Called at the ingestion boundary so the scorer sees clean
// data.
func SanitizeRecord(record AppetiteRecord) AppetiteRecord {
	record.UnderwriterName = strings.TrimSpace(record.UnderwriterName)
	record.TargetSectors = NormalizeList(record.TargetSectors)
	record.SpecialtyFocus = NormalizeList(record.SpecialtyFocus)
	record.GeographicCoverage = NormalizeList(record.GeographicCoverage)
	record.Exclusions = NormalizeList(record.Exclusions)
	record.RiskAppetite = strings.TrimSpace(record.RiskAppetite)
	return record
}
