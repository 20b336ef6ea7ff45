// Package programtype normalizes the free-text programme-type strings found
// on applications, programmes and courses. Historical data entry was never
// constrained to an enum, so the same tier appears as "MASTERS", "Masters",
// "MSc", "m.sc" and so on. Normalize collapses those onto canonical names;
// Variants expands a canonical name back into the spellings that may sit in
// stored rows, for building case-insensitive filters.
package programtype

import "strings"

// Canonical programme types.
const (
	Masters = "MASTERS"
	PHD     = "PHD"
	PGD     = "PGD"
)

// Normalize maps a raw programme-type string onto its canonical name.
// The substring checks run in priority order; an unrecognized value passes
// through uppercased and trimmed, unchanged otherwise.
func Normalize(raw string) string {
	folded := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case strings.Contains(folded, "PHD") || strings.Contains(folded, "PH.D"):
		return PHD
	case strings.Contains(folded, "PGD"):
		return PGD
	case strings.Contains(folded, "MASTER") || strings.Contains(folded, "MSC") || strings.Contains(folded, "M.SC"):
		return Masters
	default:
		return folded
	}
}

// Variants returns the raw spellings of a canonical type that may appear in
// the course table. Used to build "equals any of" filters over legacy rows
// that cannot be migrated without breaking historical records.
func Variants(normalized string) []string {
	switch normalized {
	case Masters:
		return []string{"MASTERS", "MSC", "Masters", "MSc", "MASTER", "masters", "msc", "m.sc"}
	case PHD:
		return []string{"PHD", "PhD", "phd", "PH.D", "ph.d"}
	case PGD:
		return []string{"PGD", "pgd"}
	default:
		return []string{normalized, strings.ToLower(normalized)}
	}
}
