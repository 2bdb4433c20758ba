package models

import "fmt"

// AgeLabel formats a person's age at the target fact, derived from the birth
// fact. It returns "" when the age cannot or should not be shown: missing or
// unresolved birth/target dates, the target being the birth event itself, or
// a resolved death date earlier than the target (an event recorded after
// death is a data-quality signal, not an error).
func AgeLabel(target, birth, death *Fact) string {
	if target == nil || birth == nil || target == birth {
		return ""
	}
	if target.Date == nil || !target.Date.IsResolved() {
		return ""
	}
	if birth.Date == nil || !birth.Date.IsResolved() {
		return ""
	}
	if death != nil && death.Date != nil && death.Date.IsResolved() &&
		death.Date.Resolved.Before(*target.Date.Resolved) {
		return ""
	}

	// Calendar-year difference: count completed anniversaries, so a target
	// falling exactly on the birthday reads as a whole year regardless of
	// how many leap days the span contains.
	b, tgt := *birth.Date.Resolved, *target.Date.Resolved
	years := tgt.Year() - b.Year()
	if tgt.Month() < b.Month() || (tgt.Month() == b.Month() && tgt.Day() < b.Day()) {
		years--
	}
	return fmt.Sprintf("Age %d", years)
}
