package models

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateQualifier expresses the ambiguity attached to a genealogical date.
type DateQualifier string

const (
	QualifierNone       DateQualifier = ""
	QualifierAbout      DateQualifier = "about"
	QualifierBefore     DateQualifier = "before"
	QualifierAfter      DateQualifier = "after"
	QualifierCalculated DateQualifier = "calculated"
	QualifierEstimated  DateQualifier = "estimated"
)

// qualifierRank fixes the tie-break precedence between dates that resolve to
// the same calendar day: Before < About < None < Calculated < Estimated < After.
var qualifierRank = map[DateQualifier]int{
	QualifierBefore:     0,
	QualifierAbout:      1,
	QualifierNone:       2,
	QualifierCalculated: 3,
	QualifierEstimated:  4,
	QualifierAfter:      5,
}

// Rank returns the qualifier's position in the tie-break precedence order.
func (q DateQualifier) Rank() int {
	if r, ok := qualifierRank[q]; ok {
		return r
	}
	return qualifierRank[QualifierNone]
}

// gedcomQualifiers maps GEDCOM date-value prefixes to qualifiers.
var gedcomQualifiers = map[string]DateQualifier{
	"ABT": QualifierAbout,
	"BEF": QualifierBefore,
	"AFT": QualifierAfter,
	"CAL": QualifierCalculated,
	"EST": QualifierEstimated,
}

// Date holds a genealogical date. Raw is always the original text; Resolved
// is nil when the text did not parse to a full calendar value (a bare year,
// a range, free text). Ordering never depends on Raw.
type Date struct {
	Raw       string
	Resolved  *time.Time
	Qualifier DateQualifier
}

var gedcomMonths = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

// ParseDate interprets a GEDCOM date value such as "ABT 2 JAN 1900".
// Parsing failures are not errors: the raw text is retained and Resolved
// stays nil.
func ParseDate(raw string) Date {
	d := Date{Raw: raw, Qualifier: QualifierNone}

	text := strings.TrimSpace(raw)
	if text == "" {
		return d
	}

	fields := strings.Fields(strings.ToUpper(text))
	if q, ok := gedcomQualifiers[fields[0]]; ok {
		d.Qualifier = q
		fields = fields[1:]
	}

	switch len(fields) {
	case 3: // DD MON YYYY
		day, errD := strconv.Atoi(fields[0])
		month, okM := gedcomMonths[fields[1]]
		year, errY := strconv.Atoi(fields[2])
		if errD == nil && okM && errY == nil && day >= 1 && day <= 31 && year > 0 {
			t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			if t.Day() == day { // reject e.g. 31 FEB
				d.Resolved = &t
			}
		}
	case 2: // MON YYYY, day defaults to the first
		month, okM := gedcomMonths[fields[0]]
		year, errY := strconv.Atoi(fields[1])
		if okM && errY == nil && year > 0 {
			t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
			d.Resolved = &t
		}
	}
	// A bare year or anything else stays unresolved; Year() still reads it.

	return d
}

// IsResolved reports whether the date carries a full calendar value.
func (d Date) IsResolved() bool {
	return d.Resolved != nil
}

// Year returns the calendar year. For unresolved dates it falls back to the
// first four-digit year in the raw text, so year-only dates still display in
// lifespans. Zero means no year is known.
func (d Date) Year() int {
	if d.Resolved != nil {
		return d.Resolved.Year()
	}
	if m := yearPattern.FindString(d.Raw); m != "" {
		y, _ := strconv.Atoi(m)
		return y
	}
	return 0
}

// CompareDates is the total order over genealogical dates. Both resolved:
// chronological, then qualifier precedence. Exactly one resolved: the
// resolved side sorts earlier. Neither resolved: equal. Nil receivers stand
// for "no date at all" and compare like unresolved dates.
func CompareDates(a, b *Date) int {
	aRes := a != nil && a.Resolved != nil
	bRes := b != nil && b.Resolved != nil

	switch {
	case aRes && bRes:
		if a.Resolved.Before(*b.Resolved) {
			return -1
		}
		if a.Resolved.After(*b.Resolved) {
			return 1
		}
		return a.Qualifier.Rank() - b.Qualifier.Rank()
	case aRes:
		return -1
	case bRes:
		return 1
	default:
		return 0
	}
}
