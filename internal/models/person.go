package models

import "strings"

// Sex is the recorded sex of a person.
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// ValidSexes is the set of all recognized sex values.
var ValidSexes = []Sex{SexMale, SexFemale, SexUnknown}

// SexForTag resolves a GEDCOM SEX value ("M"/"F") to a Sex.
func SexForTag(value string) Sex {
	switch strings.TrimSpace(strings.ToUpper(value)) {
	case "M":
		return SexMale
	case "F":
		return SexFemale
	default:
		return SexUnknown
	}
}

// SpouseLabel returns the relation label a person carries within a family.
func (s Sex) SpouseLabel() string {
	switch s {
	case SexMale:
		return "Husband"
	case SexFemale:
		return "Wife"
	default:
		return "Spouse"
	}
}

// ParentLabel returns the parental relation label.
func (s Sex) ParentLabel() string {
	switch s {
	case SexMale:
		return "Father"
	case SexFemale:
		return "Mother"
	default:
		return "Parent"
	}
}

// Person is an individual record. Birth, Marriage and Death are denormalized
// shortcuts into Facts; when set they always alias an element of Facts.
type Person struct {
	ID            string
	FullName      string
	Surname       string
	Given         string
	Sex           Sex
	Birth         *Fact
	Marriage      *Fact
	Death         *Fact
	Lifespan      string
	CitationCount int
	MediaCount    int
	NoteCount     int
	Facts         []*Fact
}

// compareName orders two name components with the present-before-absent
// rule: an empty component sorts after any non-empty one.
func compareName(a, b string) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	default:
		return strings.Compare(a, b)
	}
}

// ComparePersons orders people by surname, then given name, then birth fact,
// then death fact. Name comparison is case-sensitive; an absent name sorts
// after a present one. Nil persons sort last.
func ComparePersons(a, b *Person) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	if c := compareName(a.Surname, b.Surname); c != 0 {
		return c
	}
	if c := compareName(a.Given, b.Given); c != 0 {
		return c
	}
	if c := CompareFacts(a.Birth, b.Birth); c != 0 {
		return c
	}
	return CompareFacts(a.Death, b.Death)
}
