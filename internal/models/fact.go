package models

// FactType classifies a life-event or attribute record.
type FactType string

const (
	FactBirth       FactType = "birth"
	FactDeath       FactType = "death"
	FactMarriage    FactType = "marriage"
	FactDivorce     FactType = "divorce"
	FactBurial      FactType = "burial"
	FactBaptism     FactType = "baptism"
	FactChristening FactType = "christening"
	FactResidence   FactType = "residence"
	FactOccupation  FactType = "occupation"
	FactCensus      FactType = "census"
	FactImmigration FactType = "immigration"
	FactEmigration  FactType = "emigration"
	FactNaturalized FactType = "naturalization"
	FactUnknown     FactType = "unknown"
)

// ValidFactTypes is the set of all recognized fact types.
var ValidFactTypes = []FactType{
	FactBirth,
	FactDeath,
	FactMarriage,
	FactDivorce,
	FactBurial,
	FactBaptism,
	FactChristening,
	FactResidence,
	FactOccupation,
	FactCensus,
	FactImmigration,
	FactEmigration,
	FactNaturalized,
}

// IsValid returns true if the fact type is recognized.
func (ft FactType) IsValid() bool {
	for i := range ValidFactTypes {
		if ft == ValidFactTypes[i] {
			return true
		}
	}
	return false
}

// gedcomFactTags maps GEDCOM event/attribute tags to fact types.
var gedcomFactTags = map[string]FactType{
	"BIRT": FactBirth,
	"DEAT": FactDeath,
	"MARR": FactMarriage,
	"DIV":  FactDivorce,
	"BURI": FactBurial,
	"BAPM": FactBaptism,
	"CHR":  FactChristening,
	"RESI": FactResidence,
	"OCCU": FactOccupation,
	"CENS": FactCensus,
	"IMMI": FactImmigration,
	"EMIG": FactEmigration,
	"NATU": FactNaturalized,
}

// FactTypeForTag resolves a GEDCOM tag to a fact type, falling back to
// FactUnknown for tags outside the supported subset.
func FactTypeForTag(tag string) (FactType, bool) {
	ft, ok := gedcomFactTags[tag]
	if !ok {
		return FactUnknown, false
	}
	return ft, true
}

// Label returns the display label for the fact type. The switch is
// exhaustive over ValidFactTypes; unknown types fall through to "Unknown".
func (ft FactType) Label() string {
	switch ft {
	case FactBirth:
		return "Birth"
	case FactDeath:
		return "Death"
	case FactMarriage:
		return "Marriage"
	case FactDivorce:
		return "Divorce"
	case FactBurial:
		return "Burial"
	case FactBaptism:
		return "Baptism"
	case FactChristening:
		return "Christening"
	case FactResidence:
		return "Residence"
	case FactOccupation:
		return "Occupation"
	case FactCensus:
		return "Census"
	case FactImmigration:
		return "Immigration"
	case FactEmigration:
		return "Emigration"
	case FactNaturalized:
		return "Naturalization"
	default:
		return "Unknown"
	}
}

// Fact is a dated, placed life-event or attribute. A fact attaches to one
// person (individual event), to a family (relational event such as a
// marriage), or to both; the ID sets record every attachment.
type Fact struct {
	ID            string
	Type          FactType
	Date          *Date
	Place         string
	Description   string
	AgeText       string
	CitationCount int
	MediaCount    int
	NoteCount     int
	PersonIDs     []string
	FamilyIDs     []string
}

// CompareFacts orders facts by their dates: dated before undated, undated
// facts mutually equal. Nil facts behave like undated facts.
func CompareFacts(a, b *Fact) int {
	var ad, bd *Date
	if a != nil {
		ad = a.Date
	}
	if b != nil {
		bd = b.Date
	}
	return CompareDates(ad, bd)
}
