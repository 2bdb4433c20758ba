// Package graph owns the parsed record collection: every person, family,
// fact, source, citation and media record from one GEDCOM file, keyed by
// record ID, plus the cross-reference queries the viewer host runs against
// it. A Graph is built once and read-only afterward, so every accessor is
// safe for concurrent readers.
package graph

import (
	"slices"
	"strings"

	"github.com/gedgraph/gedgraph/internal/metrics"
	"github.com/gedgraph/gedgraph/internal/models"
)

// Graph is one fully built record collection. Slices preserve source-file
// insertion order; sorted views are computed per query and never mutate the
// stored order.
type Graph struct {
	filename string

	people    []*models.Person
	families  []*models.Family
	facts     []*models.Fact
	sources   []*models.Source
	citations []*models.Citation
	media     []*models.Media

	peopleByID   map[string]*models.Person
	familiesByID map[string]*models.Family
	factsByID    map[string]*models.Fact
	sourcesByID  map[string]*models.Source

	// citationsByFact is built during ingestion, before the graph is
	// published, and never mutated afterward.
	citationsByFact map[string][]*models.Citation
}

// Filename returns the path the graph was loaded from.
func (g *Graph) Filename() string {
	return g.filename
}

// People returns the people in source-file order.
func (g *Graph) People() []*models.Person {
	return slices.Clone(g.people)
}

// PeopleSorted returns the people ordered by surname, given name, birth and
// death.
func (g *Graph) PeopleSorted() []*models.Person {
	out := slices.Clone(g.people)
	slices.SortStableFunc(out, models.ComparePersons)
	return out
}

// Families returns the families in source-file order.
func (g *Graph) Families() []*models.Family {
	return slices.Clone(g.families)
}

// Facts returns the facts in source-file order.
func (g *Graph) Facts() []*models.Fact {
	return slices.Clone(g.facts)
}

// Sources returns the sources in source-file order.
func (g *Graph) Sources() []*models.Source {
	return slices.Clone(g.sources)
}

// Citations returns the citations in source-file order.
func (g *Graph) Citations() []*models.Citation {
	return slices.Clone(g.citations)
}

// CitationsSorted returns the citations ordered by source title then page.
func (g *Graph) CitationsSorted() []*models.Citation {
	out := slices.Clone(g.citations)
	slices.SortStableFunc(out, models.CompareCitations)
	return out
}

// Media returns the media records in source-file order.
func (g *Graph) Media() []*models.Media {
	return slices.Clone(g.media)
}

// MediaSorted returns the media records ordered by display title then
// filename.
func (g *Graph) MediaSorted() []*models.Media {
	out := slices.Clone(g.media)
	slices.SortStableFunc(out, models.CompareMedia)
	return out
}

// PersonByID looks up a person; nil means not present.
func (g *Graph) PersonByID(id string) *models.Person {
	return g.peopleByID[id]
}

// FamilyByID looks up a family; nil means not present.
func (g *Graph) FamilyByID(id string) *models.Family {
	return g.familiesByID[id]
}

// FactByID looks up a fact; nil means not present.
func (g *Graph) FactByID(id string) *models.Fact {
	return g.factsByID[id]
}

// SourceByID looks up a source; nil means not present.
func (g *Graph) SourceByID(id string) *models.Source {
	return g.sourcesByID[id]
}

// CitationsForFact returns every citation asserting support for the fact.
func (g *Graph) CitationsForFact(factID string) []*models.Citation {
	return slices.Clone(g.citationsByFact[factID])
}

// IsEventSourced reports whether any of the person's facts is backed by a
// citation whose source title starts with the given prefix. The match is
// case-sensitive. An empty fact or citation set yields false.
func (g *Graph) IsEventSourced(person *models.Person, titlePrefix string) bool {
	metrics.Inc(metrics.ProvenanceQueries)
	if person == nil {
		return false
	}
	for _, fact := range person.Facts {
		for _, cit := range g.citationsByFact[fact.ID] {
			src := g.sourcesByID[cit.SourceID]
			if src != nil && strings.HasPrefix(src.Title, titlePrefix) {
				return true
			}
		}
	}
	return false
}

// Stats summarizes the collection for display.
type Stats struct {
	People      int            `json:"people"`
	Families    int            `json:"families"`
	Facts       int            `json:"facts"`
	Sources     int            `json:"sources"`
	Citations   int            `json:"citations"`
	Media       int            `json:"media"`
	FactsByType map[string]int `json:"facts_by_type"`
}

// Stats computes collection statistics.
func (g *Graph) Stats() Stats {
	s := Stats{
		People:      len(g.people),
		Families:    len(g.families),
		Facts:       len(g.facts),
		Sources:     len(g.sources),
		Citations:   len(g.citations),
		Media:       len(g.media),
		FactsByType: make(map[string]int),
	}
	for _, f := range g.facts {
		s.FactsByType[string(f.Type)]++
	}
	return s
}
