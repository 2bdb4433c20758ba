package graph

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/gedgraph/gedgraph/internal/metrics"
	"github.com/gedgraph/gedgraph/internal/models"
	"github.com/gedgraph/gedgraph/pkg/gedcom"
)

// Build assembles a Graph from a parsed GEDCOM record tree. Record IDs come
// from the file's xref labels; facts and inline citations carry no xref in
// GEDCOM, so they are assigned fresh UUIDs. Dangling cross-references are
// dropped from the affected reference set and logged, never fatal.
func Build(records []*gedcom.Record, filename string, logger *slog.Logger) (*Graph, error) {
	g := &Graph{
		filename:        filename,
		peopleByID:      make(map[string]*models.Person),
		familiesByID:    make(map[string]*models.Family),
		factsByID:       make(map[string]*models.Fact),
		sourcesByID:     make(map[string]*models.Source),
		citationsByFact: make(map[string][]*models.Citation),
	}
	b := &builder{g: g, logger: logger}

	// Sources and media first: citations denormalize source titles, and
	// GEDCOM files order their top-level records freely.
	for _, rec := range records {
		switch rec.Tag {
		case "SOUR":
			b.addSource(rec)
		case "OBJE":
			b.addMedia(rec)
		}
	}
	for _, rec := range records {
		if rec.Tag == "INDI" {
			if err := b.addPerson(rec); err != nil {
				return nil, err
			}
		}
	}
	for _, rec := range records {
		if rec.Tag == "FAM" {
			b.addFamily(rec)
		}
	}

	b.wire()
	return g, nil
}

type builder struct {
	g      *Graph
	logger *slog.Logger
}

func (b *builder) addSource(rec *gedcom.Record) {
	if rec.XRef == "" {
		b.dropRef("source without xref id", "")
		return
	}
	src := &models.Source{ID: rec.XRef, Title: rec.SubValue("TITL")}
	b.g.sources = append(b.g.sources, src)
	b.g.sourcesByID[src.ID] = src
}

func (b *builder) addMedia(rec *gedcom.Record) {
	id := rec.XRef
	if id == "" {
		id = uuid.New().String()
	}
	m := &models.Media{
		ID:       id,
		Title:    rec.SubValue("TITL"),
		Filename: rec.SubValue("FILE"),
		Format:   rec.SubValue("FORM"),
	}
	if f := rec.Sub("FILE"); f != nil {
		if m.Format == "" {
			m.Format = f.SubValue("FORM")
		}
		if m.Title == "" {
			m.Title = f.SubValue("TITL")
		}
	}
	b.g.media = append(b.g.media, m)
}

func (b *builder) addPerson(rec *gedcom.Record) error {
	if rec.XRef == "" {
		return fmt.Errorf("%w: individual without xref id", gedcom.ErrMalformedRecord)
	}

	p := &models.Person{ID: rec.XRef, Sex: models.SexUnknown}
	if name := rec.SubValue("NAME"); name != "" {
		p.Given, p.Surname, p.FullName = splitName(name)
	}
	if sex := rec.Sub("SEX"); sex != nil {
		p.Sex = models.SexForTag(sex.Value)
	}

	for _, sub := range rec.Subs {
		ft, ok := models.FactTypeForTag(sub.Tag)
		if !ok {
			continue
		}
		fact := b.addFact(sub, ft)
		fact.PersonIDs = append(fact.PersonIDs, p.ID)
		p.Facts = append(p.Facts, fact)

		switch ft {
		case models.FactBirth:
			if p.Birth == nil {
				p.Birth = fact
			}
		case models.FactDeath:
			if p.Death == nil {
				p.Death = fact
			}
		}
	}

	p.NoteCount += len(rec.SubsWithTag("NOTE"))
	p.MediaCount += len(rec.SubsWithTag("OBJE"))

	b.g.people = append(b.g.people, p)
	b.g.peopleByID[p.ID] = p
	return nil
}

// addFact builds a fact (and its inline citations) from an event or
// attribute sub-record. The attribute value, if any, becomes the
// description ("OCCU Farmer").
func (b *builder) addFact(rec *gedcom.Record, ft models.FactType) *models.Fact {
	fact := &models.Fact{
		ID:          uuid.New().String(),
		Type:        ft,
		Place:       rec.SubValue("PLAC"),
		Description: rec.Value,
		AgeText:     rec.SubValue("AGE"),
		NoteCount:   len(rec.SubsWithTag("NOTE")),
		MediaCount:  len(rec.SubsWithTag("OBJE")),
	}
	if dv := rec.Sub("DATE"); dv != nil {
		d := models.ParseDate(dv.Value)
		if !d.IsResolved() {
			metrics.Inc(metrics.UnresolvedDates)
		}
		fact.Date = &d
	}

	for _, cit := range rec.SubsWithTag("SOUR") {
		b.addCitation(cit, fact)
	}

	b.g.facts = append(b.g.facts, fact)
	b.g.factsByID[fact.ID] = fact
	return fact
}

// addCitation builds an inline citation under a fact. A reference to an
// unknown source keeps the citation but clears the source link.
func (b *builder) addCitation(rec *gedcom.Record, fact *models.Fact) {
	value := strings.Trim(rec.Value, "@ ")
	c := &models.Citation{
		ID:        uuid.New().String(),
		Page:      rec.SubValue("PAGE"),
		Quality:   rec.SubValue("QUAY"),
		Text:      rec.SubValue("TEXT"),
		NoteCount: len(rec.SubsWithTag("NOTE")),
		FactIDs:   []string{fact.ID},
	}
	if c.Text == "" {
		if data := rec.Sub("DATA"); data != nil {
			c.Text = data.SubValue("TEXT")
		}
	}
	if obje := rec.SubsWithTag("OBJE"); len(obje) > 0 {
		c.MediaCount = len(obje)
		c.MediaFilename = obje[0].SubValue("FILE")
	}

	if src, ok := b.g.sourcesByID[value]; ok {
		c.SourceID = src.ID
		c.SourceTitle = src.Title
	} else if value != "" {
		b.dropRef("citation references unknown source", value)
	}

	b.g.citations = append(b.g.citations, c)
}

func (b *builder) addFamily(rec *gedcom.Record) {
	id := rec.XRef
	if id == "" {
		id = uuid.New().String()
	}
	fam := &models.Family{ID: id}

	fam.Husband = b.lookupPerson(rec.SubValue("HUSB"), "family husband")
	fam.Wife = b.lookupPerson(rec.SubValue("WIFE"), "family wife")
	for _, chil := range rec.SubsWithTag("CHIL") {
		if child := b.lookupPerson(chil.Value, "family child"); child != nil {
			fam.Children = append(fam.Children, child)
		}
	}

	if marr := rec.Sub("MARR"); marr != nil {
		fact := b.addFact(marr, models.FactMarriage)
		fact.FamilyIDs = append(fact.FamilyIDs, fam.ID)
		fam.Marriage = fact
		for _, spouse := range []*models.Person{fam.Husband, fam.Wife} {
			if spouse == nil {
				continue
			}
			fact.PersonIDs = append(fact.PersonIDs, spouse.ID)
			spouse.Facts = append(spouse.Facts, fact)
			if spouse.Marriage == nil {
				spouse.Marriage = fact
			}
		}
	}

	b.g.families = append(b.g.families, fam)
	b.g.familiesByID[fam.ID] = fam
}

func (b *builder) lookupPerson(ref, context string) *models.Person {
	id := strings.Trim(ref, "@ ")
	if id == "" {
		return nil
	}
	p, ok := b.g.peopleByID[id]
	if !ok {
		b.dropRef(context+" references unknown person", id)
		return nil
	}
	return p
}

// wire runs after all entities exist: it builds the fact→citations index
// (dropping citation fact-references that resolve to nothing), fills the
// aggregate counts, and computes lifespan text.
func (b *builder) wire() {
	for _, c := range b.g.citations {
		kept := c.FactIDs[:0]
		for _, factID := range c.FactIDs {
			if _, ok := b.g.factsByID[factID]; !ok {
				b.dropRef("citation references unknown fact", factID)
				continue
			}
			kept = append(kept, factID)
			b.g.citationsByFact[factID] = append(b.g.citationsByFact[factID], c)
		}
		c.FactIDs = kept
	}

	for _, f := range b.g.facts {
		f.CitationCount = len(b.g.citationsByFact[f.ID])
	}

	for _, p := range b.g.people {
		for _, f := range p.Facts {
			p.CitationCount += f.CitationCount
			p.MediaCount += f.MediaCount
			p.NoteCount += f.NoteCount
		}
		p.Lifespan = lifespan(p)
	}
}

func (b *builder) dropRef(msg, id string) {
	metrics.Inc(metrics.DanglingRefsDropped)
	if b.logger != nil {
		b.logger.Warn("dropping dangling reference", "detail", msg, "id", id)
	}
}

// splitName parses a GEDCOM personal name, "Given /Surname/ suffix".
func splitName(name string) (given, surname, full string) {
	start := strings.Index(name, "/")
	end := strings.LastIndex(name, "/")
	if start >= 0 && end > start {
		surname = strings.TrimSpace(name[start+1 : end])
		given = strings.TrimSpace(name[:start])
		full = strings.TrimSpace(strings.Join(strings.Fields(given+" "+surname+" "+name[end+1:]), " "))
		return given, surname, full
	}
	given = strings.TrimSpace(name)
	return given, "", given
}

// lifespan renders "1900 - 1950" style text from the birth and death years;
// unknown years render as empty sides.
func lifespan(p *models.Person) string {
	var birth, death string
	if p.Birth != nil && p.Birth.Date != nil {
		if y := p.Birth.Date.Year(); y > 0 {
			birth = fmt.Sprintf("%d", y)
		}
	}
	if p.Death != nil && p.Death.Date != nil {
		if y := p.Death.Date.Year(); y > 0 {
			death = fmt.Sprintf("%d", y)
		}
	}
	if birth == "" && death == "" {
		return ""
	}
	return birth + " - " + death
}
