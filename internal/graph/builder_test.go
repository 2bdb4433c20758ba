package graph

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gedgraph/gedgraph/internal/models"
	"github.com/gedgraph/gedgraph/pkg/gedcom"
)

const fixtureGedcom = `0 HEAD
1 CHAR UTF-8
0 @S1@ SOUR
1 TITL 1900 United States Federal Census (District 4)
0 @S2@ SOUR
1 TITL Parish register of St. Mary
0 @O1@ OBJE
1 FILE census_scan.jpg
2 FORM jpg
1 TITL Census scan
0 @I1@ INDI
1 NAME John /Smith/
1 SEX M
1 BIRT
2 DATE 1 JAN 1900
2 PLAC Springfield, Illinois
2 SOUR @S1@
3 PAGE sheet 3, line 22
3 QUAY 3
1 OCCU Farmer
2 DATE 1925
1 DEAT
2 DATE 1 JAN 1980
0 @I2@ INDI
1 NAME Mary /Jones/
1 SEX F
1 BIRT
2 DATE 2 MAR 1902
2 SOUR @S9@
0 @I3@ INDI
1 NAME Robert /Smith/
1 SEX M
1 BIRT
2 DATE 5 MAY 1925
0 @I4@ INDI
1 NAME Alice /Smith/
1 SEX F
1 BIRT
2 DATE 1 JAN 1922
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
1 CHIL @I4@
1 MARR
2 DATE 10 JUN 1920
2 PLAC Springfield, Illinois
0 @F2@ FAM
1 HUSB @I9@
1 CHIL @I3@
0 TRLR
`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func buildFixture(t *testing.T) *Graph {
	t.Helper()
	records, err := gedcom.Read(strings.NewReader(fixtureGedcom))
	require.NoError(t, err)
	g, err := Build(records, "fixture.ged", testLogger())
	require.NoError(t, err)
	return g
}

func TestBuildRoundTrip(t *testing.T) {
	g := buildFixture(t)

	assert.Equal(t, "fixture.ged", g.Filename())
	require.Len(t, g.People(), 4)

	p := g.PersonByID("I1")
	require.NotNil(t, p)
	assert.Equal(t, "John Smith", p.FullName)
	assert.Equal(t, "Smith", p.Surname)
	assert.Equal(t, "John", p.Given)
	assert.Equal(t, models.SexMale, p.Sex)
	assert.Equal(t, "1900 - 1980", p.Lifespan)

	// BIRT, OCCU, DEAT from the individual plus the family MARR fact.
	require.Len(t, p.Facts, 4)

	require.NotNil(t, p.Birth)
	assert.Equal(t, models.FactBirth, p.Birth.Type)
	assert.Equal(t, "Springfield, Illinois", p.Birth.Place)
	require.True(t, p.Birth.Date.IsResolved())
	assert.Contains(t, p.Facts, p.Birth)

	require.NotNil(t, p.Death)
	assert.Contains(t, p.Facts, p.Death)
	require.NotNil(t, p.Marriage)
	assert.Contains(t, p.Facts, p.Marriage)
	assert.Equal(t, models.FactMarriage, p.Marriage.Type)

	// ID lookups are total: absence is nil, not an error.
	assert.Nil(t, g.PersonByID("I99"))
	assert.Nil(t, g.FamilyByID("F99"))
	assert.Nil(t, g.SourceByID("S99"))
	assert.Nil(t, g.FactByID("nope"))
}

func TestBuildAttributeFacts(t *testing.T) {
	g := buildFixture(t)
	p := g.PersonByID("I1")
	require.NotNil(t, p)

	var occu *models.Fact
	for _, f := range p.Facts {
		if f.Type == models.FactOccupation {
			occu = f
		}
	}
	require.NotNil(t, occu)
	assert.Equal(t, "Farmer", occu.Description)
	// Year-only attribute date stays unresolved but keeps its text.
	assert.False(t, occu.Date.IsResolved())
	assert.Equal(t, "1925", occu.Date.Raw)
	assert.Equal(t, []string{"I1"}, occu.PersonIDs)
}

func TestBuildCitations(t *testing.T) {
	g := buildFixture(t)
	p := g.PersonByID("I1")
	require.NotNil(t, p)

	cits := g.CitationsForFact(p.Birth.ID)
	require.Len(t, cits, 1)
	c := cits[0]
	assert.Equal(t, "S1", c.SourceID)
	assert.Equal(t, "1900 United States Federal Census (District 4)", c.SourceTitle)
	assert.Equal(t, "sheet 3, line 22", c.Page)
	assert.Equal(t, "3", c.Quality)
	assert.Equal(t, []string{p.Birth.ID}, c.FactIDs)

	assert.Equal(t, 1, p.Birth.CitationCount)
	assert.Equal(t, 1, p.CitationCount)

	// Facts without citations have an empty set, not an error.
	assert.Empty(t, g.CitationsForFact(p.Death.ID))
	assert.Empty(t, g.CitationsForFact("nonexistent"))
}

func TestBuildDanglingSourceReference(t *testing.T) {
	g := buildFixture(t)
	p := g.PersonByID("I2")
	require.NotNil(t, p)

	// The citation under Mary's birth points at @S9@, which does not exist.
	// The citation survives with its source link cleared.
	cits := g.CitationsForFact(p.Birth.ID)
	require.Len(t, cits, 1)
	assert.Empty(t, cits[0].SourceID)
	assert.Empty(t, cits[0].SourceTitle)
}

func TestBuildDanglingPersonReference(t *testing.T) {
	g := buildFixture(t)

	// F2's husband @I9@ does not exist; the reference is dropped, the
	// family and its child link survive.
	f := g.FamilyByID("F2")
	require.NotNil(t, f)
	assert.Nil(t, f.Husband)
	require.Len(t, f.Children, 1)
	assert.Equal(t, "I3", f.Children[0].ID)
}

func TestWireDropsDanglingFactReferences(t *testing.T) {
	g := &Graph{
		factsByID:       map[string]*models.Fact{},
		citationsByFact: map[string][]*models.Citation{},
	}
	fact := &models.Fact{ID: "f1"}
	g.facts = append(g.facts, fact)
	g.factsByID[fact.ID] = fact

	cit := &models.Citation{ID: "c1", FactIDs: []string{"f1", "missing"}}
	g.citations = append(g.citations, cit)

	b := &builder{g: g, logger: testLogger()}
	b.wire()

	assert.Equal(t, []string{"f1"}, cit.FactIDs)
	assert.Len(t, g.CitationsForFact("f1"), 1)
	assert.Empty(t, g.CitationsForFact("missing"))
	assert.Equal(t, 1, fact.CitationCount)
}

func TestBuildFamilyWiring(t *testing.T) {
	g := buildFixture(t)

	f := g.FamilyByID("F1")
	require.NotNil(t, f)
	require.NotNil(t, f.Husband)
	require.NotNil(t, f.Wife)
	assert.Equal(t, "I1", f.Husband.ID)
	assert.Equal(t, "I2", f.Wife.ID)

	require.NotNil(t, f.Marriage)
	assert.Equal(t, []string{"F1"}, f.Marriage.FamilyIDs)
	assert.ElementsMatch(t, []string{"I1", "I2"}, f.Marriage.PersonIDs)
	assert.Equal(t, f.Marriage, f.Husband.Marriage)
	assert.Equal(t, f.Marriage, f.Wife.Marriage)

	// Children resort by birth date on demand: Alice (1922) before Robert (1925).
	require.Len(t, f.Children, 2)
	assert.Equal(t, "I3", f.Children[0].ID, "insertion order before sorting")
	f.SortChildrenByBirth()
	assert.Equal(t, "I4", f.Children[0].ID)
	assert.Equal(t, "I3", f.Children[1].ID)
}

func TestBuildMedia(t *testing.T) {
	g := buildFixture(t)

	media := g.Media()
	require.Len(t, media, 1)
	assert.Equal(t, "Census scan", media[0].Title)
	assert.Equal(t, "census_scan.jpg", media[0].Filename)
	assert.Equal(t, "jpg", media[0].Format)
}

func TestPeopleSorted(t *testing.T) {
	g := buildFixture(t)

	var ids []string
	for _, p := range g.PeopleSorted() {
		ids = append(ids, p.ID)
	}
	// Jones Mary, then the Smiths by given name.
	assert.Equal(t, []string{"I2", "I4", "I1", "I3"}, ids)

	// Sorting is a query-time view: file order is untouched.
	assert.Equal(t, "I1", g.People()[0].ID)
}

func TestGraphStats(t *testing.T) {
	g := buildFixture(t)

	st := g.Stats()
	assert.Equal(t, 4, st.People)
	assert.Equal(t, 2, st.Families)
	assert.Equal(t, 2, st.Sources)
	assert.Equal(t, 2, st.Citations)
	assert.Equal(t, 1, st.Media)
	assert.Equal(t, 4, st.FactsByType[string(models.FactBirth)])
	assert.Equal(t, 1, st.FactsByType[string(models.FactMarriage)])
	assert.Equal(t, 1, st.FactsByType[string(models.FactOccupation)])
}
