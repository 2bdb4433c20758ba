package models

import "strings"

// Source is a bibliographic source record.
type Source struct {
	ID    string
	Title string
}

// Citation is the evidentiary link between facts and a source: every fact ID
// it lists is asserted to be supported by the cited source. SourceTitle is a
// denormalized copy for sorting and display.
type Citation struct {
	ID            string
	SourceID      string
	SourceTitle   string
	Page          string
	Text          string
	Quality       string
	MediaCount    int
	NoteCount     int
	MediaFilename string
	FactIDs       []string
}

// Cites reports whether the citation asserts support for the given fact.
func (c *Citation) Cites(factID string) bool {
	for _, id := range c.FactIDs {
		if id == factID {
			return true
		}
	}
	return false
}

// CompareCitations orders citations by source title then page, with the
// present-before-absent rule at each level.
func CompareCitations(a, b *Citation) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	if c := compareName(a.SourceTitle, b.SourceTitle); c != 0 {
		return c
	}
	return compareName(a.Page, b.Page)
}

// Media is a named, filed attachment referenced by facts and citations.
type Media struct {
	ID       string
	Title    string
	Filename string
	Format   string
}

// DisplayTitle is the title, or the filename when no title is recorded.
func (m *Media) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Filename
}

// CompareMedia orders media by display title then filename.
func CompareMedia(a, b *Media) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	if c := strings.Compare(a.DisplayTitle(), b.DisplayTitle()); c != 0 {
		return c
	}
	return strings.Compare(a.Filename, b.Filename)
}
