package graph

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/gedgraph/gedgraph/internal/metrics"
	"github.com/gedgraph/gedgraph/internal/models"
	"github.com/gedgraph/gedgraph/pkg/gedcom"
)

// Manager holds the single currently open graph. Open builds a complete
// Graph off to the side and swaps it in as a unit, so readers never observe
// a graph mid-construction; Close discards it atomically. All query methods
// are total: with no graph open they report empty results, never an error.
type Manager struct {
	mu      sync.RWMutex
	current *Graph
	logger  *slog.Logger
}

// NewManager creates a Manager with no graph open.
func NewManager(logger *slog.Logger) *Manager {
	return &Manager{logger: logger}
}

// Open loads the GEDCOM file at path. An already open graph is implicitly
// closed, but only once the replacement has built successfully; a failed
// Open leaves the previous graph in place.
func (m *Manager) Open(path string) error {
	records, err := gedcom.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("opening %s: %w", path, err)
	}

	g, err := Build(records, path, m.logger)
	if err != nil {
		return fmt.Errorf("building graph from %s: %w", path, err)
	}
	metrics.Inc(metrics.OpensTotal)

	m.mu.Lock()
	m.current = g
	m.mu.Unlock()

	if m.logger != nil {
		st := g.Stats()
		m.logger.Info("opened gedcom file", "path", path,
			"people", st.People, "families", st.Families, "sources", st.Sources)
	}
	return nil
}

// Close discards the open graph. Closing a closed manager is a no-op.
func (m *Manager) Close() {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
}

// IsOpen reports whether a graph is open.
func (m *Manager) IsOpen() bool {
	return m.Graph() != nil
}

// Filename returns the open file's path, or "" when closed.
func (m *Manager) Filename() string {
	if g := m.Graph(); g != nil {
		return g.Filename()
	}
	return ""
}

// Graph returns the current graph, or nil when closed. The returned graph
// is immutable and remains valid even if the manager is closed or reopened
// afterward.
func (m *Manager) Graph() *Graph {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Snapshot is the error-reporting counterpart of Graph, for callers that
// need to distinguish "nothing open" from an open but empty graph. It
// returns ErrNoGraphOpen when the manager is closed.
func (m *Manager) Snapshot() (*Graph, error) {
	if g := m.Graph(); g != nil {
		return g, nil
	}
	return nil, ErrNoGraphOpen
}

// People returns the open graph's people in file order, or nothing.
func (m *Manager) People() []*models.Person {
	if g := m.Graph(); g != nil {
		return g.People()
	}
	return nil
}

// PeopleSorted returns the open graph's people in display order, or nothing.
func (m *Manager) PeopleSorted() []*models.Person {
	if g := m.Graph(); g != nil {
		return g.PeopleSorted()
	}
	return nil
}

// Families returns the open graph's families, or nothing.
func (m *Manager) Families() []*models.Family {
	if g := m.Graph(); g != nil {
		return g.Families()
	}
	return nil
}

// Sources returns the open graph's sources, or nothing.
func (m *Manager) Sources() []*models.Source {
	if g := m.Graph(); g != nil {
		return g.Sources()
	}
	return nil
}

// Citations returns the open graph's citations, or nothing.
func (m *Manager) Citations() []*models.Citation {
	if g := m.Graph(); g != nil {
		return g.Citations()
	}
	return nil
}

// Media returns the open graph's media records, or nothing.
func (m *Manager) Media() []*models.Media {
	if g := m.Graph(); g != nil {
		return g.Media()
	}
	return nil
}

// PersonByID looks up a person in the open graph; nil when closed or absent.
func (m *Manager) PersonByID(id string) *models.Person {
	if g := m.Graph(); g != nil {
		return g.PersonByID(id)
	}
	return nil
}

// FamilyByID looks up a family in the open graph; nil when closed or absent.
func (m *Manager) FamilyByID(id string) *models.Family {
	if g := m.Graph(); g != nil {
		return g.FamilyByID(id)
	}
	return nil
}

// FactByID looks up a fact in the open graph; nil when closed or absent.
func (m *Manager) FactByID(id string) *models.Fact {
	if g := m.Graph(); g != nil {
		return g.FactByID(id)
	}
	return nil
}

// SourceByID looks up a source in the open graph; nil when closed or absent.
func (m *Manager) SourceByID(id string) *models.Source {
	if g := m.Graph(); g != nil {
		return g.SourceByID(id)
	}
	return nil
}

// CitationsForFact returns the citations backing a fact, or nothing.
func (m *Manager) CitationsForFact(factID string) []*models.Citation {
	if g := m.Graph(); g != nil {
		return g.CitationsForFact(factID)
	}
	return nil
}

// IsEventSourced runs the provenance resolver against the open graph;
// false when closed.
func (m *Manager) IsEventSourced(person *models.Person, titlePrefix string) bool {
	if g := m.Graph(); g != nil {
		return g.IsEventSourced(person, titlePrefix)
	}
	return false
}
