// Package mcp implements the Model Context Protocol server for gedgraph,
// exposing the open record graph to AI assistants.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/gedgraph/gedgraph/internal/graph"
	"github.com/gedgraph/gedgraph/internal/models"
)

// defaultListLimit caps list_people and search_people responses.
const defaultListLimit = 50

// Server wraps an MCPServer around a record-graph manager.
type Server struct {
	mcp     *mcpserver.MCPServer
	manager *graph.Manager
	logger  *slog.Logger
}

// NewServer creates a new MCP server over the given manager. The manager
// may have no graph open yet; tool calls then return an error response
// instead of panicking.
func NewServer(manager *graph.Manager, logger *slog.Logger) *Server {
	s := &Server{manager: manager, logger: logger}

	mcpSrv := mcpserver.NewMCPServer(
		"gedgraph",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
	)

	mcpSrv.AddTool(buildListPeopleTool(), s.handleListPeople)
	mcpSrv.AddTool(buildGetPersonTool(), s.handleGetPerson)
	mcpSrv.AddTool(buildSearchPeopleTool(), s.handleSearchPeople)
	mcpSrv.AddTool(buildIsEventSourcedTool(), s.handleIsEventSourced)
	mcpSrv.AddTool(buildStatsTool(), s.handleStats)

	s.mcp = mcpSrv
	return s
}

// MCPServer returns the underlying mcp-go MCPServer for use with ServeStdio.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcp
}

// HandleListPeople is the exported handler for the "list_people" tool.
// It is exposed for direct testing without the mcp-go transport layer.
func (s *Server) HandleListPeople(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleListPeople(ctx, req)
}

// HandleGetPerson is the exported handler for the "get_person" tool.
func (s *Server) HandleGetPerson(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleGetPerson(ctx, req)
}

// HandleSearchPeople is the exported handler for the "search_people" tool.
func (s *Server) HandleSearchPeople(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleSearchPeople(ctx, req)
}

// HandleIsEventSourced is the exported handler for the "is_event_sourced" tool.
func (s *Server) HandleIsEventSourced(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleIsEventSourced(ctx, req)
}

// HandleStats is the exported handler for the "stats" tool.
func (s *Server) HandleStats(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleStats(ctx, req)
}

// --- helpers ---

// toolResultJSON marshals v to JSON and returns it as a tool text result.
func toolResultJSON(v any) (*mcpgo.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("mcp: marshaling result: %w", err)
	}
	return mcpgo.NewToolResultText(string(b)), nil
}

// personSummary is the wire shape for a person in list responses.
type personSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Sex      string `json:"sex"`
	Lifespan string `json:"lifespan,omitempty"`
}

// factDetail is the wire shape for a fact in person detail responses.
type factDetail struct {
	Type      string `json:"type"`
	Date      string `json:"date,omitempty"`
	Place     string `json:"place,omitempty"`
	Detail    string `json:"detail,omitempty"`
	Age       string `json:"age,omitempty"`
	Citations int    `json:"citations"`
}

func summarize(p *models.Person) personSummary {
	return personSummary{
		ID:       p.ID,
		Name:     p.FullName,
		Sex:      string(p.Sex),
		Lifespan: p.Lifespan,
	}
}

// --- tool definitions ---

func buildListPeopleTool() mcpgo.Tool {
	return mcpgo.NewTool("list_people",
		mcpgo.WithDescription("List people in the open genealogy file, ordered by surname, given name, birth and death."),
		mcpgo.WithNumber("limit",
			mcpgo.Description("Maximum number of people to return (default: 50)"),
		),
	)
}

func buildGetPersonTool() mcpgo.Tool {
	return mcpgo.NewTool("get_person",
		mcpgo.WithDescription("Get a person by record ID, including their full fact list with dates, places and age labels."),
		mcpgo.WithString("id",
			mcpgo.Required(),
			mcpgo.Description("The person's record ID"),
		),
	)
}

func buildSearchPeopleTool() mcpgo.Tool {
	return mcpgo.NewTool("search_people",
		mcpgo.WithDescription("Find people whose name contains the given text (case-insensitive)."),
		mcpgo.WithString("name",
			mcpgo.Required(),
			mcpgo.Description("Name text to search for"),
		),
		mcpgo.WithNumber("limit",
			mcpgo.Description("Maximum number of results (default: 50)"),
		),
	)
}

func buildIsEventSourcedTool() mcpgo.Tool {
	return mcpgo.NewTool("is_event_sourced",
		mcpgo.WithDescription("Check whether any of a person's life events is backed by a citation to a source whose title starts with the given prefix."),
		mcpgo.WithString("person_id",
			mcpgo.Required(),
			mcpgo.Description("The person's record ID"),
		),
		mcpgo.WithString("source_prefix",
			mcpgo.Required(),
			mcpgo.Description("Source title prefix, e.g. \"1900 United States Federal Census\""),
		),
	)
}

func buildStatsTool() mcpgo.Tool {
	return mcpgo.NewTool("stats",
		mcpgo.WithDescription("Get record counts for the open genealogy file: people, families, facts by type, sources, citations, media."),
	)
}

// --- tool handlers ---

func (s *Server) handleListPeople(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	g, err := s.manager.Snapshot()
	if err != nil {
		return mcpgo.NewToolResultError("no genealogy file is open"), nil
	}

	limit := req.GetInt("limit", defaultListLimit)
	if limit <= 0 {
		limit = defaultListLimit
	}

	people := g.PeopleSorted()
	if len(people) > limit {
		people = people[:limit]
	}

	out := make([]personSummary, 0, len(people))
	for _, p := range people {
		out = append(out, summarize(p))
	}
	return toolResultJSON(map[string]any{"people": out, "total": len(g.People())})
}

func (s *Server) handleGetPerson(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	g, err := s.manager.Snapshot()
	if err != nil {
		return mcpgo.NewToolResultError("no genealogy file is open"), nil
	}

	id := req.GetString("id", "")
	if strings.TrimSpace(id) == "" {
		return mcpgo.NewToolResultError("id is required and must not be empty"), nil
	}

	p := g.PersonByID(id)
	if p == nil {
		return mcpgo.NewToolResultErrorf("person %q not found", id), nil
	}

	facts := make([]factDetail, 0, len(p.Facts))
	for _, f := range p.Facts {
		fd := factDetail{
			Type:      f.Type.Label(),
			Place:     f.Place,
			Detail:    f.Description,
			Age:       models.AgeLabel(f, p.Birth, p.Death),
			Citations: f.CitationCount,
		}
		if f.Date != nil {
			fd.Date = f.Date.Raw
		}
		facts = append(facts, fd)
	}

	result := map[string]any{
		"person": summarize(p),
		"facts":  facts,
	}
	return toolResultJSON(result)
}

func (s *Server) handleSearchPeople(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	g, err := s.manager.Snapshot()
	if err != nil {
		return mcpgo.NewToolResultError("no genealogy file is open"), nil
	}

	name := req.GetString("name", "")
	if strings.TrimSpace(name) == "" {
		return mcpgo.NewToolResultError("name is required and must not be empty"), nil
	}
	limit := req.GetInt("limit", defaultListLimit)
	if limit <= 0 {
		limit = defaultListLimit
	}

	needle := strings.ToLower(name)
	var out []personSummary
	for _, p := range g.PeopleSorted() {
		if strings.Contains(strings.ToLower(p.FullName), needle) {
			out = append(out, summarize(p))
			if len(out) >= limit {
				break
			}
		}
	}
	return toolResultJSON(map[string]any{"people": out})
}

func (s *Server) handleIsEventSourced(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	g, err := s.manager.Snapshot()
	if err != nil {
		return mcpgo.NewToolResultError("no genealogy file is open"), nil
	}

	personID := req.GetString("person_id", "")
	if strings.TrimSpace(personID) == "" {
		return mcpgo.NewToolResultError("person_id is required and must not be empty"), nil
	}
	prefix := req.GetString("source_prefix", "")
	if strings.TrimSpace(prefix) == "" {
		return mcpgo.NewToolResultError("source_prefix is required and must not be empty"), nil
	}

	p := g.PersonByID(personID)
	if p == nil {
		return mcpgo.NewToolResultErrorf("person %q not found", personID), nil
	}

	sourced := g.IsEventSourced(p, prefix)
	s.logger.Debug("mcp: provenance query", "person", personID, "prefix", prefix, "sourced", sourced)

	return toolResultJSON(map[string]any{
		"person_id":     personID,
		"source_prefix": prefix,
		"sourced":       sourced,
	})
}

func (s *Server) handleStats(_ context.Context, _ mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	g, err := s.manager.Snapshot()
	if err != nil {
		return mcpgo.NewToolResultError("no genealogy file is open"), nil
	}
	return toolResultJSON(g.Stats())
}
