// Package export pushes an open record graph into Neo4j so the family
// structure can be explored with Cypher. Export is one-way; gedgraph never
// reads records back from the database.
package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/gedgraph/gedgraph/internal/graph"
)

// Neo4jExporter writes people, families and their relationships to Neo4j.
type Neo4jExporter struct {
	driver   neo4j.DriverWithContext
	database string
	logger   *slog.Logger
}

// NewNeo4jExporter connects to Neo4j with basic auth.
func NewNeo4jExporter(uri, username, password, database string, logger *slog.Logger) (*Neo4jExporter, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("connecting to neo4j at %s: %w", uri, err)
	}
	return &Neo4jExporter{driver: driver, database: database, logger: logger}, nil
}

// Close releases the driver.
func (e *Neo4jExporter) Close(ctx context.Context) error {
	return e.driver.Close(ctx)
}

// Export merges the graph's people and family relationships into Neo4j in a
// single write transaction. Person nodes key on the GEDCOM record ID, so
// re-exporting the same file is idempotent.
func (e *Neo4jExporter) Export(ctx context.Context, g *graph.Graph) error {
	session := e.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: e.database})
	defer func() { _ = session.Close(ctx) }()

	people := g.People()
	families := g.Families()

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, p := range people {
			params := map[string]any{
				"id":       p.ID,
				"name":     p.FullName,
				"surname":  p.Surname,
				"given":    p.Given,
				"sex":      string(p.Sex),
				"lifespan": p.Lifespan,
			}
			_, err := tx.Run(ctx,
				`MERGE (p:Person {id: $id})
				 SET p.name = $name, p.surname = $surname, p.given = $given,
				     p.sex = $sex, p.lifespan = $lifespan`,
				params)
			if err != nil {
				return nil, fmt.Errorf("merging person %s: %w", p.ID, err)
			}
		}

		for _, f := range families {
			if _, err := tx.Run(ctx, `MERGE (f:Family {id: $id})`, map[string]any{"id": f.ID}); err != nil {
				return nil, fmt.Errorf("merging family %s: %w", f.ID, err)
			}
			if f.Husband != nil {
				if err := linkSpouse(ctx, tx, f.ID, f.Husband.ID); err != nil {
					return nil, err
				}
			}
			if f.Wife != nil {
				if err := linkSpouse(ctx, tx, f.ID, f.Wife.ID); err != nil {
					return nil, err
				}
			}
			for _, child := range f.Children {
				_, err := tx.Run(ctx,
					`MATCH (p:Person {id: $pid}), (f:Family {id: $fid})
					 MERGE (p)-[:CHILD_IN]->(f)`,
					map[string]any{"pid": child.ID, "fid": f.ID})
				if err != nil {
					return nil, fmt.Errorf("linking child %s to family %s: %w", child.ID, f.ID, err)
				}
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("exporting graph to neo4j: %w", err)
	}

	e.logger.Info("exported graph to neo4j",
		"people", len(people), "families", len(families), "database", e.database)
	return nil
}

func linkSpouse(ctx context.Context, tx neo4j.ManagedTransaction, familyID, personID string) error {
	_, err := tx.Run(ctx,
		`MATCH (p:Person {id: $pid}), (f:Family {id: $fid})
		 MERGE (p)-[:SPOUSE_IN]->(f)`,
		map[string]any{"pid": personID, "fid": familyID})
	if err != nil {
		return fmt.Errorf("linking spouse %s to family %s: %w", personID, familyID, err)
	}
	return nil
}
