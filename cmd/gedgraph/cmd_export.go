package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gedgraph/gedgraph/internal/export"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file.ged>",
		Short: "Export the family graph to Neo4j",
		Long: `Merges Person and Family nodes with SPOUSE_IN and CHILD_IN relationships
into the configured Neo4j database. Nodes key on GEDCOM record IDs, so
re-exporting the same file updates in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			m, err := openManager(args[0], logger)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			defer m.Close()

			exp, err := export.NewNeo4jExporter(
				cfg.Neo4j.URI,
				cfg.Neo4j.Username,
				cfg.Neo4j.Password,
				cfg.Neo4j.Database,
				logger,
			)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			defer func() { _ = exp.Close(ctx) }()

			if err := exp.Export(ctx, m.Graph()); err != nil {
				return fmt.Errorf("export: %w", err)
			}

			st := m.Graph().Stats()
			fmt.Printf("Exported %d people and %d families to %s\n", st.People, st.Families, cfg.Neo4j.URI)
			return nil
		},
	}
	return cmd
}
