package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func sourcesCmd() *cobra.Command {
	var withCitations bool

	cmd := &cobra.Command{
		Use:   "sources <file.ged>",
		Short: "List the sources in a GEDCOM file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			m, err := openManager(args[0], logger)
			if err != nil {
				return fmt.Errorf("sources: %w", err)
			}
			defer m.Close()

			g := m.Graph()
			sources := g.Sources()
			for i, s := range sources {
				fmt.Printf("[%d] %s (%s)\n", i+1, s.Title, s.ID)
			}
			if len(sources) == 0 {
				fmt.Println("No sources found.")
			}

			if withCitations {
				fmt.Println()
				for i, c := range g.CitationsSorted() {
					title := c.SourceTitle
					if title == "" {
						title = "(unknown source)"
					}
					fmt.Printf("[%d] %s | Page: %s | Quality: %s | Facts: %d\n",
						i+1, title, c.Page, c.Quality, len(c.FactIDs))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withCitations, "citations", false, "also list citations sorted by source title and page")
	return cmd
}
