package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gedgraph/gedgraph/internal/models"
)

func personCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person <file.ged> <id>",
		Short: "Show a person's facts, citations and derived age labels",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			m, err := openManager(args[0], logger)
			if err != nil {
				return fmt.Errorf("person: %w", err)
			}
			defer m.Close()

			p := m.PersonByID(args[1])
			if p == nil {
				return fmt.Errorf("person: no record with id %q", args[1])
			}

			fmt.Printf("%s (%s)\n", p.FullName, p.ID)
			fmt.Printf("Sex: %s | Lifespan: %s | Citations: %d | Media: %d | Notes: %d\n\n",
				p.Sex, p.Lifespan, p.CitationCount, p.MediaCount, p.NoteCount)

			for _, f := range p.Facts {
				line := f.Type.Label()
				if f.Date != nil && f.Date.Raw != "" {
					line += ", " + f.Date.Raw
				}
				if f.Place != "" {
					line += ", " + f.Place
				}
				if f.Description != "" {
					line += ": " + f.Description
				}
				if age := models.AgeLabel(f, p.Birth, p.Death); age != "" {
					line += " (" + age + ")"
				}
				fmt.Println("  " + line)

				for _, c := range m.CitationsForFact(f.ID) {
					cite := c.SourceTitle
					if cite == "" {
						cite = "(unknown source)"
					}
					if c.Page != "" {
						cite += ", " + c.Page
					}
					fmt.Println("      cited: " + cite)
				}
			}
			return nil
		},
	}
	return cmd
}
