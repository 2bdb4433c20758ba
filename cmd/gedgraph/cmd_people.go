package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func peopleCmd() *cobra.Command {
	var fileOrder bool

	cmd := &cobra.Command{
		Use:   "people <file.ged>",
		Short: "List the people in a GEDCOM file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			m, err := openManager(args[0], logger)
			if err != nil {
				return fmt.Errorf("people: %w", err)
			}
			defer m.Close()

			people := m.PeopleSorted()
			if fileOrder {
				people = m.People()
			}

			for i, p := range people {
				name := p.FullName
				if name == "" {
					name = "(unnamed)"
				}
				fmt.Printf("[%d] %s\n", i+1, name)
				fmt.Printf("    ID: %s | Sex: %s | Lifespan: %s | Facts: %d | Citations: %d\n",
					p.ID, p.Sex, p.Lifespan, len(p.Facts), p.CitationCount)
			}

			if len(people) == 0 {
				fmt.Println("No people found.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fileOrder, "file-order", false, "list in source-file order instead of display order")
	return cmd
}
