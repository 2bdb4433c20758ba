package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gedgraph/gedgraph/internal/models"
)

func familiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "families <file.ged>",
		Short: "List the families in a GEDCOM file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			m, err := openManager(args[0], logger)
			if err != nil {
				return fmt.Errorf("families: %w", err)
			}
			defer m.Close()

			families := m.Families()
			for i, f := range families {
				fmt.Printf("[%d] Family %s\n", i+1, f.ID)
				printSpouse(f.Husband)
				printSpouse(f.Wife)
				if f.Marriage != nil && f.Marriage.Date != nil {
					fmt.Printf("    Married: %s", f.Marriage.Date.Raw)
					if f.Marriage.Place != "" {
						fmt.Printf(", %s", f.Marriage.Place)
					}
					fmt.Println()
				}
				f.SortChildrenByBirth()
				for _, c := range f.Children {
					fmt.Printf("    Child: %s (%s)\n", c.FullName, c.Lifespan)
				}
			}

			if len(families) == 0 {
				fmt.Println("No families found.")
			}
			return nil
		},
	}
	return cmd
}

func printSpouse(p *models.Person) {
	if p == nil {
		return
	}
	fmt.Printf("    %s: %s (%s)\n", p.Sex.SpouseLabel(), p.FullName, p.Lifespan)
}
