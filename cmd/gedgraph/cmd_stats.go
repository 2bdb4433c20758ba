package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file.ged>",
		Short: "Show record counts for a GEDCOM file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			m, err := openManager(args[0], logger)
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}
			defer m.Close()

			st := m.Graph().Stats()
			fmt.Printf("File: %s\n", m.Filename())
			fmt.Printf("People:    %d\n", st.People)
			fmt.Printf("Families:  %d\n", st.Families)
			fmt.Printf("Facts:     %d\n", st.Facts)
			fmt.Printf("Sources:   %d\n", st.Sources)
			fmt.Printf("Citations: %d\n", st.Citations)
			fmt.Printf("Media:     %d\n", st.Media)

			types := make([]string, 0, len(st.FactsByType))
			for t := range st.FactsByType {
				types = append(types, t)
			}
			sort.Strings(types)
			for _, t := range types {
				fmt.Printf("  %-16s %d\n", t, st.FactsByType[t])
			}
			return nil
		},
	}
	return cmd
}
