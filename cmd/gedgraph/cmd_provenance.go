package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func provenanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provenance <file.ged> <person-id> <source-prefix>",
		Short: "Check whether a person's events are backed by a source category",
		Long: `Walks the person's facts, their citations, and the cited sources, and
reports whether any source title starts with the given prefix. The match is
case-sensitive, e.g. "1900 United States Federal Census".`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			m, err := openManager(args[0], logger)
			if err != nil {
				return fmt.Errorf("provenance: %w", err)
			}
			defer m.Close()

			p := m.PersonByID(args[1])
			if p == nil {
				return fmt.Errorf("provenance: no record with id %q", args[1])
			}

			if m.IsEventSourced(p, args[2]) {
				fmt.Printf("%s: sourced by %q\n", p.FullName, args[2])
			} else {
				fmt.Printf("%s: not sourced by %q\n", p.FullName, args[2])
			}
			return nil
		},
	}
	return cmd
}
