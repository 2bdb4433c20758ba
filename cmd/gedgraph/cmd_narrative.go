package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gedgraph/gedgraph/internal/narrative"
)

func narrativeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "narrative <file.ged> <person-id>",
		Short: "Generate a short biography sketch for a person",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			if cfg.Claude.APIKey == "" {
				return fmt.Errorf("narrative: claude.api_key is not configured (set ANTHROPIC_API_KEY)")
			}

			m, err := openManager(args[0], logger)
			if err != nil {
				return fmt.Errorf("narrative: %w", err)
			}
			defer m.Close()

			p := m.PersonByID(args[1])
			if p == nil {
				return fmt.Errorf("narrative: no record with id %q", args[1])
			}

			bio := narrative.NewBiographer(cfg.Claude.APIKey, cfg.Claude.Model, logger)
			sketch, err := bio.Sketch(ctx, p)
			if err != nil {
				return fmt.Errorf("narrative: %w", err)
			}

			fmt.Println(sketch)
			return nil
		},
	}
	return cmd
}
