package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func mediaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media <file.ged>",
		Short: "List the media attachments in a GEDCOM file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			m, err := openManager(args[0], logger)
			if err != nil {
				return fmt.Errorf("media: %w", err)
			}
			defer m.Close()

			media := m.Graph().MediaSorted()
			for i, md := range media {
				fmt.Printf("[%d] %s\n", i+1, md.DisplayTitle())
				fmt.Printf("    File: %s | Format: %s\n", md.Filename, md.Format)
			}
			if len(media) == 0 {
				fmt.Println("No media found.")
			}
			return nil
		},
	}
	return cmd
}
