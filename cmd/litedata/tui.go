package main

import (
	"litedata/internal/tui"

	"github.com/spf13/cobra"
)

func newTUICmd(s *appState) *cobra.Command {
	return &cobra.Command{
		Use:         "tui",
		Short:       "Start the terminal form builder",
		Long:        `Start the terminal user interface: add fields, pick their types and names, then export.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{interactive: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, s)
		},
	}
}

func runTUI(cmd *cobra.Command, s *appState) error {
	return tui.Run(cmd.Context(), s.newSession())
}
