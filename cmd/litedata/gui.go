package main

import (
	"litedata/internal/gui"

	"github.com/spf13/cobra"
)

func newGUICmd(s *appState) *cobra.Command {
	return &cobra.Command{
		Use:         "gui",
		Short:       "Launch the desktop form builder",
		Long:        `Launch the GUI version of Lite Data. Builds tagged nogui only print an error.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{interactive: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return gui.StartGUI(cmd.Context(), s.cfg, s.sessionOptions()...)
		},
	}
}
