package main

import (
	"litedata/internal/prompt"

	"github.com/spf13/cobra"
)

func newPromptCmd(s *appState) *cobra.Command {
	return &cobra.Command{
		Use:         "prompt",
		Short:       "Answer a few questions, then export",
		Long:        `Ask for each field in turn, then the row count and the file format, and save the generated file.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{interactive: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := s.loadedSession(cmd.Context())
			_, err := prompt.NewFlow(prompt.NewSurveyDriver(), sess).Run(cmd.Context())
			return err
		},
	}
}
