package main

import (
	"fmt"

	"litedata/cmd/litedata/cli"
	"litedata/internal/api"

	"github.com/spf13/cobra"
)

func newHealthCmd(s *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the data service is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(s.cfg.API.BaseURL, api.WithTimeout(s.cfg.API.Timeout))
			h, err := client.Health(cmd.Context())
			if err != nil {
				return err
			}
			cli.PrintSuccess(fmt.Sprintf("%s: %s (%s)", client.BaseURL(), h.Status, h.Message))
			return nil
		},
	}
}
