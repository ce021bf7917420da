package main

import (
	"fmt"

	"litedata/cmd/litedata/cli"
	"litedata/internal/api"
	"litedata/internal/catalog"
	"litedata/pkg/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newTypesCmd(s *appState) *cobra.Command {
	var (
		allowedOnly bool
		match       string
	)

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the data types the client knows",
		Long:  `List the data type catalog. Entries the service currently offers are marked.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := catalog.All()
			if match != "" {
				var err error
				if entries, err = catalog.Match(match); err != nil {
					return fmt.Errorf("bad --match pattern: %w", err)
				}
			}

			client := api.NewClient(s.cfg.API.BaseURL, api.WithTimeout(s.cfg.API.Timeout))
			var allowed catalog.AllowedSet
			known := true
			if svc, err := client.FetchConfig(cmd.Context()); err != nil {
				if allowedOnly {
					return err
				}
				cli.PrintWarning("service unreachable; availability unknown")
				known = false
			} else {
				allowed = catalog.NewAllowedSet(svc.AllowedDataTypes)
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "LABEL", "AVAILABLE")
			shown := 0
			for _, dt := range entries {
				if allowedOnly && !allowed.Contains(dt.ID) {
					continue
				}
				t.Row(dt.ID, dt.Label, availability(dt, allowed, known))
				shown++
			}
			if shown == 0 {
				cli.PrintInfo("no matching data types")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&allowedOnly, "allowed", false, "only list types the service offers")
	cmd.Flags().StringVar(&match, "match", "", "glob over identifiers and labels, e.g. '*address*'")
	return cmd
}

func availability(dt types.DataType, allowed catalog.AllowedSet, known bool) string {
	switch {
	case !known:
		return "?"
	case allowed.Contains(dt.ID):
		return "yes"
	}
	return "no"
}
