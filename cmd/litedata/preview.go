package main

import (
	"fmt"

	"litedata/cmd/litedata/cli"
	"litedata/internal/api"
	"litedata/internal/tui/components"
	"litedata/internal/tui/styles"
	"litedata/pkg/types"

	"github.com/spf13/cobra"
)

func newPreviewCmd(s *appState) *cobra.Command {
	var (
		fieldFlags []string
		fieldsFile string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print a few generated rows as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := collectFields(fieldsFile, fieldFlags)
			if err != nil {
				return err
			}
			client := api.NewClient(s.cfg.API.BaseURL, api.WithTimeout(s.cfg.API.Timeout))
			rows, err := client.Preview(cmd.Context(), types.ExportRequest{
				Fields:     list,
				Count:      api.PreviewMaxRows,
				FileFormat: types.FormatJSON,
			})
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				cli.PrintWarning("the service returned no rows")
				return nil
			}
			header, cells := components.PreviewColumns(list, rows)
			fmt.Fprintln(cmd.OutOrStdout(), components.RenderPreviewTable(header, cells, styles.Default()))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&fieldFlags, "field", "f", nil, "field as type:name (repeatable)")
	cmd.Flags().StringVar(&fieldsFile, "fields-file", "", "YAML file with a list of {dataType, name}")
	return cmd
}
