package main

import (
	"fmt"

	"litedata/cmd/litedata/cli"
	"litedata/pkg/types"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newExportCmd(s *appState) *cobra.Command {
	var (
		fieldFlags []string
		fieldsFile string
		rows       int
		format     string
		outDir     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate a file without the interactive form",
		Long: `Generate a file from fields given on the command line.

  litedata export --field email:contact --field city:home --rows 50 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := collectFields(fieldsFile, fieldFlags)
			if err != nil {
				return err
			}
			fileFormat := s.cfg.DefaultFormat()
			if format != "" {
				if fileFormat, err = types.ParseFileFormat(format); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("rows") {
				rows = s.cfg.Export.DefaultRows
			}
			if outDir != "" {
				s.cfg.Export.OutputDir = outDir
			}

			sess := s.loadedSession(cmd.Context())
			if err := sess.Gate.CheckCount(rows); err != nil {
				return err
			}
			if err := checkAllowed(list, sess.Allowed()); err != nil {
				return err
			}

			sess.Fields.Replace(list)
			res, err := sess.Submit(cmd.Context(), rows, fileFormat)
			if err != nil {
				return err
			}
			cli.PrintSuccess(fmt.Sprintf("%d rows saved to %s (%s)", res.Rows, res.Path, humanize.Bytes(uint64(res.Size))))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&fieldFlags, "field", "f", nil, "field as type:name (repeatable)")
	cmd.Flags().StringVar(&fieldsFile, "fields-file", "", "YAML file with a list of {dataType, name}")
	cmd.Flags().IntVarP(&rows, "rows", "n", 0, "number of rows (default from config)")
	cmd.Flags().StringVar(&format, "format", "", "csv, json, xml, html or xlsx (default from config)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory to save into (default from config)")

	return cmd
}
