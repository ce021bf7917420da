package main

import (
	"fmt"

	"litedata/cmd/litedata/cli"
	"litedata/internal/config"
	"litedata/internal/prefs"
	"litedata/pkg/types"

	"github.com/spf13/cobra"
)

func newThemeCmd(s *appState) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [toggle|light|dark]",
		Short:     "Show or change the display mode",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"toggle", "light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var storage prefs.Storage = prefs.NewFileStorage(config.ExpandPath(s.cfg.Prefs.Path))
			if s.ephemeral {
				storage = prefs.NewMemoryStorage()
			}
			store, err := prefs.NewStore(storage)
			if err != nil {
				cli.PrintWarning(err.Error())
			}

			if len(args) == 0 {
				cli.PrintInfo(fmt.Sprintf("display mode: %s", store.Mode()))
				return nil
			}

			switch args[0] {
			case "toggle":
				_, err = store.Toggle()
			default:
				var mode types.DisplayMode
				if mode, err = types.ParseDisplayMode(args[0]); err != nil {
					return err
				}
				err = store.Set(mode)
			}
			if err != nil {
				return err
			}
			cli.PrintSuccess(fmt.Sprintf("display mode: %s", store.Mode()))
			return nil
		},
	}
}
