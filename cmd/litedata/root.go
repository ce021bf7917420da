package main

import (
	"context"
	"io"
	"os"

	"litedata/cmd/litedata/cli"
	"litedata/internal/config"
	"litedata/internal/log"
	"litedata/internal/prefs"
	"litedata/internal/session"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// interactive marks commands that own the terminal; they log to a file only.
const interactive = "interactive"

// appState carries the global flags and the loaded configuration.
type appState struct {
	cfgFile   string
	apiURL    string
	debug     bool
	ephemeral bool

	cfg *config.Config
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	s := &appState{}

	rootCmd := &cobra.Command{
		Use:     "litedata",
		Short:   "Design fake datasets and download them",
		Long:    cli.DrawLogo() + "\nLite Data builds a list of columns, asks the data service for that many rows\nof fake data, and saves the file it returns.",
		Version: version,
		Annotations: map[string]string{
			interactive: "true",
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return cmd.Help()
			}
			return runTUI(cmd, s)
		},
	}

	rootCmd.PersistentFlags().StringVar(&s.cfgFile, "config", "", "config file (default is "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&s.apiURL, "api-url", "", "base URL of the data service")
	rootCmd.PersistentFlags().BoolVar(&s.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&s.ephemeral, "ephemeral", false, "keep preferences in memory only")

	rootCmd.AddCommand(newTUICmd(s))
	rootCmd.AddCommand(newGUICmd(s))
	rootCmd.AddCommand(newPromptCmd(s))
	rootCmd.AddCommand(newExportCmd(s))
	rootCmd.AddCommand(newPreviewCmd(s))
	rootCmd.AddCommand(newTypesCmd(s))
	rootCmd.AddCommand(newThemeCmd(s))
	rootCmd.AddCommand(newHealthCmd(s))

	return rootCmd
}

// setup loads the configuration, applies overrides and configures logging.
func (s *appState) setup(cmd *cobra.Command) error {
	cli.Out = cmd.OutOrStdout()

	var err error
	if s.cfgFile != "" {
		s.cfg, err = config.LoadConfigFile(config.ExpandPath(s.cfgFile))
	} else {
		s.cfg, err = config.LoadConfig()
	}
	if err != nil {
		return err
	}
	s.cfg.ApplyEnv()
	if s.apiURL != "" {
		s.cfg.API.BaseURL = s.apiURL
	}
	if s.debug {
		s.cfg.Log.Debug = true
	}
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	log.SetDebug(s.cfg.Log.Debug)
	var opts []log.Option
	if s.cfg.Log.JSON {
		opts = append(opts, log.WithJSON())
	}
	if cmd.Annotations[interactive] == "true" {
		if s.cfg.Log.File != "" {
			opts = append(opts, log.WithFileOnly(config.ExpandPath(s.cfg.Log.File)))
		} else {
			opts = append(opts, log.WithOutput(io.Discard))
		}
	} else {
		opts = append(opts, log.WithOutput(cmd.ErrOrStderr()))
	}
	log.Configure(opts...)
	log.Debugf("config loaded, service at %s", s.cfg.API.BaseURL)
	return nil
}

func (s *appState) sessionOptions(extra ...session.Option) []session.Option {
	var opts []session.Option
	if s.ephemeral {
		opts = append(opts, session.WithStorage(prefs.NewMemoryStorage()))
	}
	return append(opts, extra...)
}

func (s *appState) newSession(extra ...session.Option) *session.Session {
	return session.New(s.cfg, s.sessionOptions(extra...)...)
}

// loadedSession returns a session whose allowed types have been fetched. The
// preference watcher is not started; one-shot commands do not need it.
func (s *appState) loadedSession(ctx context.Context, extra ...session.Option) *session.Session {
	s.cfg.Prefs.Watch = false
	sess := s.newSession(extra...)
	sess.Start(ctx)
	sess.Wait()
	return sess
}
