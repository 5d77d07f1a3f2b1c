package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"brickset/internal/catalog"
	"brickset/internal/config"
	"brickset/internal/logger"
)

// app carries state shared by all subcommands
type app struct {
	cfg *config.Config
	log zerolog.Logger

	configPath string
	dataPath   string
	dataFormat string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "brickset",
		Short:         "Query a LEGO set catalog",
		Long:          "brickset loads a LEGO set catalog (JSON, YAML or SQLite) once and answers\nread-only questions about it. Without a subcommand it prints the full report.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default: search $BRICKSET_CONFIG, ./brickset.yaml, XDG config)")
	flags.StringVar(&a.dataPath, "data", "", "catalog data file")
	flags.StringVar(&a.dataFormat, "format", "", "data format: json, yaml or sqlite (default: from extension)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: console or json")

	report := newReportCmd(a)
	root.RunE = report.RunE
	root.Flags().AddFlagSet(report.Flags())

	root.AddCommand(
		report,
		newAllCmd(a),
		newCountTagCmd(a),
		newCountNamedCmd(a),
		newThemesCmd(a),
		newBiggerThanCmd(a),
		newMaxPiecesCmd(a),
		newStartingWithCmd(a),
		newInfoCmd(a),
		newConfigCmd(a),
	)

	return root
}

// setup resolves configuration and builds the logger
func (a *app) setup(cmd *cobra.Command) error {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if a.configPath != "" {
		cfg, path, err = config.LoadFromPath(a.configPath)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return err
	}

	// Flags win over file and environment
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Data.Path = a.dataPath
	}
	if flags.Changed("format") {
		cfg.Data.Format = a.dataFormat
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	if path != "" {
		a.log.Debug().Str("path", path).Msg("config loaded")
	}
	a.log.Debug().Msg(cfg.Summary())
	return nil
}

// open loads the catalog named by the configuration
func (a *app) open(cmd *cobra.Command) (*catalog.Repository, error) {
	src, err := catalog.NewSource(a.cfg.Data.Path, a.cfg.Data.Format)
	if err != nil {
		return nil, err
	}

	repo, err := catalog.Open(cmd.Context(), src)
	if err != nil {
		return nil, err
	}

	a.log.Info().
		Str("source", repo.Source()).
		Int("sets", repo.Len()).
		Str("fingerprint", repo.Fingerprint()).
		Msg("catalog loaded")
	return repo, nil
}

// requireLetter parses a single-character argument
func requireLetter(s string) (rune, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("expected a single letter, got %q", s)
	}
	return r[0], nil
}
