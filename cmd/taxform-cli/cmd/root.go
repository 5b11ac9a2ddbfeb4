package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"taxcollection/internal/adapters"
	"taxcollection/internal/config"
	"taxcollection/internal/ports"
)

// options carries the persistent flags and the resources they select
type options struct {
	catalogPath  string
	databasePath string
	verbose      bool

	cfg    *config.Config
	source ports.CatalogSource
	close  func() error
}

// NewRootCmd builds the taxform-cli command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "taxform-cli",
		Short: "Build tax payloads from the command line",
		Long: `taxform-cli lists the catalog a tax can apply to, builds the payload the
Add Tax form would submit, and imports catalogs into a SQLite database.

The catalog comes from --catalog (JSON or YAML), else --db (SQLite),
else the TAXFORM_CATALOG / TAXFORM_DB settings, else a built-in sample.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			return opts.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.close == nil {
				return nil
			}
			return opts.close()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.catalogPath, "catalog", "c", "", "catalog file (.json, .yaml)")
	cmd.PersistentFlags().StringVar(&opts.databasePath, "db", "", "SQLite catalog database")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(newItemsCmd(opts))
	cmd.AddCommand(newPayloadCmd(opts))
	cmd.AddCommand(newImportCmd(opts))

	return cmd
}

func (o *options) init(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if o.catalogPath != "" {
		cfg.CatalogPath = config.ExpandHome(o.catalogPath)
	}
	if o.databasePath != "" {
		cfg.DatabasePath = config.ExpandHome(o.databasePath)
	}
	o.cfg = cfg

	slog.Debug("configuration loaded", "catalog", cfg.CatalogPath, "database", cfg.DatabasePath, "config", config.Path())
	return nil
}

// catalogSource opens the configured catalog source on first use
func (o *options) catalogSource() (ports.CatalogSource, error) {
	if o.source != nil {
		return o.source, nil
	}

	source, closeFn, err := adapters.OpenCatalogSource(o.cfg)
	if err != nil {
		return nil, err
	}
	o.source = source
	o.close = closeFn
	return source, nil
}
