package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taxcollection/internal/adapters/filesystem"
	"taxcollection/internal/adapters/sqlite"
	"taxcollection/internal/application/commands"
)

func newImportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the SQLite catalog with the items of a catalog file",
		Long: `Read a JSON or YAML catalog file and replace the contents of the SQLite
catalog database with it. The database is created if it does not exist.

Examples:
  taxform-cli import shop.yaml --db ~/.local/share/taxform/catalog.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.cfg.DatabasePath == "" {
				return errors.New("no database configured: pass --db or set TAXFORM_DB")
			}

			store, err := sqlite.Open(opts.cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer store.Close()

			result, err := commands.NewImportCatalogCommand(filesystem.NewCatalogFile(args[0]), store).Execute(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}
}
