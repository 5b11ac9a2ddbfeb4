package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"taxcollection/internal/application/commands"
)

func newItemsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "List the catalog items grouped by category",
		Long: `List every catalog item a tax can apply to, grouped by category in the
order the categories first appear.

Examples:
  taxform-cli items
  taxform-cli items --catalog shop.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := opts.catalogSource()
			if err != nil {
				return err
			}

			result, err := commands.NewListCatalogCommand(source).Execute(cmd.Context())
			if err != nil {
				return err
			}

			bold := color.New(color.Bold).SprintFunc()

			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold("ID"), bold("NAME"), bold("CATEGORY"))
			for _, g := range result.Groups {
				category := g.Label()
				if category == "" {
					category = "-"
				}
				for _, item := range g.Items {
					tbl.AddRow(strconv.FormatInt(int64(item.ID), 10), item.Name, category)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, tbl)
			fmt.Fprintf(out, "\n%d item(s) in %d group(s) from %s\n",
				result.Catalog.Len(), len(result.Groups), source.Describe())
			return nil
		},
	}
}
