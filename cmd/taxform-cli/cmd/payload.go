package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"taxcollection/internal/adapters/sink"
	"taxcollection/internal/application/commands"
	"taxcollection/internal/domain"
)

type payloadFlags struct {
	name          string
	rate          string
	all           bool
	items         []int64
	categories    []int64
	uncategorized bool
	copy          bool
}

func newPayloadCmd(opts *options) *cobra.Command {
	f := &payloadFlags{}

	cmd := &cobra.Command{
		Use:   "payload",
		Short: "Build the JSON payload for a tax",
		Long: `Validate a tax and print the payload the Add Tax form would submit.

Without --all the tax applies to the items chosen with --item, --category
and --uncategorized. The rate is a percentage; the payload carries it as a
fraction.

Examples:
  taxform-cli payload --name VAT --rate 20 --all
  taxform-cli payload --name "Jewelry tax" --rate 7.5 --category 14 --item 14864
  taxform-cli payload --name Misc --rate 1 --uncategorized --copy`,
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

			targets := sink.Multi{sink.NewWriter(cmd.OutOrStdout()), sink.NewLog(slog.Default())}
			if f.copy {
				clip := sink.NewClipboard()
				if !clip.Available() {
					return fmt.Errorf("clipboard is not available on this system")
				}
				targets = append(targets, clip)
			}

			selection := f.selection().Apply(result.Catalog)
			submit := commands.NewSubmitTaxCommand(targets, result.Catalog, selection, f.name, f.rate)

			res, err := submit.Execute(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), res.Message)
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.name, "name", "n", "", "tax name")
	cmd.Flags().StringVarP(&f.rate, "rate", "r", "", "rate in percent, e.g. 7.5")
	cmd.Flags().BoolVar(&f.all, "all", false, "apply to every catalog item")
	cmd.Flags().Int64SliceVarP(&f.items, "item", "i", nil, "item ID to include (repeatable)")
	cmd.Flags().Int64SliceVar(&f.categories, "category", nil, "category ID whose items are included (repeatable)")
	cmd.Flags().BoolVar(&f.uncategorized, "uncategorized", false, "include items without a category")
	cmd.Flags().BoolVar(&f.copy, "copy", false, "also copy the payload to the clipboard")
	cmd.MarkFlagsMutuallyExclusive("all", "item")
	cmd.MarkFlagsMutuallyExclusive("all", "category")
	cmd.MarkFlagsMutuallyExclusive("all", "uncategorized")

	return cmd
}

func (f *payloadFlags) selection() commands.SelectionRequest {
	mode := domain.ModeSome
	if f.all {
		mode = domain.ModeAll
	}
	return commands.SelectionRequest{
		Mode:          mode,
		CategoryIDs:   toIDs(f.categories),
		Uncategorized: f.uncategorized,
		ItemIDs:       toIDs(f.items),
	}
}

func toIDs(values []int64) []domain.ID {
	ids := make([]domain.ID, len(values))
	for i, v := range values {
		ids[i] = domain.ID(v)
	}
	return ids
}
