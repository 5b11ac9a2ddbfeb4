package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"taxcollection/internal/adapters/sink"
	"taxcollection/internal/application/commands"
	"taxcollection/internal/domain"
	"taxcollection/internal/ports"
)

// RegisterReadTools adds the catalog and payload preview tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, source ports.CatalogSource) {
	s.AddTool(listItemsTool(), listItemsHandler(source))
	s.AddTool(buildPayloadTool(), buildPayloadHandler(source))
}

// --- list_items ---

func listItemsTool() mcp.Tool {
	return mcp.NewTool("list_items",
		mcp.WithDescription("List the catalog items a tax can apply to, grouped by category. Each line shows the item ID and name; category headers show the category ID."),
	)
}

func listItemsHandler(source ports.CatalogSource) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewListCatalogCommand(source).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(result.Groups) == 0 {
			return mcp.NewToolResultText("No items."), nil
		}

		var sb strings.Builder
		for _, g := range result.Groups {
			sb.WriteString(formatGroup(g))
			sb.WriteByte('\n')
			for _, item := range g.Items {
				fmt.Fprintf(&sb, "  %d  %s\n", item.ID, item.Name)
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- build_payload ---

func buildPayloadTool() mcp.Tool {
	return mcp.NewTool("build_payload",
		mcp.WithDescription("Validate a tax and build the JSON payload the form would submit, without submitting it."),
		payloadOptions()...,
	)
}

func buildPayloadHandler(source ports.CatalogSource) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd, err := submitCommand(ctx, req, source, nil)
		if err != nil {
			return toolError(err)
		}

		payload, err := cmd.Preview()
		if err != nil {
			return toolError(err)
		}
		return payloadResult(payload)
	}
}

// --- helpers ---

func payloadOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("name",
			mcp.Description("Tax name"),
			mcp.Required(),
		),
		mcp.WithString("rate",
			mcp.Description("Rate in percent as a decimal string, e.g. \"7.5\""),
			mcp.Required(),
		),
		mcp.WithString("applied_to",
			mcp.Description("\"all\" applies to every catalog item; \"some\" applies to the listed items and categories"),
			mcp.Enum(string(domain.ModeAll), string(domain.ModeSome)),
		),
		mcp.WithArray("item_ids",
			mcp.Description("Item IDs to include when applied_to is \"some\""),
			mcp.Items(map[string]any{"type": "integer"}),
		),
		mcp.WithArray("category_ids",
			mcp.Description("Category IDs whose items are all included when applied_to is \"some\""),
			mcp.Items(map[string]any{"type": "integer"}),
		),
		mcp.WithBoolean("include_uncategorized",
			mcp.Description("Include every item without a category when applied_to is \"some\""),
		),
	}
}

// payloadArgs are the arguments shared by build_payload and submit_tax
type payloadArgs struct {
	Name                 string      `json:"name"`
	Rate                 string      `json:"rate"`
	AppliedTo            string      `json:"applied_to"`
	ItemIDs              []domain.ID `json:"item_ids"`
	CategoryIDs          []domain.ID `json:"category_ids"`
	IncludeUncategorized bool        `json:"include_uncategorized"`
}

// submitCommand loads the catalog and turns the tool arguments into a
// submit command over the requested selection.
func submitCommand(ctx context.Context, req mcp.CallToolRequest, source ports.CatalogSource, target ports.PayloadSink) (*commands.SubmitTaxCommand, error) {
	var args payloadArgs
	if err := req.BindArguments(&args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	mode, err := domain.ParseMode(args.AppliedTo)
	if err != nil {
		return nil, err
	}

	result, err := commands.NewListCatalogCommand(source).Execute(ctx)
	if err != nil {
		return nil, err
	}

	selection := commands.SelectionRequest{
		Mode:          mode,
		CategoryIDs:   args.CategoryIDs,
		Uncategorized: args.IncludeUncategorized,
		ItemIDs:       args.ItemIDs,
	}.Apply(result.Catalog)

	return commands.NewSubmitTaxCommand(target, result.Catalog, selection, args.Name, args.Rate), nil
}

func payloadResult(p domain.Payload) (*mcp.CallToolResult, error) {
	data, err := sink.Encode(p)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(data), nil
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatGroup(g domain.CategoryGroup) string {
	if !g.Key.Valid {
		return "(uncategorized)"
	}
	return fmt.Sprintf("%d  %s", g.Category.ID, g.Category.Name)
}
