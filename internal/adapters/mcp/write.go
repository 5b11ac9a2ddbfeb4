package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"taxcollection/internal/ports"
)

// RegisterWriteTools adds the submission tool to the MCP server.
func RegisterWriteTools(s *server.MCPServer, source ports.CatalogSource, target ports.PayloadSink) {
	s.AddTool(submitTaxTool(), submitTaxHandler(source, target))
}

// --- submit_tax ---

func submitTaxTool() mcp.Tool {
	return mcp.NewTool("submit_tax",
		mcp.WithDescription("Validate a tax, build its payload and submit it. Returns a summary line followed by the submitted JSON."),
		payloadOptions()...,
	)
}

func submitTaxHandler(source ports.CatalogSource, target ports.PayloadSink) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd, err := submitCommand(ctx, req, source, target)
		if err != nil {
			return toolError(err)
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		res, err := payloadResult(result.Payload)
		if err != nil || res.IsError {
			return res, err
		}
		return mcp.NewToolResultText(result.Message + "\n" + textOf(res)), nil
	}
}

func textOf(res *mcp.CallToolResult) string {
	for _, c := range res.Content {
		if text, ok := c.(mcp.TextContent); ok {
			return text.Text
		}
	}
	return ""
}
