// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes textcase conversions as MCP tools over stdio.
package mcpserver

import (
	"context"
	"log/slog"

	"github.com/erraggy/textcase"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `textcase MCP server: converts text to Title Case, PascalCase, and camelCase.

Words are maximal runs of letters; digits, spaces, and punctuation are separators and are never re-cased. All-uppercase words are kept as acronyms unless uppercase_as_acronyms=false.

Configuration: defaults are configurable via TEXTCASE_* environment variables set in your MCP client config.

Key settings:
- TEXTCASE_TRIM_LEADING_SPACES (default: true): strip leading spaces before converting
- TEXTCASE_UPPERCASE_AS_ACRONYMS (default: true): keep all-uppercase words verbatim
- TEXTCASE_MAX_BATCH (default: 100): maximum texts per convert_batch call
- TEXTCASE_MAX_INPUT_BYTES (default: 1048576): maximum size of a single text`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "textcase", Version: textcase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)

	slog.Info("starting MCP server",
		"version", textcase.Version(),
		"trim_leading_spaces", cfg.TrimLeadingSpaces,
		"uppercase_as_acronyms", cfg.UppercaseAsAcronyms)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "title_case",
		Description: "Convert text to Title Case. Every word gets an uppercase first letter and lowercase rest, except all-uppercase words (acronyms) which are kept. Separators stay in place. Leading spaces are trimmed unless trim_leading_spaces=false.",
	}, caseHandler(textcase.StyleTitle))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pascal_case",
		Description: "Convert text to PascalCase: Title Case with every space removed. Punctuation and digits are kept. With trim_leading_spaces=false the input's leading spaces are preserved in front of the result.",
	}, caseHandler(textcase.StylePascal))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "camel_case",
		Description: "Convert text to camelCase: PascalCase with the first letter lowered, even when the first word is an acronym.",
	}, caseHandler(textcase.StyleCamel))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_batch",
		Description: "Convert several texts to one style (title, pascal, or camel) in a single call. Outputs are returned in input order. The batch size limit is configurable via TEXTCASE_MAX_BATCH (default 100).",
	}, handleConvertBatch)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
