package mcpserver

import (
	"context"

	"github.com/erraggy/textcase"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type caseInput struct {
	Text string `json:"text" jsonschema:"The text to convert"`
	caseFlags
}

type caseOutput struct {
	Style               string `json:"style"`
	Output              string `json:"output"`
	TrimLeadingSpaces   bool   `json:"trim_leading_spaces"`
	UppercaseAsAcronyms bool   `json:"uppercase_as_acronyms"`
}

// caseHandler returns the tool handler for a single-text conversion in style.
func caseHandler(style textcase.Style) func(context.Context, *mcp.CallToolRequest, caseInput) (*mcp.CallToolResult, caseOutput, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, input caseInput) (*mcp.CallToolResult, caseOutput, error) {
		if err := checkTextSize(input.Text); err != nil {
			return errResult(err), caseOutput{}, nil
		}

		out, err := textcase.Convert(style, input.Text, input.options()...)
		if err != nil {
			return errResult(err), caseOutput{}, nil
		}

		trim, acronyms := input.resolve()
		return nil, caseOutput{
			Style:               string(style),
			Output:              out,
			TrimLeadingSpaces:   trim,
			UppercaseAsAcronyms: acronyms,
		}, nil
	}
}
