package mcpserver

import (
	"context"

	"github.com/erraggy/textcase"
	"github.com/erraggy/textcase/caseerrors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type batchInput struct {
	Style string   `json:"style" jsonschema:"Target style: title, pascal, or camel"`
	Texts []string `json:"texts" jsonschema:"Texts to convert, in order"`
	caseFlags
}

type batchOutput struct {
	Style   string   `json:"style"`
	Count   int      `json:"count"`
	Outputs []string `json:"outputs,omitempty"`
}

func handleConvertBatch(_ context.Context, _ *mcp.CallToolRequest, input batchInput) (*mcp.CallToolResult, batchOutput, error) {
	style, err := textcase.ParseStyle(input.Style)
	if err != nil {
		return errResult(err), batchOutput{}, nil
	}

	if len(input.Texts) > cfg.MaxBatch {
		return errResult(&caseerrors.ResourceLimitError{
			ResourceType: "batch_size",
			Limit:        int64(cfg.MaxBatch),
			Actual:       int64(len(input.Texts)),
			Message:      "split the texts across several calls",
		}), batchOutput{}, nil
	}
	for _, text := range input.Texts {
		if err := checkTextSize(text); err != nil {
			return errResult(err), batchOutput{}, nil
		}
	}

	opts := input.options()
	outputs := makeSlice[string](len(input.Texts))
	for _, text := range input.Texts {
		out, err := textcase.Convert(style, text, opts...)
		if err != nil {
			return errResult(err), batchOutput{}, nil
		}
		outputs = append(outputs, out)
	}

	return nil, batchOutput{
		Style:   string(style),
		Count:   len(outputs),
		Outputs: outputs,
	}, nil
}
