package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/erraggy/textcase"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSentence = "Title case THiS string IncLudinG A BIT OF ACRONYMS and Normal words."

func boolPtr(b bool) *bool { return &b }

func defaultConfig() *serverConfig {
	return &serverConfig{
		TrimLeadingSpaces:   true,
		UppercaseAsAcronyms: true,
		MaxBatch:            100,
		MaxInputBytes:       1 << 20,
	}
}

func TestCaseTool_Styles(t *testing.T) {
	withConfig(t, defaultConfig())

	tests := []struct {
		name  string
		style textcase.Style
		input caseInput
		want  string
	}{
		{
			name:  "title defaults",
			style: textcase.StyleTitle,
			input: caseInput{Text: sampleSentence},
			want:  "Title Case This String Including A BIT OF ACRONYMS And Normal Words.",
		},
		{
			name:  "title without acronyms",
			style: textcase.StyleTitle,
			input: caseInput{Text: sampleSentence, caseFlags: caseFlags{UppercaseAsAcronyms: boolPtr(false)}},
			want:  "Title Case This String Including A Bit Of Acronyms And Normal Words.",
		},
		{
			name:  "pascal defaults",
			style: textcase.StylePascal,
			input: caseInput{Text: sampleSentence},
			want:  "TitleCaseThisStringIncludingABITOFACRONYMSAndNormalWords.",
		},
		{
			name:  "pascal keeps leading space",
			style: textcase.StylePascal,
			input: caseInput{Text: " " + sampleSentence, caseFlags: caseFlags{TrimLeadingSpaces: boolPtr(false)}},
			want:  " TitleCaseThisStringIncludingABITOFACRONYMSAndNormalWords.",
		},
		{
			name:  "camel defaults",
			style: textcase.StyleCamel,
			input: caseInput{Text: sampleSentence},
			want:  "titleCaseThisStringIncludingABITOFACRONYMSAndNormalWords.",
		},
		{
			name:  "camel empty",
			style: textcase.StyleCamel,
			input: caseInput{Text: ""},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := caseHandler(tt.style)(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.want, output.Output)
			assert.Equal(t, string(tt.style), output.Style)
		})
	}
}

func TestCaseTool_ConfigDefaultsApply(t *testing.T) {
	c := defaultConfig()
	c.TrimLeadingSpaces = false
	c.UppercaseAsAcronyms = false
	withConfig(t, c)

	_, output, err := caseHandler(textcase.StylePascal)(context.Background(), &mcp.CallToolRequest{}, caseInput{Text: "  NASA rocket"})
	require.NoError(t, err)
	assert.Equal(t, "  NasaRocket", output.Output)
	assert.False(t, output.TrimLeadingSpaces)
	assert.False(t, output.UppercaseAsAcronyms)

	// Explicit flags override the configured defaults.
	_, output, err = caseHandler(textcase.StylePascal)(context.Background(), &mcp.CallToolRequest{}, caseInput{
		Text: "  NASA rocket",
		caseFlags: caseFlags{
			TrimLeadingSpaces:   boolPtr(true),
			UppercaseAsAcronyms: boolPtr(true),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "NASARocket", output.Output)
	assert.True(t, output.TrimLeadingSpaces)
	assert.True(t, output.UppercaseAsAcronyms)
}

func TestCaseTool_InputTooLarge(t *testing.T) {
	c := defaultConfig()
	c.MaxInputBytes = 8
	withConfig(t, c)

	result, output, err := caseHandler(textcase.StyleTitle)(context.Background(), &mcp.CallToolRequest{}, caseInput{Text: strings.Repeat("a", 9)})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Empty(t, output.Output)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "input_bytes")
}

func TestCaseTool_UnknownStyle(t *testing.T) {
	withConfig(t, defaultConfig())

	result, _, err := caseHandler(textcase.Style("snake"))(context.Background(), &mcp.CallToolRequest{}, caseInput{Text: "a b"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
