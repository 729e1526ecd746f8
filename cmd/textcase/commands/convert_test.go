package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/textcase"
	"github.com/erraggy/textcase/caseerrors"
)

// captureIO swaps stdin/stdout for the duration of a test and returns the
// buffer that receives command output.
func captureIO(t *testing.T, input string) *bytes.Buffer {
	t.Helper()
	prevIn, prevOut := stdin, stdout
	var out bytes.Buffer
	stdin = strings.NewReader(input)
	stdout = &out
	t.Cleanup(func() {
		stdin, stdout = prevIn, prevOut
	})
	return &out
}

func TestSetupConvertFlags(t *testing.T) {
	fs, flags := SetupConvertFlags(textcase.StyleCamel)

	t.Run("default values", func(t *testing.T) {
		assert.False(t, flags.KeepLeadingSpaces, "expected KeepLeadingSpaces to be false by default")
		assert.False(t, flags.NoAcronyms, "expected NoAcronyms to be false by default")
		assert.Equal(t, FormatText, flags.Format)
		assert.Empty(t, flags.File)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--keep-leading-spaces", "--no-acronyms", "--format", "yaml", "-file", "in.txt"}
		require.NoError(t, fs.Parse(args))

		assert.True(t, flags.KeepLeadingSpaces)
		assert.True(t, flags.NoAcronyms)
		assert.Equal(t, FormatYAML, flags.Format)
		assert.Equal(t, "in.txt", flags.File)
		assert.Equal(t, "camel", fs.Name())
	})
}

func TestHandleConvert_Text(t *testing.T) {
	const sentence = "Title case THiS string IncLudinG A BIT OF ACRONYMS and Normal words."

	tests := []struct {
		name  string
		style textcase.Style
		args  []string
		want  string
	}{
		{
			name:  "title",
			style: textcase.StyleTitle,
			args:  []string{sentence},
			want:  "Title Case This String Including A BIT OF ACRONYMS And Normal Words.\n",
		},
		{
			name:  "title without acronyms",
			style: textcase.StyleTitle,
			args:  []string{"--no-acronyms", sentence},
			want:  "Title Case This String Including A Bit Of Acronyms And Normal Words.\n",
		},
		{
			name:  "pascal joins arguments",
			style: textcase.StylePascal,
			args:  []string{"user", "profile", "page"},
			want:  "UserProfilePage\n",
		},
		{
			name:  "pascal keeps leading spaces",
			style: textcase.StylePascal,
			args:  []string{"--keep-leading-spaces", "  user id"},
			want:  "  UserId\n",
		},
		{
			name:  "camel",
			style: textcase.StyleCamel,
			args:  []string{sentence},
			want:  "titleCaseThisStringIncludingABITOFACRONYMSAndNormalWords.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureIO(t, "")
			require.NoError(t, HandleConvert(tt.style, tt.args))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestHandleConvert_Stdin(t *testing.T) {
	out := captureIO(t, " hello NASA world\n")
	require.NoError(t, HandleConvert(textcase.StyleCamel, []string{"--keep-leading-spaces", "-"}))
	assert.Equal(t, " helloNASAWorld\n", out.String())
}

func TestHandleConvert_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("api v2 client\n"), 0o600))

	out := captureIO(t, "")
	require.NoError(t, HandleConvert(textcase.StylePascal, []string{"-file", path}))
	assert.Equal(t, "ApiV2Client\n", out.String())
}

func TestHandleConvert_JSON(t *testing.T) {
	out := captureIO(t, "")
	require.NoError(t, HandleConvert(textcase.StyleTitle, []string{"--format", "json", "--no-acronyms", "a BIT"}))

	var result ConvertResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, ConvertResult{
		Style:               "title",
		Input:               "a BIT",
		Output:              "A Bit",
		TrimLeadingSpaces:   true,
		UppercaseAsAcronyms: false,
	}, result)
}

func TestHandleConvert_YAML(t *testing.T) {
	out := captureIO(t, "")
	require.NoError(t, HandleConvert(textcase.StyleCamel, []string{"--format", "yaml", "HTTP request"}))

	var result ConvertResult
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, "camel", result.Style)
	assert.Equal(t, "hTTPRequest", result.Output)
	assert.True(t, result.UppercaseAsAcronyms)
}

func TestHandleConvert_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "no input", args: []string{}, wantMsg: "no input"},
		{name: "args and file", args: []string{"-file", "x.txt", "hello"}, wantMsg: "multiple inputs"},
		{name: "stdin and file", args: []string{"-file", "x.txt", "-"}, wantMsg: "multiple inputs"},
		{name: "bad format", args: []string{"--format", "xml", "hello"}, wantMsg: "format"},
		{name: "missing file", args: []string{"-file", filepath.Join("does", "not", "exist.txt")}, wantMsg: "opening input file"},
		{name: "unknown flag", args: []string{"--shout", "hello"}, wantMsg: "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureIO(t, "")
			err := HandleConvert(textcase.StyleTitle, tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestHandleConvert_ConfigErrorsAreTyped(t *testing.T) {
	captureIO(t, "")
	err := HandleConvert(textcase.StyleTitle, []string{"--format", "xml", "hello"})
	assert.True(t, errors.Is(err, caseerrors.ErrConfig))

	err = HandleConvert(textcase.StyleTitle, []string{})
	assert.True(t, errors.Is(err, caseerrors.ErrConfig))
}

func TestHandleConvert_Help(t *testing.T) {
	captureIO(t, "")
	assert.NoError(t, HandleConvert(textcase.StylePascal, []string{"--help"}))
}

func TestHandleMCP_Help(t *testing.T) {
	assert.NoError(t, HandleMCP([]string{"--help"}))
}
