// Package commands provides CLI command handlers for textcase.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/textcase/caseerrors"
	"github.com/erraggy/textcase/internal/stringutil"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special argument used to indicate reading from stdin.
const StdinFilePath = "-"

// stdin and stdout are swapped by tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return &caseerrors.ConfigError{
			Option:  "format",
			Value:   format,
			Message: "valid formats: " + stringutil.CombineWith(", ", []string{FormatText, FormatJSON, FormatYAML}),
		}
	}
	return nil
}

// OutputStructured writes data in the specified format (json or yaml) to w.
// Returns an error if marshaling fails.
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	_, err = fmt.Fprintln(w, string(bytes))
	return err
}
