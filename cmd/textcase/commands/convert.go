package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/textcase"
	"github.com/erraggy/textcase/internal/cliutil"
	"github.com/erraggy/textcase/internal/options"
)

// ConvertFlags contains flags for the title, pascal, and camel commands
type ConvertFlags struct {
	KeepLeadingSpaces bool
	NoAcronyms        bool
	Format            string
	File              string
}

// Options returns the textcase options selected by the flags.
func (f *ConvertFlags) Options() []textcase.Option {
	return []textcase.Option{
		textcase.WithTrimLeadingSpaces(!f.KeepLeadingSpaces),
		textcase.WithUppercaseAsAcronyms(!f.NoAcronyms),
	}
}

// ConvertResult is the structured output of a conversion.
type ConvertResult struct {
	Style               string `json:"style"                 yaml:"style"`
	Input               string `json:"input"                 yaml:"input"`
	Output              string `json:"output"                yaml:"output"`
	TrimLeadingSpaces   bool   `json:"trim_leading_spaces"   yaml:"trim_leading_spaces"`
	UppercaseAsAcronyms bool   `json:"uppercase_as_acronyms" yaml:"uppercase_as_acronyms"`
}

// SetupConvertFlags creates and configures a FlagSet for a conversion command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags(style textcase.Style) (*flag.FlagSet, *ConvertFlags) {
	name := string(style)
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.BoolVar(&flags.KeepLeadingSpaces, "keep-leading-spaces", false, "keep leading spaces instead of trimming them")
	fs.BoolVar(&flags.NoAcronyms, "no-acronyms", false, "do not preserve all-uppercase words as acronyms")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.File, "file", "", "read the text from a file")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: textcase %s [flags] <text...|->\n\n", name)
		cliutil.Writef(output, "Convert text to %s.\n\n", styleLabel(style))
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  textcase %s hello NASA world\n", name)
		cliutil.Writef(output, "  textcase %s --no-acronyms \"a BIT of text\"\n", name)
		cliutil.Writef(output, "  textcase %s --format json -file notes.txt\n", name)
		cliutil.Writef(output, "  echo \"some text\" | textcase %s -\n", name)
		cliutil.Writef(output, "\nInput:\n")
		cliutil.Writef(output, "  Positional arguments are joined with single spaces.\n")
		cliutil.Writef(output, "  Use '-' to read from stdin. A single trailing newline is dropped.\n")
	}

	return fs, flags
}

// HandleConvert executes the title, pascal, or camel command
func HandleConvert(style textcase.Style, args []string) error {
	fs, flags := SetupConvertFlags(style)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	text, err := readInput(fs.Args(), flags.File)
	if err != nil {
		fs.Usage()
		return err
	}

	out, err := textcase.Convert(style, text, flags.Options()...)
	if err != nil {
		return err
	}

	if flags.Format == FormatText {
		cliutil.Writef(stdout, "%s\n", out)
		return nil
	}

	return OutputStructured(stdout, ConvertResult{
		Style:               string(style),
		Input:               text,
		Output:              out,
		TrimLeadingSpaces:   !flags.KeepLeadingSpaces,
		UppercaseAsAcronyms: !flags.NoAcronyms,
	}, flags.Format)
}

// readInput resolves the text from exactly one of: positional arguments,
// a -file path, or stdin ("-").
func readInput(args []string, file string) (string, error) {
	fromStdin := len(args) == 1 && args[0] == StdinFilePath
	fromArgs := len(args) > 0 && !fromStdin

	if err := options.ValidateSingleInputSource(
		"no input: pass text arguments, -file, or '-' for stdin",
		"multiple inputs: use only one of text arguments, -file, or '-'",
		fromArgs, file != "", fromStdin,
	); err != nil {
		return "", err
	}

	switch {
	case fromStdin:
		return cliutil.ReadText(stdin)
	case file != "":
		f, err := os.Open(file) //nolint:gosec // G304: user-supplied path is the point of -file
		if err != nil {
			return "", fmt.Errorf("opening input file: %w", err)
		}
		defer func() { _ = f.Close() }()
		return cliutil.ReadText(f)
	default:
		return strings.Join(args, " "), nil
	}
}

func styleLabel(style textcase.Style) string {
	switch style {
	case textcase.StyleTitle:
		return "Title Case"
	case textcase.StylePascal:
		return "PascalCase"
	case textcase.StyleCamel:
		return "camelCase"
	default:
		return string(style)
	}
}
