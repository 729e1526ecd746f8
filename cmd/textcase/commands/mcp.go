package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/textcase/internal/cliutil"
	"github.com/erraggy/textcase/internal/mcpserver"
)

// HandleMCP runs the MCP server over stdio until the client disconnects or
// the process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: textcase mcp\n\n")
		cliutil.Writef(output, "Run the textcase MCP server over stdio.\n\n")
		cliutil.Writef(output, "Environment:\n")
		cliutil.Writef(output, "  TEXTCASE_TRIM_LEADING_SPACES    default for trim_leading_spaces (true)\n")
		cliutil.Writef(output, "  TEXTCASE_UPPERCASE_AS_ACRONYMS  default for uppercase_as_acronyms (true)\n")
		cliutil.Writef(output, "  TEXTCASE_MAX_BATCH              max texts per convert_batch call (100)\n")
		cliutil.Writef(output, "  TEXTCASE_MAX_INPUT_BYTES        max bytes per text (1048576)\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
