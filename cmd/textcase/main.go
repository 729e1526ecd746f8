package main

import (
	"fmt"
	"os"

	"github.com/erraggy/textcase"
	"github.com/erraggy/textcase/cmd/textcase/commands"
)

// validCommands lists every top-level command, used for typo suggestions.
var validCommands = []string{"title", "pascal", "camel", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("textcase v%s\n", textcase.Version())
	case "build-info":
		fmt.Println(textcase.BuildInfo())
	case "help", "-h", "--help":
		printUsage()
	case "title":
		exitOnError(commands.HandleConvert(textcase.StyleTitle, os.Args[2:]))
	case "pascal":
		exitOnError(commands.HandleConvert(textcase.StylePascal, os.Args[2:]))
	case "camel":
		exitOnError(commands.HandleConvert(textcase.StyleCamel, os.Args[2:]))
	case "mcp":
		exitOnError(commands.HandleMCP(os.Args[2:]))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest valid command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, cmd := range validCommands {
		if d := levenshtein(input, cmd); d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best
}

// levenshtein computes the edit distance between a and b.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Printf(`textcase - Title Case, PascalCase, and camelCase conversion

Usage:
  textcase <command> [flags] <text...|->

Commands:
  title       Convert text to Title Case
  pascal      Convert text to PascalCase
  camel       Convert text to camelCase
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  textcase title "a BIT of NASA history"
  textcase pascal --keep-leading-spaces "  user id"
  textcase camel --no-acronyms --format json HTTP request
  echo "some text" | textcase title -

Run 'textcase <command> --help' for more information on a command.
`)
}
