// Package caseerrors provides structured error types for textcase.
//
// Import path: github.com/erraggy/textcase/caseerrors
//
// The casing functions themselves never fail. Errors only arise at the
// boundaries that feed them: the CLI, the MCP server, and style dispatch via
// [textcase.Convert]. This package lets callers tell those failures apart with
// [errors.Is] and [errors.As].
//
// # Error Types
//
//   - [ConfigError]: unknown style names, invalid output formats, conflicting
//     or missing input sources
//   - [ResourceLimitError]: batch or input size limits exceeded
//
// # Sentinel Errors
//
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//
// # Usage
//
//	out, err := textcase.Convert(style, text)
//	if errors.Is(err, caseerrors.ErrConfig) {
//	    var cfgErr *caseerrors.ConfigError
//	    if errors.As(err, &cfgErr) {
//	        fmt.Printf("bad %s: %v\n", cfgErr.Option, cfgErr.Value)
//	    }
//	}
package caseerrors
