package common

import (
	"context"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/jibchain/deploykit/pkg/common/iface"
	"github.com/jibchain/deploykit/pkg/common/logger"
)

// loggerContextKey is used to store the logger in the context
type loggerContextKey struct{}

// GetLoggerFromCLIContext creates a logger based on the CLI context
// It checks the verbose flag and returns the appropriate logger
func GetLoggerFromCLIContext(cCtx *cli.Context) iface.Logger {
	verbose := cCtx.Bool("verbose")
	return GetLogger(verbose)
}

// Get logger for the env we're in
func GetLogger(verbose bool) iface.Logger {
	if IsTTY() && !isCI() {
		return logger.NewLogger(verbose)
	}
	return logger.NewZapLogger(verbose)
}

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// isCI checks if the code is running in a CI environment like GitHub Actions.
func isCI() bool {
	return os.Getenv("CI") == "true"
}

// WithLogger stores the logger in the context
func WithLogger(ctx context.Context, logger iface.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// LoggerFromContext retrieves the logger from the context
// If no logger is found, it returns a logger according to the verbose flag
func LoggerFromContext(cCtx *cli.Context) iface.Logger {
	if logger, ok := cCtx.Context.Value(loggerContextKey{}).(iface.Logger); ok {
		return logger
	}
	return GetLoggerFromCLIContext(cCtx)
}

// PeelBoolFromFlags reports whether a boolean CLI flag is set anywhere in args,
// It supports these forms:
//
//	--verbose
//	--verbose=true|false|1|0|yes|no|t|f
//	--verbose true|false|1|0|yes|no|t|f
//	-v
//	-v=true|false|1|0|yes|no|t|f
//	-v true|false|1|0|yes|no|t|f
//
// The last occurrence wins. If a flag is present without an explicit value, it is treated as true.
func PeelBoolFromFlags(args []string, longFlag, shortFlag string) bool {
	// isBoolLiteral parses common truthy and falsy string literals.
	isBoolLiteral := func(s string) (ok bool, value bool) {
		switch strings.ToLower(s) {
		case "1", "t", "true", "yes", "y":
			return true, true
		case "0", "f", "false", "no", "n":
			return true, false
		default:
			return false, false
		}
	}

	value := false

	for i := 0; i < len(args); i++ {
		token := args[i]

		switch {
		// Exact long or short flag, possibly followed by a separate value token.
		case token == longFlag || token == shortFlag:
			// If the next token exists and is a boolean literal, consume it.
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				if ok, v := isBoolLiteral(args[i+1]); ok {
					value = v
					i++ // consume the value token
					continue
				}
			}
			// No explicit value provided. Presence implies true.
			value = true

		// Equals form for the long flag, for example --verbose=true.
		case strings.HasPrefix(token, longFlag+"="):
			if ok, v := isBoolLiteral(strings.TrimPrefix(token, longFlag+"=")); ok {
				value = v
			} else {
				// Treat unknown values as presence implies true.
				value = true
			}

		// Equals form for the short flag, for example -v=false.
		case strings.HasPrefix(token, shortFlag+"="):
			if ok, v := isBoolLiteral(strings.TrimPrefix(token, shortFlag+"=")); ok {
				value = v
			} else {
				value = true
			}
		}
	}

	return value
}
