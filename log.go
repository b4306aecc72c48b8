package telomere

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-level logger. The CLI replaces it with a
// console-writer logger when --status is set; library callers that embed
// this package can swap it for their own sink before calling Compress.
var Log = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)

// componentLogger returns a child logger tagged with the subsystem name,
// matching the component string carried on every *Error.
func componentLogger(component string) zerolog.Logger {
	return Log.With().Str("component", component).Logger()
}
