package fsckprogress

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger receives diagnostics for progress bytes that had to be dropped
// (unconvertible input). Assign a different value to redirect or silence
// it.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "fsckprogress").Logger()
