package workqueue

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-wide structured logger for engine diagnostics:
// queue/bucket lifecycle transitions and recovered worker-start failures.
// It defaults to a zerolog.Logger writing to stderr; assign a different
// value (before first use of the package, to avoid racing worker
// goroutines) to redirect or silence it.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "workqueue").Logger()
