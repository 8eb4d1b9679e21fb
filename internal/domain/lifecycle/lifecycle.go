// Package lifecycle holds shared constants for service start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps such as server
// shutdown and initial database pings.
const DefaultTimeout = 10 * time.Second
