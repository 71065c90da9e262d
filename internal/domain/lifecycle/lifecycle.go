// Package lifecycle holds shared constants for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of long-lived
// components such as the HTTP server and the database pool.
const DefaultTimeout = 10 * time.Second
