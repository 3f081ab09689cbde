// Package timeouts centralizes the context timeouts used with database
// operations in HTTP handlers.
//
// Guidelines:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads and existence checks
//   - Medium: list queries and single-document writes
//   - Long: deletes with cascading cleanup across collections
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
	long   = 30 * time.Second
)

// Ping returns the timeout for health checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for single-document reads.
func Short() time.Duration { return short }

// Medium returns the timeout for list queries and simple writes.
func Medium() time.Duration { return medium }

// Long returns the timeout for operations touching multiple collections.
// Example: deleting an employee together with its attendance records.
func Long() time.Duration { return long }
