// Package delivery holds the inbound adapters started by the fx lifecycle.
package delivery

import "context"

// Delivery is a long-running inbound adapter (HTTP server, push worker, sweeper).
type Delivery interface {
	// Serve blocks until the adapter stops. A clean shutdown returns nil.
	Serve(ctx context.Context) error
}
