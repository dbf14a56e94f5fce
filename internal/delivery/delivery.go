// Package delivery defines the contract shared by every server the
// application can run.
package delivery

import "context"

// Delivery is a long-running server started by the fx app.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
