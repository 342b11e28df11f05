// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running transport server started by the application
// runner. Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
