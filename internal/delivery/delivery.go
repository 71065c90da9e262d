// Package delivery defines the contract shared by the application's servers.
package delivery

import "context"

// Delivery is a long-running transport that serves requests until its
// context is cancelled or the fx lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
