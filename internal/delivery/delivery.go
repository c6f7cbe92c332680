// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is implemented by every server the application exposes. Each
// delivery blocks in Serve until shutdown and is collected by the runner via
// the "deliveries" group.
type Delivery interface {
	Serve(ctx context.Context) error
}
