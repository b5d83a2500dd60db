// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a served transport endpoint. Implementations block in Serve
// until the listener fails or the surrounding lifecycle shuts them down.
type Delivery interface {
	Serve(ctx context.Context) error
}
