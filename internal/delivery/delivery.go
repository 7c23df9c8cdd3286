// Package delivery defines the contract every transport front end fulfills.
package delivery

import "context"

// Delivery is a serving surface of the application. Implementations block in
// Serve until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
