// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/google/uuid"
)

// User is the session identity supplied by the external identity provider.
// The application never manages accounts itself; it only consumes the signed
// identity carried by the session token and scopes every store operation to it.
type User struct {
	ID    uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email string    // The user's primary contact email.
	Name  string    // The user's display name, used to prefill a fresh profile form.
}
