package service

import "context"

// Notice is one transient user-facing notification. Every successful or failed
// mutation emits exactly one; failed ones are marked destructive.
type Notice struct {
	Title       string // Short headline, e.g. "Farm created".
	Description string // Supporting detail; for failures, the store's reported message.
	Destructive bool   // True when the notice reports a failure.
}

// Notifier is the sink for transient notifications. The resource managers
// publish to it; delivery layers decide how notices reach the user.
type Notifier interface {
	Notify(ctx context.Context, notice Notice)
}
