// Package notify provides the infrastructure implementation of the Notifier sink.
package notify

import (
	"context"
	"log/slog"

	deliverycontext "agridash/internal/delivery/context"
	"agridash/internal/domain/service"
)

// slogNotifier publishes transient notices as structured log events. Delivery
// surfaces (the dashboard front end) read the same notices off the API
// responses; this sink keeps an audit trail of them server-side.
type slogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier is the constructor for slogNotifier.
func NewSlogNotifier(logger *slog.Logger) service.Notifier {
	return &slogNotifier{logger: logger}
}

// Notify records a single notice with the request-scoped logger when one is
// on the context.
func (n *slogNotifier) Notify(ctx context.Context, notice service.Notice) {
	level := slog.LevelInfo
	if notice.Destructive {
		level = slog.LevelWarn
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger)
	logger.LogAttrs(ctx, level, "User notice",
		slog.String("title", notice.Title),
		slog.String("description", notice.Description),
		slog.Bool("destructive", notice.Destructive),
	)
}
