package impl

import (
	"context"
	"sync"

	"agridash/internal/domain/service"
)

// recordingNotifier captures every notice a manager emits, in order.
// Tests assert on the exact count: one notice per mutation outcome.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []service.Notice
}

func (r *recordingNotifier) Notify(_ context.Context, notice service.Notice) {
	r.mu.Lock()
	r.notices = append(r.notices, notice)
	r.mu.Unlock()
}

func (r *recordingNotifier) all() []service.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]service.Notice(nil), r.notices...)
}

func (r *recordingNotifier) last() service.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.notices[len(r.notices)-1]
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.notices)
}

func ptr[T any](v T) *T {
	return &v
}
