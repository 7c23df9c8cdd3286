// Package impl provides the concrete implementations of the usecase interfaces.
// Each resource manager keeps per-owner state: the loaded records, the phase of
// the last load, the open form, and an in-flight flag that rejects overlapping
// mutations.
package impl

import (
	"context"
	"sync"

	domainerrors "agridash/internal/domain/errors"
	"agridash/internal/domain/service"

	"github.com/google/uuid"
)

// phase tracks the load lifecycle of a managed resource. A failed load keeps
// the previously loaded records; only the phase changes.
type phase int

const (
	phaseUninitialized phase = iota
	phaseLoading
	phaseReady
	phaseLoadError
)

// managerCore is the lifecycle state shared by every resource manager.
// mu guards the phase and the saving flag together with the fields of the
// embedding state struct. loadMu serializes loads so that read-or-create
// resources never insert twice for the same owner.
type managerCore struct {
	mu     sync.Mutex
	loadMu sync.Mutex
	phase  phase
	saving bool
}

// beginSave marks a mutation as in-flight. A second mutation arriving while
// one is running is rejected with ErrManagerBusy and must not touch the store.
func (c *managerCore) beginSave() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.saving {
		return domainerrors.ErrManagerBusy
	}
	c.saving = true

	return nil
}

// endSave clears the in-flight flag.
func (c *managerCore) endSave() {
	c.mu.Lock()
	c.saving = false
	c.mu.Unlock()
}

// currentPhase reads the phase under the lock.
func (c *managerCore) currentPhase() phase {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.phase
}

func (c *managerCore) setPhase(p phase) {
	c.mu.Lock()
	c.phase = p
	c.mu.Unlock()
}

// registry tracks one manager state per owner, created lazily on first use.
type registry[T any] struct {
	mu     sync.Mutex
	states map[uuid.UUID]*T
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{states: make(map[uuid.UUID]*T)}
}

// get returns the state for the owner, creating it when absent.
func (r *registry[T]) get(owner uuid.UUID) *T {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.states[owner]
	if !ok {
		state = new(T)
		r.states[owner] = state
	}

	return state
}

// notifySuccess emits the single success notice of a mutation.
func notifySuccess(ctx context.Context, notifier service.Notifier, title, description string) {
	notifier.Notify(ctx, service.Notice{
		Title:       title,
		Description: description,
	})
}

// notifyFailure emits the single destructive notice of a failed operation.
// The description carries the store's reported message, as the user sees it.
func notifyFailure(ctx context.Context, notifier service.Notifier, title string, err error) {
	notifier.Notify(ctx, service.Notice{
		Title:       title,
		Description: err.Error(),
		Destructive: true,
	})
}
