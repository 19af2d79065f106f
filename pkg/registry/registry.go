package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// Options configures a Registry.
type Options struct {
	// Cache defaults to a MemoryCache.
	Cache Cache

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Registry issues payment method operations against a RemoteStore and keeps
// the last consistent snapshot per parent.
type Registry struct {
	remote RemoteStore
	cache  Cache
	logger *slog.Logger

	mu      sync.Mutex
	parents map[string]*parentState
}

// State is what a front-end renders for one parent.
type State struct {
	// Methods is the last applied snapshot, in the store's order.
	Methods []PaymentMethod

	// Loaded is false until the first successful list.
	Loaded bool

	// Busy is true while a mutation for the parent is in flight.
	Busy bool

	// Stale is true when the latest refresh failed; Methods is then the
	// previous snapshot.
	Stale bool

	// Err is the latest refresh error.
	Err error
}

type parentState struct {
	mu sync.Mutex

	snapshot []PaymentMethod
	loaded   bool
	err      error

	// issued is the sequence number of the newest list request, resolved of
	// the newest one that completed. Older responses are dropped.
	issued   uint64
	resolved uint64

	mutating bool
}

// New creates a Registry over remote.
func New(remote RemoteStore, opts Options) *Registry {
	if opts.Cache == nil {
		opts.Cache = NewMemoryCache()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Registry{
		remote:  remote,
		cache:   opts.Cache,
		logger:  opts.Logger,
		parents: make(map[string]*parentState),
	}
}

func (r *Registry) parent(parentID string) *parentState {
	r.mu.Lock()
	defer r.mu.Unlock()

	ps, ok := r.parents[parentID]
	if !ok {
		ps = &parentState{}
		r.parents[parentID] = ps
	}
	return ps
}

// State returns a copy of the parent's current state.
func (r *Registry) State(parentID string) State {
	ps := r.parent(parentID)
	ps.mu.Lock()
	defer ps.mu.Unlock()

	return State{
		Methods: slices.Clone(ps.snapshot),
		Loaded:  ps.loaded,
		Busy:    ps.mutating,
		Stale:   ps.err != nil,
		Err:     ps.err,
	}
}

// List returns the parent's methods, served from the cache when present.
func (r *Registry) List(ctx context.Context, parentID string) ([]PaymentMethod, error) {
	cached, ok, err := r.cache.Get(ctx, parentID)
	if err != nil {
		r.logger.WarnContext(ctx, "payment method cache read failed", "parent_id", parentID, "error", err)
	}
	if ok && err == nil {
		if err := CheckExclusive(cached); err == nil {
			r.applyCached(parentID, cached)
			return cached, nil
		}
		r.logger.WarnContext(ctx, "discarding inconsistent cached list", "parent_id", parentID)
		r.invalidate(ctx, parentID)
	}

	return r.Refresh(ctx, parentID)
}

func (r *Registry) applyCached(parentID string, methods []PaymentMethod) {
	ps := r.parent(parentID)
	ps.mu.Lock()
	defer ps.mu.Unlock()

	// An in-flight list request owns the next snapshot.
	if ps.issued != ps.resolved {
		return
	}
	ps.snapshot = slices.Clone(methods)
	ps.loaded = true
	ps.err = nil
}

// Refresh fetches the list from the remote store and applies it unless a
// newer request has already resolved, in which case the newer snapshot is
// returned. A failed or inconsistent response leaves the previous snapshot
// in place and marks it stale.
func (r *Registry) Refresh(ctx context.Context, parentID string) ([]PaymentMethod, error) {
	ps := r.parent(parentID)

	ps.mu.Lock()
	ps.issued++
	seq := ps.issued
	ps.mu.Unlock()

	methods, err := r.remote.ListPaymentMethods(ctx, parentID)
	if err == nil {
		err = CheckExclusive(methods)
	}

	ps.mu.Lock()
	if seq < ps.resolved {
		defer ps.mu.Unlock()
		r.logger.DebugContext(ctx, "dropping superseded list response",
			"parent_id", parentID, "seq", seq, "resolved", ps.resolved)
		if ps.err != nil {
			return nil, ps.err
		}
		return slices.Clone(ps.snapshot), nil
	}
	ps.resolved = seq

	if err != nil {
		ps.err = fmt.Errorf("list payment methods: %w", err)
		failure, loaded := ps.err, ps.loaded
		ps.mu.Unlock()

		r.logger.WarnContext(ctx, "payment method refresh failed",
			"parent_id", parentID, "stale", loaded, "error", err)
		// The next List must go back to the store rather than serve the
		// cached list as fresh.
		r.invalidate(ctx, parentID)
		return nil, failure
	}

	ps.snapshot = slices.Clone(methods)
	ps.loaded = true
	ps.err = nil
	ps.mu.Unlock()

	// Cache I/O runs outside the lock. A newer response that resolved in the
	// meantime may have been overwritten by this write, so drop the entry.
	if err := r.cache.Set(ctx, parentID, methods); err != nil {
		r.logger.WarnContext(ctx, "payment method cache write failed", "parent_id", parentID, "error", err)
	}
	ps.mu.Lock()
	superseded := ps.resolved != seq
	ps.mu.Unlock()
	if superseded {
		r.invalidate(ctx, parentID)
	}

	return slices.Clone(methods), nil
}

func (r *Registry) invalidate(ctx context.Context, parentID string) {
	if err := r.cache.Invalidate(ctx, parentID); err != nil {
		r.logger.WarnContext(ctx, "payment method cache invalidate failed", "parent_id", parentID, "error", err)
	}
}

// find looks a method up in the current snapshot.
func (r *Registry) find(parentID, methodID string) (PaymentMethod, bool) {
	ps := r.parent(parentID)
	ps.mu.Lock()
	defer ps.mu.Unlock()

	for _, m := range ps.snapshot {
		if m.ID == methodID {
			return m, true
		}
	}
	return PaymentMethod{}, false
}

// beginMutation claims the parent's single mutation slot.
func (r *Registry) beginMutation(parentID string) (func(), error) {
	ps := r.parent(parentID)
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if ps.mutating {
		return nil, ErrMutationInFlight
	}
	ps.mutating = true

	return func() {
		ps.mu.Lock()
		ps.mutating = false
		ps.mu.Unlock()
	}, nil
}

// reconcile invalidates and re-reads the parent's list after a mutation
// resolved. Refresh failures are recorded on the state, not returned.
func (r *Registry) reconcile(ctx context.Context, parentID, op string, opErr error) {
	if opErr != nil && !errors.Is(opErr, ErrNotFound) && !errors.Is(opErr, ErrMethodActive) {
		return
	}

	r.invalidate(ctx, parentID)
	if _, err := r.Refresh(ctx, parentID); err != nil {
		r.logger.WarnContext(ctx, "refresh after mutation failed",
			"parent_id", parentID, "op", op, "error", err)
	}
}

// Activate makes methodID the parent's active method. It is a no-op when the
// method is already active in the current snapshot.
func (r *Registry) Activate(ctx context.Context, userID, parentID, methodID string) (*PaymentMethod, error) {
	if cur, ok := ActiveMethod(r.State(parentID).Methods); ok && cur.ID == methodID {
		return &cur, nil
	}

	release, err := r.beginMutation(parentID)
	if err != nil {
		return nil, err
	}
	defer release()

	m, err := r.remote.SetActivePaymentMethod(ctx, userID, parentID, methodID)
	r.reconcile(ctx, parentID, "activate", err)
	if err != nil {
		return nil, fmt.Errorf("activate payment method: %w", err)
	}

	r.logger.InfoContext(ctx, "payment method activated",
		"parent_id", parentID, "method_id", methodID, "user_id", userID)
	return m, nil
}

// Add creates an inactive method with the trimmed label. An empty label
// fails with ErrInvalidInput without contacting the remote store.
func (r *Registry) Add(ctx context.Context, userID, parentID, label, createdAt string) (*PaymentMethod, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, fmt.Errorf("%w: label must not be empty", ErrInvalidInput)
	}

	release, err := r.beginMutation(parentID)
	if err != nil {
		return nil, err
	}
	defer release()

	m, err := r.remote.AddPaymentMethod(ctx, userID, parentID, label, createdAt)
	r.reconcile(ctx, parentID, "add", err)
	if err != nil {
		return nil, fmt.Errorf("add payment method: %w", err)
	}

	r.logger.InfoContext(ctx, "payment method added",
		"parent_id", parentID, "method_id", m.ID, "user_id", userID)
	return m, nil
}

// Delete removes an inactive method. Deleting the method that is active in
// the current snapshot fails with ErrMethodActive without contacting the
// remote store. A method missing from the snapshot triggers a refresh first.
func (r *Registry) Delete(ctx context.Context, userID, parentID, methodID string) error {
	release, err := r.beginMutation(parentID)
	if err != nil {
		return err
	}
	defer release()

	m, ok := r.find(parentID, methodID)
	if !ok {
		if _, err := r.Refresh(ctx, parentID); err != nil {
			return fmt.Errorf("delete payment method: %w", err)
		}
		if m, ok = r.find(parentID, methodID); !ok {
			return fmt.Errorf("delete payment method %s: %w", methodID, ErrNotFound)
		}
	}
	if m.IsActive {
		return fmt.Errorf("delete payment method %s: %w", methodID, ErrMethodActive)
	}

	err = r.remote.DeletePaymentMethod(ctx, userID, parentID, methodID)
	r.reconcile(ctx, parentID, "delete", err)
	if err != nil {
		return fmt.Errorf("delete payment method: %w", err)
	}

	r.logger.InfoContext(ctx, "payment method deleted",
		"parent_id", parentID, "method_id", methodID, "user_id", userID)
	return nil
}
