package registry_test

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/aussiebroadwan/paymethods/pkg/registry"
)

// fakeRemote is an in-memory store that enforces exclusivity the way the
// service does and counts calls per operation.
type fakeRemote struct {
	mu      sync.Mutex
	methods map[string][]registry.PaymentMethod
	nextID  int
	calls   map[string]int

	// listFn, when set, replaces the list implementation.
	listFn func(ctx context.Context, parentID string) ([]registry.PaymentMethod, error)

	// errs is returned (once) by the named operation.
	errs map[string]error

	// block, when set for an operation, is waited on before it runs.
	block map[string]chan struct{}

	lastCreatedAt string
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		methods: make(map[string][]registry.PaymentMethod),
		calls:   make(map[string]int),
		errs:    make(map[string]error),
		block:   make(map[string]chan struct{}),
	}
}

func (f *fakeRemote) seed(parentID string, methods ...registry.PaymentMethod) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.methods[parentID] = append(f.methods[parentID], methods...)
}

func (f *fakeRemote) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeRemote) failNext(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[op] = err
}

func (f *fakeRemote) blockOn(op string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.block[op] = ch
	return ch
}

func (f *fakeRemote) enter(op string) error {
	f.mu.Lock()
	f.calls[op]++
	ch := f.block[op]
	delete(f.block, op)
	f.mu.Unlock()

	if ch != nil {
		<-ch
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.errs[op]; ok {
		delete(f.errs, op)
		return err
	}
	return nil
}

func (f *fakeRemote) ListPaymentMethods(ctx context.Context, parentID string) ([]registry.PaymentMethod, error) {
	if err := f.enter("list"); err != nil {
		return nil, err
	}
	if f.listFn != nil {
		return f.listFn(ctx, parentID)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	out := slices.Clone(f.methods[parentID])
	if out == nil {
		out = []registry.PaymentMethod{}
	}
	return out, nil
}

func (f *fakeRemote) SetActivePaymentMethod(_ context.Context, _, parentID, methodID string) (*registry.PaymentMethod, error) {
	if err := f.enter("activate"); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	idx := slices.IndexFunc(f.methods[parentID], func(m registry.PaymentMethod) bool { return m.ID == methodID })
	if idx < 0 {
		return nil, fmt.Errorf("set active: %w", registry.ErrNotFound)
	}
	for i := range f.methods[parentID] {
		f.methods[parentID][i].IsActive = i == idx
	}
	m := f.methods[parentID][idx]
	return &m, nil
}

func (f *fakeRemote) AddPaymentMethod(_ context.Context, _, parentID, label, createdAt string) (*registry.PaymentMethod, error) {
	if err := f.enter("add"); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.lastCreatedAt = createdAt
	m := registry.PaymentMethod{
		ID:        fmt.Sprintf("new-%d", f.nextID),
		Label:     label,
		CreatedAt: createdAt,
	}
	f.methods[parentID] = append(f.methods[parentID], m)
	return &m, nil
}

func (f *fakeRemote) DeletePaymentMethod(_ context.Context, _, parentID, methodID string) error {
	if err := f.enter("delete"); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	idx := slices.IndexFunc(f.methods[parentID], func(m registry.PaymentMethod) bool { return m.ID == methodID })
	if idx < 0 {
		return registry.ErrNotFound
	}
	if f.methods[parentID][idx].IsActive {
		return registry.ErrMethodActive
	}
	f.methods[parentID] = slices.Delete(f.methods[parentID], idx, idx+1)
	return nil
}
