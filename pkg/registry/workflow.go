package registry

import (
	"context"
	"strings"
	"sync"
	"time"
)

// CreatedAtLayout formats the creation timestamp captured on submit.
const CreatedAtLayout = "2006-01-02 15:04:05"

// FormState is the add form's submission state.
type FormState int

const (
	FormIdle FormState = iota
	FormSubmitting
)

func (s FormState) String() string {
	switch s {
	case FormIdle:
		return "idle"
	case FormSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// AddForm is the add-method input. The input is cleared only after a
// successful add, and only if it was not edited while submitting.
type AddForm struct {
	registry *Registry
	userID   string
	parentID string

	// Now is read when Submit is called. Defaults to time.Now.
	Now func() time.Time

	// Layout formats the creation timestamp. Defaults to CreatedAtLayout.
	Layout string

	mu    sync.Mutex
	input string
	state FormState
}

// NewAddForm creates an idle, empty form.
func NewAddForm(reg *Registry, userID, parentID string) *AddForm {
	return &AddForm{
		registry: reg,
		userID:   userID,
		parentID: parentID,
		Now:      time.Now,
		Layout:   CreatedAtLayout,
	}
}

// SetInput replaces the input text as typed.
func (f *AddForm) SetInput(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input = text
}

// Input returns the current input text.
func (f *AddForm) Input() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

// State returns the submission state.
func (f *AddForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit adds a method labelled with the trimmed input. Empty input fails
// with ErrInvalidInput and leaves the form untouched.
func (f *AddForm) Submit(ctx context.Context) (*PaymentMethod, error) {
	f.mu.Lock()
	if f.state == FormSubmitting {
		f.mu.Unlock()
		return nil, ErrMutationInFlight
	}
	submitted := f.input
	label := strings.TrimSpace(submitted)
	if label == "" {
		f.mu.Unlock()
		return nil, ErrInvalidInput
	}
	f.state = FormSubmitting
	createdAt := f.Now().Format(f.Layout)
	f.mu.Unlock()

	m, err := f.registry.Add(ctx, f.userID, f.parentID, label, createdAt)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = FormIdle
	if err != nil {
		return nil, err
	}
	// Text typed during the submit is kept.
	if f.input == submitted {
		f.input = ""
	}
	return m, nil
}

// Workflow binds a Registry to one acting user and parent.
type Workflow struct {
	Registry *Registry
	UserID   string
	ParentID string

	Form *AddForm
}

// View is the render model for one parent.
type View struct {
	Rows []Row

	Loaded bool
	Busy   bool
	Stale  bool
	Err    error

	FormInput string
	FormState FormState
}

// NewWorkflow creates a workflow with an empty add form.
func NewWorkflow(reg *Registry, userID, parentID string) *Workflow {
	return &Workflow{
		Registry: reg,
		UserID:   userID,
		ParentID: parentID,
		Form:     NewAddForm(reg, userID, parentID),
	}
}

// Load lists the parent's methods through the cache.
func (w *Workflow) Load(ctx context.Context) error {
	_, err := w.Registry.List(ctx, w.ParentID)
	return err
}

// Reload bypasses the cache.
func (w *Workflow) Reload(ctx context.Context) error {
	_, err := w.Registry.Refresh(ctx, w.ParentID)
	return err
}

// Activate activates methodID.
func (w *Workflow) Activate(ctx context.Context, methodID string) error {
	_, err := w.Registry.Activate(ctx, w.UserID, w.ParentID, methodID)
	return err
}

// Delete deletes methodID. The result is observed through the refreshed
// view; there is no intermediate state.
func (w *Workflow) Delete(ctx context.Context, methodID string) error {
	return w.Registry.Delete(ctx, w.UserID, w.ParentID, methodID)
}

// View builds the current render model.
func (w *Workflow) View() View {
	st := w.Registry.State(w.ParentID)
	return View{
		Rows:      BuildView(st.Methods),
		Loaded:    st.Loaded,
		Busy:      st.Busy || w.Form.State() == FormSubmitting,
		Stale:     st.Stale,
		Err:       st.Err,
		FormInput: w.Form.Input(),
		FormState: w.Form.State(),
	}
}
