package registry

import "fmt"

// Status text rendered for each row.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"

	// UnknownCreatedAt is shown for methods without a creation timestamp.
	UnknownCreatedAt = "unknown"
)

// Row is the render model of one payment method. Control availability is
// explicit: the delete control of the active method is visible but disabled.
type Row struct {
	ID      string
	Label   string
	Active  bool
	Status  string
	Created string

	CanActivate   bool
	DeleteVisible bool
	DeleteEnabled bool
}

// CheckExclusive fails if more than one method is active.
func CheckExclusive(methods []PaymentMethod) error {
	var active []string
	for _, m := range methods {
		if m.IsActive {
			active = append(active, m.ID)
		}
	}
	if len(active) > 1 {
		return fmt.Errorf("%w: active ids %v", ErrInconsistentSnapshot, active)
	}
	return nil
}

// ActiveMethod returns the active method, if any.
func ActiveMethod(methods []PaymentMethod) (PaymentMethod, bool) {
	for _, m := range methods {
		if m.IsActive {
			return m, true
		}
	}
	return PaymentMethod{}, false
}

// BuildView turns a list into rows, keeping the list's order.
func BuildView(methods []PaymentMethod) []Row {
	rows := make([]Row, 0, len(methods))
	for _, m := range methods {
		row := Row{
			ID:            m.ID,
			Label:         m.Label,
			Active:        m.IsActive,
			Status:        StatusInactive,
			Created:       m.CreatedAt,
			CanActivate:   !m.IsActive,
			DeleteVisible: true,
			DeleteEnabled: !m.IsActive,
		}
		if m.IsActive {
			row.Status = StatusActive
		}
		if row.Created == "" {
			row.Created = UnknownCreatedAt
		}
		rows = append(rows, row)
	}
	return rows
}
