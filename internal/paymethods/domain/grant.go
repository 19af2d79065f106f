package domain

import "time"

// ParentGrant lets UserID manage ParentID's payment methods.
type ParentGrant struct {
	ParentID  string
	UserID    string
	CreatedBy string
	CreatedAt time.Time
}
