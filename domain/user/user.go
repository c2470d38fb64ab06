package user

import "time"

// User is the relational account record. It carries a weak back-reference to
// at most one Person node in the graph (LinkedPersonID + IsLinked); the graph
// node may be deleted independently, so a stale reference is tolerated and is
// not treated as corruption.
type User struct {
	ID             int64      `json:"id"`
	Email          string     `json:"email"`
	HashedPassword string     `json:"-"`
	FullName       string     `json:"full_name,omitempty"`
	IsActive       bool       `json:"is_active"`
	LinkedPersonID *string    `json:"linked_person_id,omitempty"`
	IsLinked       bool       `json:"is_linked"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}
