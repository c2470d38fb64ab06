// Package ports defines the repository interfaces the application layer
// depends on. Concrete implementations live under infrastructure/persistence.
package ports

import (
	"context"

	"github.com/Zzzisey/hackson/domain/person"
	"github.com/Zzzisey/hackson/domain/user"
)

// UserStore is the narrow contract against the relational store: lookup by
// the email natural key, account creation, and maintenance of the weak
// back-reference to the user's Person node.
type UserStore interface {
	// Create inserts a new user. Returns a conflict error when the email is
	// already registered.
	Create(ctx context.Context, u *user.User) error

	// GetByEmail looks a user up by its unique natural key. Returns a
	// not-found error when no such user exists.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// SetPersonLink records the weak back-reference from a user to its graph
	// node and flips is_linked.
	SetPersonLink(ctx context.Context, userID int64, personID string) error

	// List returns users with store-side OFFSET/LIMIT.
	List(ctx context.Context, skip, limit int) ([]*user.User, error)
}

// PersonRepository is the graph query facade: each operation issues a single
// parameterized query under the caller's visibility scope and returns
// normalized records.
type PersonRepository interface {
	List(ctx context.Context, skip, limit int, scope person.Scope) ([]person.Person, error)
	ListRelationships(ctx context.Context, skip, limit int, scope person.Scope) ([]person.Relationship, error)
	Get(ctx context.Context, id string) (*person.Person, error)
	Create(ctx context.Context, fields person.CreateFields) (*person.Person, error)
	Update(ctx context.Context, id string, fields person.UpdateFields) (*person.Person, error)
	Connections(ctx context.Context, id string, scope person.Scope) ([]person.Connection, error)
	Search(ctx context.Context, query string) ([]person.Person, error)
}
