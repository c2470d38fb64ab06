package person

import "fmt"

// Scope classifies the caller for graph reads. Anonymous callers see only
// system/public data; authenticated callers see the entire graph, including
// user-contributed nodes and edges.
type Scope int

const (
	// ScopePublic restricts reads to source_type in {system, public} or unset.
	// Unset is treated as public (default-allow); see DESIGN.md for the
	// tri-state alternative that was considered and rejected.
	ScopePublic Scope = iota
	// ScopeFull applies no filtering.
	ScopeFull
)

// ScopeFor maps caller classification to a read scope. A nil caller is
// anonymous.
func ScopeFor(authenticated bool) Scope {
	if authenticated {
		return ScopeFull
	}
	return ScopePublic
}

// NodePredicate returns the Cypher predicate restricting a node alias under
// this scope, or the empty string when no filtering applies. Callers splice it
// into a WHERE clause.
func (s Scope) NodePredicate(alias string) string {
	if s == ScopeFull {
		return ""
	}
	return fmt.Sprintf("(%s.source_type IN ['system', 'public'] OR %s.source_type IS NULL)", alias, alias)
}

// EdgePredicate returns the predicate for a relationship: both endpoints and
// the relationship's own source_type must pass the node predicate.
func (s Scope) EdgePredicate(source, target, rel string) string {
	if s == ScopeFull {
		return ""
	}
	return s.NodePredicate(source) + " AND " + s.NodePredicate(target) + " AND " + s.NodePredicate(rel)
}

// Allows reports whether a record-level source_type tag is visible under this
// scope. An absent tag (nil) is treated as public.
func (s Scope) Allows(sourceType *string) bool {
	if s == ScopeFull {
		return true
	}
	if sourceType == nil {
		return true
	}
	return *sourceType == SourceTypeSystem || *sourceType == SourceTypePublic
}
