package person

// Person is the canonical record for a Person node after normalization at the
// store boundary. Optional scalars are pointers so that absent properties
// survive the round trip to JSON as null rather than zero values.
type Person struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	BirthYear       *int     `json:"birth_year"`
	DeathYear       *int     `json:"death_year"`
	Occupation      []string `json:"occupation"`
	Specialty       []string `json:"specialty"`
	Hobby           []string `json:"hobby"`
	Achievement     *string  `json:"achievement"`
	Type            *string  `json:"type"`
	Frequency       *int     `json:"frequency"`
	Degree          *int     `json:"degree"`
	Description     *string  `json:"description"`
	HumanReadableID *string  `json:"human_readable_id"`
	KnowledgeSource *string  `json:"knowledge_source"`
	SourceType      *string  `json:"source_type"`
	CreatedBy       *string  `json:"created_by"`
	IsVerified      bool     `json:"is_verified"`
	CreatedAt       *string  `json:"created_at"`
}

// Relationship is a directed edge between two Person identifiers. SourceID and
// TargetID are never empty in normalized output; the store boundary synthesizes
// placeholders when the underlying record returns null endpoints.
type Relationship struct {
	ID          string  `json:"id"`
	SourceID    string  `json:"source_id"`
	TargetID    string  `json:"target_id"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
	Strength    int     `json:"strength"`
	SourceType  string  `json:"source_type"`
	CreatedBy   *string `json:"created_by"`
	CreatedAt   *string `json:"created_at"`
}

// Connection is a single neighbor result from the RELATED_TO traversal.
type Connection struct {
	TargetID    *string `json:"target_id"`
	Strength    *int    `json:"strength"`
	Description *string `json:"description"`
}

// CreateFields carries the properties written when a Person node is created.
// The repository generates the node identifier and creation timestamp.
type CreateFields struct {
	Name            string
	BirthYear       *int
	DeathYear       *int
	Occupation      []string
	Specialty       []string
	Hobby           []string
	Achievement     *string
	Type            *string
	Frequency       *int
	Degree          *int
	Description     *string
	HumanReadableID *string
	KnowledgeSource *string
	SourceType      string
	CreatedBy       *string
	IsVerified      bool
}

// UpdateFields is the sparse update set: only non-nil fields are written, all
// others keep their stored values. An UpdateFields with nothing set is a
// validation error, not a no-op.
type UpdateFields struct {
	Name            *string
	BirthYear       *int
	DeathYear       *int
	Occupation      []string
	Specialty       []string
	Hobby           []string
	Achievement     *string
	Type            *string
	Frequency       *int
	Degree          *int
	Description     *string
	HumanReadableID *string
	KnowledgeSource *string
	IsVerified      *bool
}

// IsEmpty reports whether no field is set.
func (f UpdateFields) IsEmpty() bool {
	return f.Name == nil && f.BirthYear == nil && f.DeathYear == nil &&
		f.Occupation == nil && f.Specialty == nil && f.Hobby == nil &&
		f.Achievement == nil && f.Type == nil && f.Frequency == nil &&
		f.Degree == nil && f.Description == nil && f.HumanReadableID == nil &&
		f.KnowledgeSource == nil && f.IsVerified == nil
}

// Source type tags controlling anonymous visibility.
const (
	SourceTypeSystem      = "system"
	SourceTypePublic      = "public"
	SourceTypeUserCreated = "user_created"
)

// DefaultRelationType is the label assigned to edges whose stored type is
// absent, and the only label the neighbor traversal follows.
const DefaultRelationType = "RELATED_TO"
