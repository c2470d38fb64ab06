package person

import "fmt"

// GraphNode is the verbose generic node shape: every Person field is preserved
// verbatim inside Properties, so the contract stays stable as the underlying
// schema grows optional fields.
type GraphNode struct {
	ID         string         `json:"id"`
	Label      string         `json:"label"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
}

// GraphEdge is the generic edge shape.
type GraphEdge struct {
	ID         string         `json:"id"`
	Source     string         `json:"source"`
	Target     string         `json:"target"`
	Label      string         `json:"label"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
}

// GraphData is the full network payload.
type GraphData struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// NodeFromPerson builds the generic node shape from a normalized record.
func NodeFromPerson(p Person) GraphNode {
	label := p.Name
	if label == "" {
		label = "unknown"
	}
	return GraphNode{
		ID:    p.ID,
		Label: label,
		Type:  "person",
		Properties: map[string]any{
			"name":              p.Name,
			"birth_year":        p.BirthYear,
			"death_year":        p.DeathYear,
			"occupation":        p.Occupation,
			"specialty":         p.Specialty,
			"hobby":             p.Hobby,
			"achievement":       p.Achievement,
			"type":              p.Type,
			"frequency":         p.Frequency,
			"degree":            p.Degree,
			"description":       p.Description,
			"human_readable_id": p.HumanReadableID,
			"knowledge_source":  p.KnowledgeSource,
			"source_type":       p.SourceType,
			"created_by":        p.CreatedBy,
			"is_verified":       p.IsVerified,
			"created_at":        p.CreatedAt,
		},
	}
}

// EdgeFromRelationship builds the generic edge shape.
func EdgeFromRelationship(r Relationship) GraphEdge {
	return GraphEdge{
		ID:     r.ID,
		Source: r.SourceID,
		Target: r.TargetID,
		Label:  r.Type,
		Type:   "relates_to",
		Properties: map[string]any{
			"type":        r.Type,
			"description": r.Description,
			"strength":    r.Strength,
			"source_type": r.SourceType,
			"created_by":  r.CreatedBy,
			"created_at":  r.CreatedAt,
		},
	}
}

// OptimizedNode is the lossy projection consumed directly by the frontend:
// specialty collapses to a single industry string, occupation to its first
// entry, and the life span is pre-formatted. There is no inverse mapping back
// to the generic shape.
type OptimizedNode struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	BirthYear   *int    `json:"birth_year,omitempty"`
	DeathYear   *int    `json:"death_year,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	Occupation  *string `json:"occupation,omitempty"`
	Achievement *string `json:"achievement,omitempty"`
	Description *string `json:"description,omitempty"`
	SourceType  string  `json:"source_type"`
	Type        *string `json:"type,omitempty"`
	Years       *string `json:"years,omitempty"`
	CreatedBy   *string `json:"created_by,omitempty"`
	IsVerified  bool    `json:"is_verified"`
	CreatedAt   *string `json:"created_at,omitempty"`
}

// OptimizedEdge is the compact edge projection.
type OptimizedEdge struct {
	ID          string  `json:"id"`
	Source      string  `json:"source"`
	Target      string  `json:"target"`
	Label       string  `json:"label"`
	Strength    int     `json:"strength"`
	Description *string `json:"description,omitempty"`
}

// OptimizedGraphData is the compact network payload.
type OptimizedGraphData struct {
	Nodes []OptimizedNode `json:"nodes"`
	Edges []OptimizedEdge `json:"edges"`
}

// OptimizedFromPerson projects a record into the optimized shape.
func OptimizedFromPerson(p Person) OptimizedNode {
	name := p.Name
	if name == "" {
		name = "unknown"
	}

	sourceType := SourceTypeSystem
	if p.SourceType != nil {
		sourceType = *p.SourceType
	}

	return OptimizedNode{
		ID:          p.ID,
		Name:        name,
		BirthYear:   p.BirthYear,
		DeathYear:   p.DeathYear,
		Industry:    firstOf(p.Specialty),
		Occupation:  firstOf(p.Occupation),
		Achievement: p.Achievement,
		Description: p.Description,
		SourceType:  sourceType,
		Type:        p.Type,
		Years:       formatYears(p.BirthYear, p.DeathYear),
		CreatedBy:   p.CreatedBy,
		IsVerified:  p.IsVerified,
		CreatedAt:   p.CreatedAt,
	}
}

// OptimizedFromRelationship projects an edge into the optimized shape.
func OptimizedFromRelationship(r Relationship) OptimizedEdge {
	return OptimizedEdge{
		ID:          r.ID,
		Source:      r.SourceID,
		Target:      r.TargetID,
		Label:       r.Type,
		Strength:    r.Strength,
		Description: r.Description,
	}
}

func firstOf(values []string) *string {
	if len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

// formatYears renders "{birth}-{death}", "{birth}-present" when only the birth
// year is known, and nil when neither is.
func formatYears(birth, death *int) *string {
	switch {
	case birth != nil && death != nil:
		s := fmt.Sprintf("%d-%d", *birth, *death)
		return &s
	case birth != nil:
		s := fmt.Sprintf("%d-present", *birth)
		return &s
	default:
		return nil
	}
}
