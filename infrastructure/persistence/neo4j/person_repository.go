package neo4j

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Zzzisey/hackson/application/ports"
	"github.com/Zzzisey/hackson/domain/person"
	apperrors "github.com/Zzzisey/hackson/pkg/errors"
	"github.com/Zzzisey/hackson/pkg/utils"
)

const (
	searchResultLimit = 50
	connectionsLimit  = 10
)

// PersonRepository implements the graph query facade over the Neo4j client.
// Every read takes a visibility scope from the caller; the scope is compiled
// into the query's WHERE clause so filtering happens store-side.
type PersonRepository struct {
	client *Client
	logger *zap.Logger
}

// NewPersonRepository creates a repository bound to a connected client.
func NewPersonRepository(client *Client, logger *zap.Logger) *PersonRepository {
	return &PersonRepository{
		client: client,
		logger: logger,
	}
}

// compile-time interface check
var _ ports.PersonRepository = (*PersonRepository)(nil)

// List returns a page of Person nodes visible under the scope.
func (r *PersonRepository) List(ctx context.Context, skip, limit int, scope person.Scope) ([]person.Person, error) {
	var sb strings.Builder
	sb.WriteString("MATCH (p:Person)\n")
	if pred := scope.NodePredicate("p"); pred != "" {
		sb.WriteString("WHERE " + pred + "\n")
	}
	sb.WriteString("RETURN p\nSKIP $skip LIMIT $limit")

	rows, err := r.client.Read(ctx, sb.String(), map[string]any{
		"skip":  skip,
		"limit": limit,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError("list persons", err)
	}

	persons := make([]person.Person, 0, len(rows))
	for i, row := range rows {
		persons = append(persons, personFromValue(row["p"], i))
	}
	return persons, nil
}

// ListRelationships returns a page of edges between Person nodes. Under the
// public scope both endpoints and the relationship itself must be visible.
func (r *PersonRepository) ListRelationships(ctx context.Context, skip, limit int, scope person.Scope) ([]person.Relationship, error) {
	var sb strings.Builder
	sb.WriteString("MATCH (source:Person)-[r]->(target:Person)\n")
	if pred := scope.EdgePredicate("source", "target", "r"); pred != "" {
		sb.WriteString("WHERE " + pred + "\n")
	}
	sb.WriteString("RETURN r, source.id AS source_id, target.id AS target_id\nSKIP $skip LIMIT $limit")

	rows, err := r.client.Read(ctx, sb.String(), map[string]any{
		"skip":  skip,
		"limit": limit,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError("list relationships", err)
	}

	relationships := make([]person.Relationship, 0, len(rows))
	for i, row := range rows {
		relationships = append(relationships, relationshipFromRow(row, i))
	}
	return relationships, nil
}

// Get fetches one Person by identifier.
func (r *PersonRepository) Get(ctx context.Context, id string) (*person.Person, error) {
	rows, err := r.client.Read(ctx, "MATCH (p:Person {id: $id}) RETURN p", map[string]any{
		"id": id,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError("get person", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError("person")
	}

	p := personFromValue(rows[0]["p"], 0)
	return &p, nil
}

// Create writes a new Person node. The identifier is derived from the name
// plus a random suffix, and the creation timestamp is assigned here.
func (r *PersonRepository) Create(ctx context.Context, fields person.CreateFields) (*person.Person, error) {
	props := createProps(fields)

	rows, err := r.client.Write(ctx, "CREATE (p:Person $props) RETURN p", map[string]any{
		"props": props,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError("create person", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewDatabaseError("create person", fmt.Errorf("no record returned"))
	}

	p := personFromValue(rows[0]["p"], 0)
	r.logger.Info("person node created",
		zap.String("person_id", p.ID),
		zap.String("name", p.Name))
	return &p, nil
}

// Update applies a sparse update: only the set fields are written. An empty
// update set is rejected before touching the store.
func (r *PersonRepository) Update(ctx context.Context, id string, fields person.UpdateFields) (*person.Person, error) {
	assignments, params := updateAssignments(fields)
	if len(assignments) == 0 {
		return nil, apperrors.NewValidationError("no fields to update")
	}
	params["id"] = id

	cypher := fmt.Sprintf(
		"MATCH (p:Person {id: $id})\nSET %s\nRETURN p",
		strings.Join(assignments, ", "),
	)

	rows, err := r.client.Write(ctx, cypher, params)
	if err != nil {
		return nil, apperrors.NewDatabaseError("update person", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError("person")
	}

	p := personFromValue(rows[0]["p"], 0)
	return &p, nil
}

// connectionsQuery builds the neighbor traversal. Only RELATED_TO edges are
// followed, in either direction; edges of any other type are invisible here
// even though the edge listing returns them. Under the public scope the
// origin node, the neighbor, and the edge must all be visible, so a private
// node's edges cannot be enumerated by guessing its id.
func connectionsQuery(scope person.Scope) string {
	var sb strings.Builder
	sb.WriteString("MATCH (p:Person {id: $id})-[r:RELATED_TO]-(other:Person)\n")
	if pred := scope.EdgePredicate("p", "other", "r"); pred != "" {
		sb.WriteString("WHERE " + pred + "\n")
	}
	sb.WriteString("RETURN other.id AS target_id, r.strength AS strength, r.description AS description\n")
	sb.WriteString(fmt.Sprintf("LIMIT %d", connectionsLimit))
	return sb.String()
}

// Connections returns up to ten neighbors reached over RELATED_TO edges.
func (r *PersonRepository) Connections(ctx context.Context, id string, scope person.Scope) ([]person.Connection, error) {
	rows, err := r.client.Read(ctx, connectionsQuery(scope), map[string]any{
		"id": id,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError("get connections", err)
	}

	connections := make([]person.Connection, 0, len(rows))
	for _, row := range rows {
		connections = append(connections, connectionFromRow(row))
	}
	return connections, nil
}

// searchCypher matches only the first element of the list properties; a hit
// in occupation[1] and beyond does not surface.
var searchCypher = fmt.Sprintf(`MATCH (p:Person)
WHERE toLower(p.name) CONTAINS toLower($query)
   OR toLower(p.occupation[0]) CONTAINS toLower($query)
   OR toLower(p.specialty[0]) CONTAINS toLower($query)
   OR toLower(p.hobby[0]) CONTAINS toLower($query)
   OR toLower(p.achievement) CONTAINS toLower($query)
   OR toLower(p.description) CONTAINS toLower($query)
   OR toLower(p.type) CONTAINS toLower($query)
RETURN p
LIMIT %d`, searchResultLimit)

// Search matches the query case-insensitively against the name, the first
// occupation, specialty, and hobby entries, the achievement, the description,
// and the type. Results are capped.
func (r *PersonRepository) Search(ctx context.Context, query string) ([]person.Person, error) {
	rows, err := r.client.Read(ctx, searchCypher, map[string]any{
		"query": query,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError("search persons", err)
	}

	persons := make([]person.Person, 0, len(rows))
	for i, row := range rows {
		persons = append(persons, personFromValue(row["p"], i))
	}
	return persons, nil
}

// newPersonID derives a node identifier from the name, falling back to a
// bare UUID fragment for empty names.
func newPersonID(name string) string {
	suffix := uuid.NewString()[:8]
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
	if slug == "" {
		return fmt.Sprintf("person-%s", suffix)
	}
	return fmt.Sprintf("%s-%s", slug, suffix)
}

// createProps builds the property map for node creation. Unset optional
// fields are omitted so they read back as null rather than zero values.
func createProps(fields person.CreateFields) map[string]any {
	props := map[string]any{
		"id":          newPersonID(fields.Name),
		"name":        fields.Name,
		"is_verified": fields.IsVerified,
		"created_at":  utils.NowRFC3339(),
	}
	if fields.SourceType != "" {
		props["source_type"] = fields.SourceType
	}
	if fields.BirthYear != nil {
		props["birth_year"] = *fields.BirthYear
	}
	if fields.DeathYear != nil {
		props["death_year"] = *fields.DeathYear
	}
	if fields.Occupation != nil {
		props["occupation"] = fields.Occupation
	}
	if fields.Specialty != nil {
		props["specialty"] = fields.Specialty
	}
	if fields.Hobby != nil {
		props["hobby"] = fields.Hobby
	}
	if fields.Achievement != nil {
		props["achievement"] = *fields.Achievement
	}
	if fields.Type != nil {
		props["type"] = *fields.Type
	}
	if fields.Frequency != nil {
		props["frequency"] = *fields.Frequency
	}
	if fields.Degree != nil {
		props["degree"] = *fields.Degree
	}
	if fields.Description != nil {
		props["description"] = *fields.Description
	}
	if fields.HumanReadableID != nil {
		props["human_readable_id"] = *fields.HumanReadableID
	}
	if fields.KnowledgeSource != nil {
		props["knowledge_source"] = *fields.KnowledgeSource
	}
	if fields.CreatedBy != nil {
		props["created_by"] = *fields.CreatedBy
	}
	return props
}

// updateAssignments compiles the sparse update set into SET clause fragments
// and their parameters.
func updateAssignments(fields person.UpdateFields) ([]string, map[string]any) {
	var assignments []string
	params := map[string]any{}

	set := func(prop string, value any) {
		param := strings.ReplaceAll(prop, ".", "_")
		assignments = append(assignments, fmt.Sprintf("p.%s = $%s", prop, param))
		params[param] = value
	}

	if fields.Name != nil {
		set("name", *fields.Name)
	}
	if fields.BirthYear != nil {
		set("birth_year", *fields.BirthYear)
	}
	if fields.DeathYear != nil {
		set("death_year", *fields.DeathYear)
	}
	if fields.Occupation != nil {
		set("occupation", fields.Occupation)
	}
	if fields.Specialty != nil {
		set("specialty", fields.Specialty)
	}
	if fields.Hobby != nil {
		set("hobby", fields.Hobby)
	}
	if fields.Achievement != nil {
		set("achievement", *fields.Achievement)
	}
	if fields.Type != nil {
		set("type", *fields.Type)
	}
	if fields.Frequency != nil {
		set("frequency", *fields.Frequency)
	}
	if fields.Degree != nil {
		set("degree", *fields.Degree)
	}
	if fields.Description != nil {
		set("description", *fields.Description)
	}
	if fields.HumanReadableID != nil {
		set("human_readable_id", *fields.HumanReadableID)
	}
	if fields.KnowledgeSource != nil {
		set("knowledge_source", *fields.KnowledgeSource)
	}
	if fields.IsVerified != nil {
		set("is_verified", *fields.IsVerified)
	}
	return assignments, params
}
