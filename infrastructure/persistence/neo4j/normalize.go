package neo4j

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/Zzzisey/hackson/domain/person"
)

// Normalization turns raw driver values into canonical domain records.
// Queries return either full nodes/relationships or projected columns, and
// older graph data misses identifiers entirely, so every accessor here
// tolerates absent or oddly typed properties.

// propsOf extracts the property map from a node, relationship, or plain map
// value. Returns nil for anything else.
func propsOf(value any) map[string]any {
	switch v := value.(type) {
	case dbtype.Node:
		return v.Props
	case dbtype.Relationship:
		return v.Props
	case map[string]any:
		return v
	default:
		return nil
	}
}

func propString(props map[string]any, key string) *string {
	if v, ok := props[key].(string); ok {
		return &v
	}
	return nil
}

func propStringOr(props map[string]any, key, def string) string {
	if v := propString(props, key); v != nil {
		return *v
	}
	return def
}

// propInt converts the driver's int64 properties, tolerating float64 for
// data written by clients that serialized numbers as floats.
func propInt(props map[string]any, key string) *int {
	switch v := props[key].(type) {
	case int64:
		n := int(v)
		return &n
	case float64:
		n := int(v)
		return &n
	default:
		return nil
	}
}

func propBool(props map[string]any, key string) bool {
	v, _ := props[key].(bool)
	return v
}

// propStringSlice accepts list properties as []any or []string, and promotes
// a bare string to a single-element list.
func propStringSlice(props map[string]any, key string) []string {
	switch v := props[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{v}
	default:
		return nil
	}
}

// syntheticID builds a stable-looking placeholder for records that predate
// identifier assignment. The index keeps ids unique within one result set.
func syntheticID(prefix string, index int) string {
	return fmt.Sprintf("%s-%d-%s", prefix, index, uuid.NewString()[:8])
}

// nodeID resolves a node's identifier: the id property when present, the
// element id for nodes that carry none, and a synthesized placeholder for
// projected maps with neither.
func nodeID(value any, index int) string {
	props := propsOf(value)
	if id := propString(props, "id"); id != nil && *id != "" {
		return *id
	}
	if node, ok := value.(dbtype.Node); ok {
		return node.ElementId
	}
	if name := propString(props, "name"); name != nil && *name != "" {
		slug := strings.ReplaceAll(strings.ToLower(*name), " ", "-")
		return fmt.Sprintf("%s-%s", slug, uuid.NewString()[:8])
	}
	return syntheticID("node", index)
}

// personFromValue normalizes one node (or projected property map) into a
// canonical Person record.
func personFromValue(value any, index int) person.Person {
	props := propsOf(value)
	return person.Person{
		ID:              nodeID(value, index),
		Name:            propStringOr(props, "name", ""),
		BirthYear:       propInt(props, "birth_year"),
		DeathYear:       propInt(props, "death_year"),
		Occupation:      propStringSlice(props, "occupation"),
		Specialty:       propStringSlice(props, "specialty"),
		Hobby:           propStringSlice(props, "hobby"),
		Achievement:     propString(props, "achievement"),
		Type:            propString(props, "type"),
		Frequency:       propInt(props, "frequency"),
		Degree:          propInt(props, "degree"),
		Description:     propString(props, "description"),
		HumanReadableID: propString(props, "human_readable_id"),
		KnowledgeSource: propString(props, "knowledge_source"),
		SourceType:      propString(props, "source_type"),
		CreatedBy:       propString(props, "created_by"),
		IsVerified:      propBool(props, "is_verified"),
		CreatedAt:       propString(props, "created_at"),
	}
}

// relationshipFromRow normalizes one edge row. The row carries the
// relationship under "r" and the endpoint ids under "source_id"/"target_id";
// missing endpoints get synthesized placeholders so the output is always a
// complete edge.
func relationshipFromRow(row map[string]any, index int) person.Relationship {
	rel := row["r"]
	props := propsOf(rel)

	id := propStringOr(props, "id", "")
	if id == "" {
		if r, ok := rel.(dbtype.Relationship); ok {
			id = r.ElementId
		} else {
			id = syntheticID("edge", index)
		}
	}

	relType := propStringOr(props, "type", "")
	if relType == "" {
		if r, ok := rel.(dbtype.Relationship); ok {
			relType = r.Type
		}
	}
	if relType == "" {
		relType = person.DefaultRelationType
	}

	sourceID, _ := row["source_id"].(string)
	if sourceID == "" {
		sourceID = syntheticID("source", index)
	}
	targetID, _ := row["target_id"].(string)
	if targetID == "" {
		targetID = syntheticID("target", index)
	}

	strength := 1
	if v := propInt(props, "strength"); v != nil {
		strength = *v
	}

	return person.Relationship{
		ID:          id,
		SourceID:    sourceID,
		TargetID:    targetID,
		Type:        relType,
		Description: propString(props, "description"),
		Strength:    strength,
		SourceType:  propStringOr(props, "source_type", person.SourceTypeSystem),
		CreatedBy:   propString(props, "created_by"),
		CreatedAt:   propString(props, "created_at"),
	}
}

// connectionFromRow normalizes one neighbor row from the traversal query.
func connectionFromRow(row map[string]any) person.Connection {
	conn := person.Connection{}
	if v, ok := row["target_id"].(string); ok {
		conn.TargetID = &v
	}
	switch v := row["strength"].(type) {
	case int64:
		n := int(v)
		conn.Strength = &n
	case float64:
		n := int(v)
		conn.Strength = &n
	}
	if v, ok := row["description"].(string); ok {
		conn.Description = &v
	}
	return conn
}
