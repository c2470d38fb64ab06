package neo4j

import (
	"strings"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonFromValue_Node(t *testing.T) {
	node := dbtype.Node{
		ElementId: "4:abc:17",
		Labels:    []string{"Person"},
		Props: map[string]any{
			"id":          "ada-lovelace-1a2b3c4d",
			"name":        "Ada Lovelace",
			"birth_year":  int64(1815),
			"death_year":  int64(1852),
			"occupation":  []any{"mathematician", "writer"},
			"source_type": "system",
			"is_verified": true,
			"created_at":  "2024-01-01T00:00:00Z",
		},
	}

	p := personFromValue(node, 0)

	assert.Equal(t, "ada-lovelace-1a2b3c4d", p.ID)
	assert.Equal(t, "Ada Lovelace", p.Name)
	require.NotNil(t, p.BirthYear)
	assert.Equal(t, 1815, *p.BirthYear)
	require.NotNil(t, p.DeathYear)
	assert.Equal(t, 1852, *p.DeathYear)
	assert.Equal(t, []string{"mathematician", "writer"}, p.Occupation)
	require.NotNil(t, p.SourceType)
	assert.Equal(t, "system", *p.SourceType)
	assert.True(t, p.IsVerified)
	assert.Nil(t, p.Achievement)
	assert.Nil(t, p.Frequency)
}

func TestPersonFromValue_NodeWithoutIDUsesElementID(t *testing.T) {
	node := dbtype.Node{
		ElementId: "4:abc:42",
		Props:     map[string]any{"name": "Unnamed Import"},
	}

	p := personFromValue(node, 0)

	assert.Equal(t, "4:abc:42", p.ID)
}

func TestPersonFromValue_MapSynthesizesID(t *testing.T) {
	p := personFromValue(map[string]any{"name": "Grace Hopper"}, 3)

	assert.True(t, strings.HasPrefix(p.ID, "grace-hopper-"))
	assert.Equal(t, "Grace Hopper", p.Name)
}

func TestPersonFromValue_EmptyMapSynthesizesIndexedID(t *testing.T) {
	p := personFromValue(map[string]any{}, 7)

	assert.True(t, strings.HasPrefix(p.ID, "node-7-"))
}

func TestPersonFromValue_FloatYearTolerated(t *testing.T) {
	p := personFromValue(map[string]any{"id": "x", "birth_year": float64(1906)}, 0)

	require.NotNil(t, p.BirthYear)
	assert.Equal(t, 1906, *p.BirthYear)
}

func TestPropStringSlice_PromotesBareString(t *testing.T) {
	got := propStringSlice(map[string]any{"hobby": "chess"}, "hobby")

	assert.Equal(t, []string{"chess"}, got)
}

func TestRelationshipFromRow(t *testing.T) {
	row := map[string]any{
		"r": dbtype.Relationship{
			ElementId: "5:abc:9",
			Type:      "RELATED_TO",
			Props: map[string]any{
				"id":          "rel-1",
				"strength":    int64(3),
				"description": "colleagues",
				"source_type": "public",
			},
		},
		"source_id": "ada-lovelace-1a2b3c4d",
		"target_id": "charles-babbage-5e6f7a8b",
	}

	rel := relationshipFromRow(row, 0)

	assert.Equal(t, "rel-1", rel.ID)
	assert.Equal(t, "ada-lovelace-1a2b3c4d", rel.SourceID)
	assert.Equal(t, "charles-babbage-5e6f7a8b", rel.TargetID)
	assert.Equal(t, "RELATED_TO", rel.Type)
	assert.Equal(t, 3, rel.Strength)
	assert.Equal(t, "public", rel.SourceType)
	require.NotNil(t, rel.Description)
	assert.Equal(t, "colleagues", *rel.Description)
}

func TestRelationshipFromRow_Defaults(t *testing.T) {
	row := map[string]any{
		"r": map[string]any{},
	}

	rel := relationshipFromRow(row, 2)

	assert.True(t, strings.HasPrefix(rel.ID, "edge-2-"))
	assert.True(t, strings.HasPrefix(rel.SourceID, "source-2-"))
	assert.True(t, strings.HasPrefix(rel.TargetID, "target-2-"))
	assert.Equal(t, "RELATED_TO", rel.Type)
	assert.Equal(t, 1, rel.Strength)
	assert.Equal(t, "system", rel.SourceType)
	assert.Nil(t, rel.Description)
}

func TestConnectionFromRow(t *testing.T) {
	row := map[string]any{
		"target_id":   "x-1",
		"strength":    int64(5),
		"description": "mentor",
	}

	conn := connectionFromRow(row)

	require.NotNil(t, conn.TargetID)
	assert.Equal(t, "x-1", *conn.TargetID)
	require.NotNil(t, conn.Strength)
	assert.Equal(t, 5, *conn.Strength)
	require.NotNil(t, conn.Description)
	assert.Equal(t, "mentor", *conn.Description)
}

func TestConnectionFromRow_NullColumns(t *testing.T) {
	conn := connectionFromRow(map[string]any{
		"target_id":   nil,
		"strength":    nil,
		"description": nil,
	})

	assert.Nil(t, conn.TargetID)
	assert.Nil(t, conn.Strength)
	assert.Nil(t, conn.Description)
}
