package person

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int       { return &n }
func strp(s string) *string { return &s }

func TestNodeFromPersonPreservesAllFields(t *testing.T) {
	p := Person{
		ID:         "ada-1",
		Name:       "Ada Lovelace",
		BirthYear:  intp(1815),
		DeathYear:  intp(1852),
		Specialty:  []string{"mathematics", "computing"},
		SourceType: strp(SourceTypeSystem),
		IsVerified: true,
	}

	node := NodeFromPerson(p)

	assert.Equal(t, "ada-1", node.ID)
	assert.Equal(t, "Ada Lovelace", node.Label)
	assert.Equal(t, "person", node.Type)
	assert.Equal(t, "Ada Lovelace", node.Properties["name"])
	assert.Equal(t, []string{"mathematics", "computing"}, node.Properties["specialty"])
	// absent optionals survive as nils rather than being dropped
	assert.Contains(t, node.Properties, "achievement")
	assert.Contains(t, node.Properties, "knowledge_source")
}

func TestNodeFromPersonUnknownLabel(t *testing.T) {
	node := NodeFromPerson(Person{ID: "x"})

	assert.Equal(t, "unknown", node.Label)
}

func TestOptimizedFromPersonProjection(t *testing.T) {
	p := Person{
		ID:         "ada-1",
		Name:       "Ada Lovelace",
		BirthYear:  intp(1815),
		DeathYear:  intp(1852),
		Occupation: []string{"mathematician", "writer"},
		Specialty:  []string{"analytical engines", "poetry"},
	}

	node := OptimizedFromPerson(p)

	require.NotNil(t, node.Industry)
	assert.Equal(t, "analytical engines", *node.Industry)
	require.NotNil(t, node.Occupation)
	assert.Equal(t, "mathematician", *node.Occupation)
	require.NotNil(t, node.Years)
	assert.Equal(t, "1815-1852", *node.Years)
	assert.Equal(t, SourceTypeSystem, node.SourceType)
}

func TestOptimizedYearsLivingPerson(t *testing.T) {
	node := OptimizedFromPerson(Person{ID: "x", Name: "Y", BirthYear: intp(1960)})

	require.NotNil(t, node.Years)
	assert.Equal(t, "1960-present", *node.Years)
}

func TestOptimizedYearsUnknown(t *testing.T) {
	node := OptimizedFromPerson(Person{ID: "x", Name: "Y"})

	assert.Nil(t, node.Years)
	assert.Nil(t, node.Industry)
	assert.Nil(t, node.Occupation)
}

func TestOptimizedKeepsExplicitSourceType(t *testing.T) {
	node := OptimizedFromPerson(Person{ID: "x", Name: "Y", SourceType: strp(SourceTypeUserCreated)})

	assert.Equal(t, SourceTypeUserCreated, node.SourceType)
}

func TestEdgeProjections(t *testing.T) {
	r := Relationship{
		ID:          "rel-1",
		SourceID:    "a",
		TargetID:    "b",
		Type:        DefaultRelationType,
		Strength:    4,
		Description: strp("mentor"),
		SourceType:  SourceTypePublic,
	}

	generic := EdgeFromRelationship(r)
	assert.Equal(t, "relates_to", generic.Type)
	assert.Equal(t, DefaultRelationType, generic.Label)
	assert.Equal(t, 4, generic.Properties["strength"])

	optimized := OptimizedFromRelationship(r)
	assert.Equal(t, "a", optimized.Source)
	assert.Equal(t, "b", optimized.Target)
	assert.Equal(t, 4, optimized.Strength)
	require.NotNil(t, optimized.Description)
	assert.Equal(t, "mentor", *optimized.Description)
}

func TestUpdateFieldsIsEmpty(t *testing.T) {
	assert.True(t, UpdateFields{}.IsEmpty())
	assert.False(t, UpdateFields{Name: strp("x")}.IsEmpty())
	assert.False(t, UpdateFields{Occupation: []string{}}.IsEmpty())
}
