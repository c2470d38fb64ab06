package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/Zzzisey/hackson/application/ports"
	"github.com/Zzzisey/hackson/domain/person"
)

// GraphService assembles the graph read payloads. It owns no query logic;
// the repository executes scoped queries and this layer shapes the records
// into the generic and optimized contracts.
type GraphService struct {
	persons ports.PersonRepository
	logger  *zap.Logger
}

// NewGraphService creates the graph read use cases.
func NewGraphService(persons ports.PersonRepository, logger *zap.Logger) *GraphService {
	return &GraphService{
		persons: persons,
		logger:  logger,
	}
}

// Nodes returns a page of generic graph nodes.
func (s *GraphService) Nodes(ctx context.Context, skip, limit int, scope person.Scope) ([]person.GraphNode, error) {
	persons, err := s.persons.List(ctx, skip, limit, scope)
	if err != nil {
		return nil, err
	}

	nodes := make([]person.GraphNode, 0, len(persons))
	for _, p := range persons {
		nodes = append(nodes, person.NodeFromPerson(p))
	}
	return nodes, nil
}

// Edges returns a page of generic graph edges.
func (s *GraphService) Edges(ctx context.Context, skip, limit int, scope person.Scope) ([]person.GraphEdge, error) {
	relationships, err := s.persons.ListRelationships(ctx, skip, limit, scope)
	if err != nil {
		return nil, err
	}

	edges := make([]person.GraphEdge, 0, len(relationships))
	for _, r := range relationships {
		edges = append(edges, person.EdgeFromRelationship(r))
	}
	return edges, nil
}

// Network returns nodes and edges in one payload. The two collections are
// paginated independently, so an edge may reference a node outside the
// current node page.
func (s *GraphService) Network(ctx context.Context, nodeSkip, nodeLimit, edgeSkip, edgeLimit int, scope person.Scope) (*person.GraphData, error) {
	nodes, err := s.Nodes(ctx, nodeSkip, nodeLimit, scope)
	if err != nil {
		return nil, err
	}
	edges, err := s.Edges(ctx, edgeSkip, edgeLimit, scope)
	if err != nil {
		return nil, err
	}
	return &person.GraphData{Nodes: nodes, Edges: edges}, nil
}

// OptimizedNetwork returns the compact projection of the network payload.
func (s *GraphService) OptimizedNetwork(ctx context.Context, nodeSkip, nodeLimit, edgeSkip, edgeLimit int, scope person.Scope) (*person.OptimizedGraphData, error) {
	persons, err := s.persons.List(ctx, nodeSkip, nodeLimit, scope)
	if err != nil {
		return nil, err
	}
	relationships, err := s.persons.ListRelationships(ctx, edgeSkip, edgeLimit, scope)
	if err != nil {
		return nil, err
	}

	nodes := make([]person.OptimizedNode, 0, len(persons))
	for _, p := range persons {
		nodes = append(nodes, person.OptimizedFromPerson(p))
	}
	edges := make([]person.OptimizedEdge, 0, len(relationships))
	for _, r := range relationships {
		edges = append(edges, person.OptimizedFromRelationship(r))
	}
	return &person.OptimizedGraphData{Nodes: nodes, Edges: edges}, nil
}

// Search returns full-visibility search hits in the generic node shape.
func (s *GraphService) Search(ctx context.Context, query string) ([]person.GraphNode, error) {
	persons, err := s.persons.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	nodes := make([]person.GraphNode, 0, len(persons))
	for _, p := range persons {
		nodes = append(nodes, person.NodeFromPerson(p))
	}
	return nodes, nil
}

// SearchOptimized returns search hits in the optimized shape.
func (s *GraphService) SearchOptimized(ctx context.Context, query string) ([]person.OptimizedNode, error) {
	persons, err := s.persons.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	nodes := make([]person.OptimizedNode, 0, len(persons))
	for _, p := range persons {
		nodes = append(nodes, person.OptimizedFromPerson(p))
	}
	return nodes, nil
}

// Connections returns the capped neighbor list for a node.
func (s *GraphService) Connections(ctx context.Context, id string, scope person.Scope) ([]person.Connection, error) {
	return s.persons.Connections(ctx, id, scope)
}
