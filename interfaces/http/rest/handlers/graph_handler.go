package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Zzzisey/hackson/application/services"
	"github.com/Zzzisey/hackson/domain/person"
	"github.com/Zzzisey/hackson/pkg/auth"
	"github.com/Zzzisey/hackson/pkg/common"
	apperrors "github.com/Zzzisey/hackson/pkg/errors"
)

// GraphHandler serves the graph read endpoints. The network and connections
// routes accept anonymous callers; their reads are scoped down to
// system/public data. Everything else requires authentication and reads at
// full visibility.
type GraphHandler struct {
	graph  *services.GraphService
	logger *zap.Logger
}

// NewGraphHandler creates the graph endpoints.
func NewGraphHandler(graph *services.GraphService, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{graph: graph, logger: logger}
}

// callerScope derives the visibility scope from the request context.
func callerScope(r *http.Request) person.Scope {
	return person.ScopeFor(auth.UserOrNil(r.Context()) != nil)
}

// Nodes handles GET /api/graph/nodes.
func (h *GraphHandler) Nodes(w http.ResponseWriter, r *http.Request) {
	page := common.ExtractPageParams(r)

	nodes, err := h.graph.Nodes(r.Context(), page.Skip, page.Limit, person.ScopeFull)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]any{"nodes": nodes})
}

// Edges handles GET /api/graph/edges.
func (h *GraphHandler) Edges(w http.ResponseWriter, r *http.Request) {
	page := common.ExtractPageParams(r)

	edges, err := h.graph.Edges(r.Context(), page.Skip, page.Limit, person.ScopeFull)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]any{"edges": edges})
}

// Search handles GET /api/graph/nodes/search?q=.
func (h *GraphHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, h.logger, apperrors.NewValidationError("query parameter 'q' is required"))
		return
	}

	nodes, err := h.graph.Search(r.Context(), query)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]any{"nodes": nodes})
}

// SearchOptimized handles GET /api/graph/nodes/search/optimized?q=.
func (h *GraphHandler) SearchOptimized(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, h.logger, apperrors.NewValidationError("query parameter 'q' is required"))
		return
	}

	nodes, err := h.graph.SearchOptimized(r.Context(), query)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]any{"nodes": nodes})
}

// Network handles GET /api/graph/network. Nodes and edges paginate
// independently via skip_nodes/limit_nodes and skip_edges/limit_edges.
func (h *GraphHandler) Network(w http.ResponseWriter, r *http.Request) {
	nodePage := common.ExtractPrefixedPageParams(r, "nodes")
	edgePage := common.ExtractPrefixedPageParams(r, "edges")

	data, err := h.graph.Network(r.Context(),
		nodePage.Skip, nodePage.Limit, edgePage.Skip, edgePage.Limit, callerScope(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, data)
}

// NetworkOptimized handles GET /api/graph/network/optimized.
func (h *GraphHandler) NetworkOptimized(w http.ResponseWriter, r *http.Request) {
	nodePage := common.ExtractPrefixedPageParams(r, "nodes")
	edgePage := common.ExtractPrefixedPageParams(r, "edges")

	data, err := h.graph.OptimizedNetwork(r.Context(),
		nodePage.Skip, nodePage.Limit, edgePage.Skip, edgePage.Limit, callerScope(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, data)
}

// Connections handles GET /api/graph/nodes/{id}/connections.
func (h *GraphHandler) Connections(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	connections, err := h.graph.Connections(r.Context(), id, callerScope(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]any{"connections": connections})
}
