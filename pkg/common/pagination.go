package common

import (
	"net/http"
	"strconv"
)

// PageParams carries store-side OFFSET/LIMIT pagination. Order across pages is
// not guaranteed stable between calls when the underlying data changes
// concurrently; callers that need stable pages must request ordering
// explicitly.
type PageParams struct {
	Skip  int
	Limit int
}

const (
	defaultPageLimit = 100
	maxPageLimit     = 500
)

// ExtractPageParams reads skip/limit query parameters with defaults and caps.
func ExtractPageParams(r *http.Request) PageParams {
	return PageParams{
		Skip:  queryInt(r, "skip", 0),
		Limit: clampLimit(queryInt(r, "limit", defaultPageLimit)),
	}
}

// ExtractPrefixedPageParams reads skip_{name}/limit_{name} query parameters,
// used by the network endpoints which paginate nodes and edges independently.
func ExtractPrefixedPageParams(r *http.Request, name string) PageParams {
	return PageParams{
		Skip:  queryInt(r, "skip_"+name, 0),
		Limit: clampLimit(queryInt(r, "limit_"+name, defaultPageLimit)),
	}
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}

func clampLimit(v int) int {
	if v <= 0 {
		return defaultPageLimit
	}
	if v > maxPageLimit {
		return maxPageLimit
	}
	return v
}
