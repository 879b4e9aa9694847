package cmdoc

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

// Handler serves a documentation registry over plain net/http. The framework
// adapters in pkg/cmdoc/adapters wrap the same registry for Echo, Gin and
// Fiber applications.
type Handler struct {
	registry *Registry
	prefix   string
}

// NewHandler creates an http.Handler serving the registry under prefix
// (e.g. "/docs"): GET <prefix> returns the full doc set, GET
// <prefix>/commands/<name> returns a single command.
func NewHandler(registry *Registry, prefix string) *Handler {
	return &Handler{
		registry: registry,
		prefix:   strings.TrimSuffix(prefix, "/"),
	}
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	path := strings.TrimSuffix(r.URL.Path, "/")
	switch {
	case path == h.prefix:
		writeJSON(w, http.StatusOK, h.registry.Set())
	case strings.HasPrefix(path, h.prefix+"/commands/"):
		name := strings.TrimPrefix(path, h.prefix+"/commands/")
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
		cmd, ok := h.registry.Lookup(name)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown command: " + name})
			return
		}
		writeJSON(w, http.StatusOK, cmd)
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
