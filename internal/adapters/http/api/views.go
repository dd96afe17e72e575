package api

import (
	"fmt"
	"net/http"

	"github.com/okian/podium/internal/domain/types"
)

// ViewsHandler serves view results as JSON.
type ViewsHandler struct {
	src ViewSource
}

// NewViewsHandler creates a new views handler.
func NewViewsHandler(src ViewSource) *ViewsHandler {
	return &ViewsHandler{src: src}
}

type viewLink struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

type viewList struct {
	Views     []viewLink          `json:"views"`
	Unmatched map[string][]string `json:"unmatched_countries,omitempty"`
}

// HandleList handles GET /api/views requests.
func (h *ViewsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	v, err := h.src.Views(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "no_views", fmt.Errorf("%w: %w", ErrNoViews, err))
		return
	}
	out := viewList{Unmatched: v.UnmatchedCountries}
	for _, name := range types.ViewNames {
		out.Views = append(out.Views, viewLink{Name: name, Href: "/api/views/" + name})
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /api/views/{name} requests.
func (h *ViewsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	v, err := h.src.Views(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "no_views", fmt.Errorf("%w: %w", ErrNoViews, err))
		return
	}
	body, ok := v.ViewNamed(name)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", fmt.Errorf("%w: %s", ErrUnknownView, name))
		return
	}
	writeJSON(w, http.StatusOK, body)
}
