package api

import (
	"html/template"
	"net/http"
	"os"
	"path/filepath"

	"github.com/okian/podium/internal/domain/types"
)

var indexTemplate = template.Must(template.ParseFS(staticFS, "index.html"))

type indexEntry struct {
	Name string
	PNG  string
	HTML string
}

type indexPage struct {
	Entries   []indexEntry
	Unmatched map[string][]string
	Err       string
}

// indexHandler lists every view with links to its chart files.
type indexHandler struct {
	src      ViewSource
	chartDir string
}

func newIndexHandler(src ViewSource, chartDir string) *indexHandler {
	return &indexHandler{src: src, chartDir: chartDir}
}

func (h *indexHandler) exists(file string) bool {
	_, err := os.Stat(filepath.Join(h.chartDir, file))
	return err == nil
}

// HandleIndex handles GET / requests.
func (h *indexHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	var page indexPage
	if v, err := h.src.Views(r.Context()); err != nil {
		page.Err = err.Error()
	} else {
		page.Unmatched = v.UnmatchedCountries
	}
	for _, name := range types.ViewNames {
		e := indexEntry{Name: name}
		if h.exists(name + ".png") {
			e.PNG = "/charts/" + name + ".png"
		}
		if h.exists(name + ".html") {
			e.HTML = "/charts/" + name + ".html"
		}
		page.Entries = append(page.Entries, e)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, page); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
