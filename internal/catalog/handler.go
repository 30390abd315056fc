package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"
)

// minTermLength is the shortest autocomplete term accepted.
const minTermLength = 2

// SearchHandler serves the municipality autocomplete endpoint.
type SearchHandler struct {
	catalog *Catalog
}

// NewSearchHandler constructs a handler.
func NewSearchHandler(catalog *Catalog) (*SearchHandler, error) {
	if catalog == nil {
		return nil, errors.New("catalog: nil catalog")
	}
	return &SearchHandler{catalog: catalog}, nil
}

// ServeHTTP handles GET /municipios?q=<term>.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if utf8.RuneCountInString(term) < minTermLength {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"erro": "informe ao menos 2 caracteres"})
		return
	}

	results := h.catalog.Search(term)
	if results == nil {
		results = []Municipality{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(results)
}
