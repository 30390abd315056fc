package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// searchLimit caps autocomplete results.
const searchLimit = 50

// Municipality is one beneficiary record from the static catalog.
type Municipality struct {
	Codigo    int    `json:"codigo"`
	Municipio string `json:"municipio"`
	UF        string `json:"uf"`
	Coef      string `json:"coef,omitempty"`
}

// Catalog is the read-only municipality list, built once at startup.
type Catalog struct {
	records []Municipality
}

// New builds a catalog over the given records.
func New(records []Municipality) *Catalog {
	return &Catalog{records: records}
}

// catalogEntry mirrors the field names of the DAF beneficiary dump the
// catalog file is extracted from.
type catalogEntry struct {
	Codigo    int    `json:"codigoBeneficiarioSaida"`
	Municipio string `json:"nomeBeneficiarioSaida"`
	UF        string `json:"siglaUnidadeFederacaoSaida"`
}

// LoadFile reads the municipality catalog from a JSON file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var entries []catalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	records := make([]Municipality, 0, len(entries))
	for _, entry := range entries {
		records = append(records, Municipality{
			Codigo:    entry.Codigo,
			Municipio: entry.Municipio,
			UF:        entry.UF,
		})
	}
	return New(records), nil
}

// Len reports the number of catalog records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Search matches the uppercased, trimmed term against municipality
// names: records whose name starts with the term come first, then
// records that merely contain it, each group in catalog order, at most
// 50 in total. Term length validation belongs to the caller.
func (c *Catalog) Search(term string) []Municipality {
	term = strings.ToUpper(strings.TrimSpace(term))

	var startsWith []Municipality
	var contains []Municipality
	for _, record := range c.records {
		name := strings.ToUpper(record.Municipio)
		switch {
		case strings.HasPrefix(name, term):
			startsWith = append(startsWith, record)
		case strings.Contains(name, term):
			contains = append(contains, record)
		}
	}

	results := append(startsWith, contains...)
	if len(results) > searchLimit {
		results = results[:searchLimit]
	}
	return results
}
