package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Lists holds the hand-curated municipality lists the statement batches
// iterate, one per fund type. Royalties entries carry no coefficient.
type Lists struct {
	FPM       []Municipality `yaml:"fpm"`
	Royalties []Municipality `yaml:"royalties"`
}

// ForTipo returns the list for a fund type string. Unknown types get an
// empty list, not an error.
func (l Lists) ForTipo(tipo string) []Municipality {
	switch tipo {
	case "fpm":
		return l.FPM
	case "royalties":
		return l.Royalties
	}
	return nil
}

// DefaultLists returns the compiled-in statement lists.
func DefaultLists() Lists {
	return Lists{
		FPM: []Municipality{
			{Codigo: 481, Municipio: "ANORI", UF: "AM", Coef: "1,2"},
			{Codigo: 971, Municipio: "BARREIRINHA", UF: "AM", Coef: "2,0"},
			{Codigo: 1166, Municipio: "BOA VISTA DO RAMOS", UF: "AM", Coef: "1,4"},
			{Codigo: 3756, Municipio: "ITACOATIARA", UF: "AM", Coef: "4,0"},
			{Codigo: 4636, Municipio: "MANACAPURU", UF: "AM", Coef: "4,0"},
			{Codigo: 4660, Municipio: "MANICORE", UF: "AM", Coef: "2,2"},
			{Codigo: 5225, Municipio: "NHAMUNDA", UF: "AM", Coef: "1,6"},
			{Codigo: 5715, Municipio: "PARINTINS", UF: "AM", Coef: "4,0"},
			{Codigo: 6691, Municipio: "RIO PRETO DA EVA", UF: "AM", Coef: "2,2"},
			{Codigo: 7638, Municipio: "SAO PAULO DE OLIVENCA", UF: "AM", Coef: "2,2"},
			{Codigo: 8319, Municipio: "TONANTINS", UF: "AM", Coef: "1,6"},
			{Codigo: 3385, Municipio: "HUMAITA", UF: "AM", Coef: "3,0"},
			{Codigo: 362, Municipio: "ALVARAES", UF: "AM", Coef: "1,4"},
			{Codigo: 7338, Municipio: "SAO GABRIEL DA CACHOEIRA", UF: "AM", Coef: "2,8"},
			{Codigo: 972, Municipio: "BARREIRINHAS", UF: "MA", Coef: "2,4"},
			{Codigo: 11085, Municipio: "ITAIPAVA DO GRAJAU", UF: "MA", Coef: "1,0"},
			{Codigo: 8519, Municipio: "URBANO SANTOS", UF: "MA", Coef: "1,6"},
			{Codigo: 8418, Municipio: "TUNTUM", UF: "MA", Coef: "1,8"},
			{Codigo: 3495, Municipio: "ICATU", UF: "MA", Coef: "1,4"},
		},
		Royalties: []Municipality{
			{Codigo: 362, Municipio: "ALVARAES", UF: "AM"},
			{Codigo: 950, Municipio: "BARRA DE SAO MIGUEL", UF: "AL"},
			{Codigo: 1175, Municipio: "BOCA DA MATA", UF: "AL"},
			{Codigo: 1639, Municipio: "CAMPO ALEGRE", UF: "AL"},
			{Codigo: 4636, Municipio: "MANACAPURU", UF: "AM"},
			{Codigo: 4660, Municipio: "MANICORE", UF: "AM"},
			{Codigo: 5225, Municipio: "NHAMUNDA", UF: "AM"},
			{Codigo: 5389, Municipio: "NOVO AIRAO", UF: "AM"},
			{Codigo: 6957, Municipio: "SANTA ISABEL DO RIO NEGRO", UF: "AM"},
			{Codigo: 7338, Municipio: "SAO GABRIEL DA CACHOEIRA", UF: "AM"},
			{Codigo: 7638, Municipio: "SAO PAULO DE OLIVENCA", UF: "AM"},
		},
	}
}

// LoadLists returns the compiled-in lists, replaced per fund type by a
// yaml file when path is non-empty. A list absent from the file keeps
// its default.
func LoadLists(path string) (Lists, error) {
	lists := DefaultLists()
	if path == "" {
		return lists, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return lists, fmt.Errorf("catalog: read lists %s: %w", path, err)
	}
	var override Lists
	if err := yaml.Unmarshal(data, &override); err != nil {
		return lists, fmt.Errorf("catalog: parse lists %s: %w", path, err)
	}
	if len(override.FPM) > 0 {
		lists.FPM = override.FPM
	}
	if len(override.Royalties) > 0 {
		lists.Royalties = override.Royalties
	}
	return lists, nil
}
