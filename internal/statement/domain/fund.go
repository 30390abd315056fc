package statement

import "strings"

// Fund codes accepted by the DAF consulta endpoint.
const (
	FundCodeAll       = 0
	FundCodeFPM       = 4
	FundCodeRoyalties = 28
)

// Fund pairs a DAF fund code with the title printed on statements.
type Fund struct {
	Tipo  string
	Code  int
	Title string
}

// FundByTipo resolves a caller-supplied fund type string. The input is
// lowercased and trimmed before matching; anything other than "fpm" or
// "royalties" is ErrInvalidFundType.
func FundByTipo(tipo string) (Fund, error) {
	switch strings.ToLower(strings.TrimSpace(tipo)) {
	case "fpm":
		return Fund{Tipo: "fpm", Code: FundCodeFPM, Title: "FPM - FUNDO DE PARTICIPACAO DOS MUNICIPIOS"}, nil
	case "royalties":
		return Fund{Tipo: "royalties", Code: FundCodeRoyalties, Title: "ANP   - ROYALTIES DA ANP"}, nil
	}
	return Fund{}, ErrInvalidFundType
}
