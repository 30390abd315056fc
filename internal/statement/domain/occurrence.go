package statement

// Occurrence is one free-text transaction line in a DAF response.
type Occurrence struct {
	BenefitName string `json:"nomeBeneficio"`
}

// Response is the slice of the DAF consulta document this system relies
// on. Everything else in the upstream payload is ignored.
type Response struct {
	Occurrences []Occurrence `json:"quantidadeOcorrencia"`
}

// HasOccurrences reports whether the response carries any line items.
// An empty response means "no disbursements for this period".
func (r Response) HasOccurrences() bool {
	return len(r.Occurrences) > 0
}
