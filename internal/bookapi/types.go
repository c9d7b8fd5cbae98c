package bookapi

// Book is a single search hit returned by the book service.
type Book struct {
	BookName  string   `json:"book_name" yaml:"book_name"`
	Category  string   `json:"category" yaml:"category"`
	Summary   string   `json:"summary" yaml:"summary"`
	Relevance *float64 `json:"relevance,omitempty" yaml:"relevance,omitempty"`
}

// Score returns the relevance, treating a missing value as zero.
func (b Book) Score() float64 {
	if b.Relevance == nil {
		return 0
	}
	return *b.Relevance
}

// SearchRequest is the body of a /book_search call.
type SearchRequest struct {
	Query    string `json:"query"`
	Category string `json:"category,omitempty"`
}

// AskRequest is the body of a /book_bot call.
type AskRequest struct {
	BookName string `json:"book_name"`
	Summary  string `json:"summary"`
	Question string `json:"question"`
}

// EnrichRequest is the body of an /enriched_book_info call.
// The service treats Summary as the book description.
type EnrichRequest struct {
	BookName string `json:"book_name"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
}

// NewEnrichRequest builds the enrichment request for a search hit.
func NewEnrichRequest(b Book) EnrichRequest {
	return EnrichRequest{BookName: b.BookName, Summary: b.Summary, Category: b.Category}
}

// NewAskRequest builds a chat request about b.
func NewAskRequest(b Book, question string) AskRequest {
	return AskRequest{BookName: b.BookName, Summary: b.Summary, Question: question}
}

type askResponse struct {
	Answer string `json:"answer"`
}

type enrichResponse struct {
	Response string `json:"response"`
}
