package domain

// Result is one search engine hit.
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// QueryResult holds the outcome of one keyword query. A failed query
// carries its error text here instead of failing the whole report.
type QueryResult struct {
	Keyword string   `json:"keyword"`
	Query   string   `json:"query"`
	Items   []Result `json:"items"`
	Error   string   `json:"error,omitempty"`
}

// Report is the artifact written after a full keyword sweep. It has no
// data dependency on the aggregation pipeline.
type Report struct {
	UpdatedAt string        `json:"updated_at"`
	Queries   []QueryResult `json:"queries"`
}
