package models

// ContentResponse is the body of GET /server/process_form.
type ContentResponse struct {
	Content string `json:"content"`
}

// RelevanceResponse is the body of GET /server/get_relevance_ranked.
type RelevanceResponse struct {
	RelevanceRanked string `json:"relevance_ranked"`
}

// ErrorResponse is returned by the backend for any non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}
