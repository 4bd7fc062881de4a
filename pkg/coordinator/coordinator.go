// Package coordinator handles a wiki form submission: it asks the backend for
// the page content, renders it, and when requested appends the page's
// relevance-ranked internal links.
package coordinator

import (
	"context"
	"log/slog"

	"github.com/dtnitsch/wikilens/models"
)

// Messages shown in the output region when a request fails.
const (
	SubmitErrorMessage    = "An error occurred while submitting the form. Please try again later."
	RelevanceErrorMessage = "An error occurred while fetching relevance-ranked data."
)

// Backend is the pair of endpoints a submission talks to.
type Backend interface {
	ProcessForm(ctx context.Context, q models.Query) (models.ContentResponse, error)
	RelevanceRanked(ctx context.Context, q models.Query) (models.RelevanceResponse, error)
}

// Result records what a submission did. It never feeds back into the output.
type Result struct {
	Query            models.Query
	ContentErr       error
	RelevanceFetched bool
	RelevanceErr     error
}

// Err returns the first failure of the submission, if any.
func (r Result) Err() error {
	if r.ContentErr != nil {
		return r.ContentErr
	}
	return r.RelevanceErr
}

type Coordinator struct {
	backend Backend
	logger  *slog.Logger
}

func New(backend Backend, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{backend: backend, logger: logger}
}

// Submit runs one submission against out. The content request always runs
// first; the relevance request only starts after it succeeded and only when
// the affirmative option was chosen. Failures are logged and rendered as a
// fixed message, never retried.
func (c *Coordinator) Submit(ctx context.Context, input models.FormInput, out Output) Result {
	q := input.Query()
	result := Result{Query: q}

	content, err := c.backend.ProcessForm(ctx, q)
	if err != nil {
		c.logger.Error("there was a problem submitting the form", "wikilink", q.Wikilink, "error", err)
		out.Replace(SubmitErrorMessage)
		result.ContentErr = err
		return result
	}
	out.Replace(content.Content)

	if q.Check != 1 {
		return result
	}

	result.RelevanceFetched = true
	ranked, err := c.backend.RelevanceRanked(ctx, q)
	if err != nil {
		c.logger.Error("there was a problem fetching relevance-ranked data", "wikilink", q.Wikilink, "error", err)
		out.Append(RelevanceErrorMessage)
		result.RelevanceErr = err
		return result
	}
	out.Append(ranked.RelevanceRanked)
	return result
}
