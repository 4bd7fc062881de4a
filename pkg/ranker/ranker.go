// Package ranker asks a language model to order a page's internal wiki links
// by relevance to the page and renders the answer as HTML.
package ranker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dtnitsch/wikilens/models"
)

// MaxLinks bounds how many internal links are sent to the model.
const MaxLinks = 150

// ErrNoRanking is returned when the model answer contains no usable tuples.
var ErrNoRanking = errors.New("no relevance ranking in model output")

// Completer sends a single prompt to a language model and returns its text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Ranker struct {
	completer Completer
	logger    *slog.Logger
}

func NewRanker(c Completer, logger *slog.Logger) *Ranker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ranker{completer: c, logger: logger}
}

// Rank returns links ordered from most to least relevant to wikilink.
// An empty link list returns nil without calling the model.
func (r *Ranker) Rank(ctx context.Context, wikilink string, links []string) ([]models.RankedLink, error) {
	if len(links) == 0 {
		return nil, nil
	}
	if len(links) > MaxLinks {
		r.logger.Info("ranking capped", "wikilink", wikilink, "links", len(links), "ranked", MaxLinks)
		links = links[:MaxLinks]
	}

	answer, err := r.completer.Complete(ctx, BuildPrompt(wikilink, links))
	if err != nil {
		return nil, fmt.Errorf("model completion failed: %w", err)
	}

	ranked, err := ParseRanked(answer)
	if err != nil {
		r.logger.Warn("unparseable ranking", "wikilink", wikilink, "answer_len", len(answer))
		return nil, err
	}
	return ranked, nil
}

// BuildPrompt asks for a Python-style list of (href, score) tuples, the format
// ParseRanked understands.
func BuildPrompt(wikilink string, links []string) string {
	var b strings.Builder
	b.WriteString("Original: ")
	b.WriteString(wikilink)
	b.WriteString(". Can you rank the following list of internal wiki links in order from greatest to least relevance")
	b.WriteString(" (and assign points from 1 - 10, 10 being the most) to the Original wikilink.")
	b.WriteString(" Please output the result in a list called relevance_ranked. Ex: relevance_ranked = [\n")
	b.WriteString(" (\"/wiki/Normandy\", 10),\n (\"/wiki/Normandy_(administrative_region)\", 9),\n (\"/wiki/France\", 8),\n")
	b.WriteString(" (\"/wiki/Rouen\", 5),\n (\"/wiki/Geographic_coordinate_system\", 1)].")
	b.WriteString(" Internal Wikis: ")
	b.WriteString(strings.Join(links, ", "))
	return b.String()
}
