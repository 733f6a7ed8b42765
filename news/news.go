package news

import (
	"context"
	"fmt"
	"log"
	"strings"

	"newspulse/internal/markup"
	"newspulse/internal/telemetry"
	"newspulse/news/newsapi"
)

// MaxArticles caps how many results a single reply shows.
const MaxArticles = 5

// Fallbacks for fields the provider left absent or empty.
const (
	fallbackTitle       = "No title"
	fallbackDescription = "No description available."
	fallbackSource      = "Unknown Source"
)

// FetchFailedMessage is shown when the provider cannot be reached at all.
const FetchFailedMessage = "⚠️ Sorry, I couldn't fetch the news right now. Please try again later."

// categoryQueries maps the fixed category keys to their search phrases.
// Any topic outside this table is used verbatim as a free-text query.
var categoryQueries = map[string]string{
	"stocks": "stock market",
	"ai":     "artificial intelligence",
	"crypto": "cryptocurrency",
	"tech":   "technology",
}

// Searcher is the slice of the provider client the retriever needs.
type Searcher interface {
	FetchEverything(ctx context.Context, query string) ([]newsapi.Article, error)
}

// Retriever turns a topic token into a ready-to-display text block.
type Retriever struct {
	Client  Searcher
	Metrics *telemetry.Metrics
	Logger  *log.Logger
}

// NewRetriever creates a news retriever.
func NewRetriever(client Searcher, metrics *telemetry.Metrics, logger *log.Logger) *Retriever {
	if logger == nil {
		logger = log.New(log.Writer(), "[NEWS] ", log.LstdFlags)
	}
	return &Retriever{Client: client, Metrics: metrics, Logger: logger}
}

// ResolveQuery maps a category key to its search phrase; any other input,
// including the empty string, passes through unchanged.
func ResolveQuery(topic string) string {
	if q, ok := categoryQueries[topic]; ok {
		return q
	}
	return topic
}

// FetchArticles runs one provider search and returns at most MaxArticles
// results in provider order. Every failure mode degrades to an empty
// slice; no error leaves this method.
func (r *Retriever) FetchArticles(ctx context.Context, query string) []newsapi.Article {
	articles, err := r.Client.FetchEverything(ctx, query)
	if err != nil {
		r.Logger.Printf("fetching news for %q: %v", query, err)
		r.Metrics.ProviderErrors.Inc()
		return nil
	}
	if len(articles) > MaxArticles {
		articles = articles[:MaxArticles]
	}
	return articles
}

// RenderArticles formats articles as a Telegram legacy-Markdown block:
// a bold linked title, the description in monospace, a source line, then
// a blank separator. An empty input renders the no-results message with
// the query escaped, since it lands in the same Markdown message.
func RenderArticles(articles []newsapi.Article, query string) string {
	if len(articles) == 0 {
		return fmt.Sprintf("⚠️ No recent articles found for '%s'.",
			markup.Escape(query, markup.MarkdownV1Specials))
	}

	if len(articles) > MaxArticles {
		articles = articles[:MaxArticles]
	}

	var b strings.Builder
	for _, a := range articles {
		title := a.Title
		if title == "" {
			title = fallbackTitle
		}
		description := a.Description
		if description == "" {
			description = fallbackDescription
		}
		source := a.Source.Name
		if source == "" {
			source = fallbackSource
		}

		title = markup.Escape(title, markup.MarkdownV1Specials)
		description = markup.Escape(description, markup.MarkdownV1Specials)
		source = markup.Escape(source, markup.MarkdownV1Specials)

		fmt.Fprintf(&b, "• *[%s](%s)*\n", title, a.URL)
		fmt.Fprintf(&b, "  `%s`\n", description)
		fmt.Fprintf(&b, "  *Source:* %s\n\n", source)
	}
	return b.String()
}

// ResolveAndFetch is the single entry point the front-end adapter calls.
// It never returns an error: provider failure yields the fixed apology,
// a reachable provider with zero results yields the no-results message.
func (r *Retriever) ResolveAndFetch(ctx context.Context, topic string) string {
	query := ResolveQuery(topic)

	articles, err := r.Client.FetchEverything(ctx, query)
	if err != nil {
		r.Logger.Printf("fetching news for %q: %v", query, err)
		r.Metrics.ProviderErrors.Inc()
		return FetchFailedMessage
	}
	if len(articles) > MaxArticles {
		articles = articles[:MaxArticles]
	}
	if len(articles) == 0 {
		r.Metrics.EmptyResults.Inc()
	}
	return RenderArticles(articles, query)
}
