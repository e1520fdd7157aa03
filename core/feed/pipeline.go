// ABOUTME: Pipeline chains the relay fetcher and the parser into one refresh attempt
// ABOUTME: Folds every result into a FetchOutcome instead of surfacing errors

package feed

import (
	"context"

	"biblicalman-api/core/domain"
	"biblicalman-api/core/interfaces"
)

// Fetcher retrieves a raw feed document
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) (string, error)
}

// Pipeline runs fetch then parse for a single configured feed
type Pipeline struct {
	fetcher Fetcher
	parser  *Parser
	feedURL string
	logger  interfaces.Logger
}

// NewPipeline creates a pipeline for feedURL
func NewPipeline(fetcher Fetcher, parser *Parser, feedURL string, logger interfaces.Logger) *Pipeline {
	if parser == nil {
		parser = NewParser(DefaultMaxArticles)
	}
	return &Pipeline{
		fetcher: fetcher,
		parser:  parser,
		feedURL: feedURL,
		logger:  interfaces.LoggerOrNop(logger),
	}
}

// Run performs one fetch and parse. It never returns an error; failures are
// reported through the outcome and logged.
func (p *Pipeline) Run(ctx context.Context) domain.FetchOutcome {
	raw, err := p.fetcher.Fetch(ctx, p.feedURL)
	if err != nil {
		p.logger.Warn("Feed fetch failed", map[string]interface{}{
			"feed_url": p.feedURL,
			"error":    err.Error(),
		})
		return domain.Failed(err)
	}

	articles, err := p.parser.Parse(raw)
	if err != nil {
		p.logger.Warn("Feed parse failed", map[string]interface{}{
			"feed_url": p.feedURL,
			"error":    err.Error(),
		})
		return domain.Failed(err)
	}

	outcome := domain.Succeeded(articles)
	p.logger.Info("Feed refresh completed", map[string]interface{}{
		"feed_url": p.feedURL,
		"outcome":  outcome.Kind.String(),
		"articles": len(outcome.Articles),
	})
	return outcome
}

// Refresh satisfies the content store's refresher contract
func (p *Pipeline) Refresh(ctx context.Context) domain.FetchOutcome {
	return p.Run(ctx)
}
