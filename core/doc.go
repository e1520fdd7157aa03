// Package core contains the business logic of the Biblical Man content
// service. It is framework-agnostic; the HTTP layer and the CLI both drive it.
//
// - domain: Article, Insight, FetchOutcome, ReaderState, SourceView
// - feed: relay fetcher, RSS/Atom parser and the pipeline joining them
// - store: the authoritative article list, seeded with a fallback set
// - insight: AI micro-lesson generation over Anthropic or Gemini
// - workers: bounded pool that runs insight jobs off the request path
// - reader: reader view state machine, session registry and source extraction
// - errors: error taxonomy mapped to HTTP statuses by the api package
// - interfaces: contracts for external dependencies (cache, HTTP, logger)
//
// All external dependencies are injected via interfaces, so every package can
// be tested with hand-written mocks.
//
// # Usage Example
//
//	relay := feed.NewRelayFetcher(httpClient, config.DefaultRelayURL)
//	pipeline := feed.NewPipeline(relay, feed.NewParser(3), config.DefaultFeedURL, logger)
//
//	articles := store.NewStore(store.DefaultFallback(), pipeline, logger)
//	articles.Start(ctx)
//	<-articles.Done()
//	for _, a := range articles.Articles() {
//	    fmt.Println(a.Title, a.PublishedDate)
//	}
package core
