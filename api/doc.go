// Package api provides the HTTP API layer for the Biblical Man content service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request logging and per-IP rate limiting
//
// # Endpoints
//
//	GET    /articles                    current list and whether it was refreshed
//	GET    /article?id=<url>            one article with its full HTML
//	POST   /insight                     {articleId} or {html}
//	POST   /reader/sessions             new reader session
//	GET    /reader/sessions/{id}        reader state, poll for the insight
//	POST   /reader/sessions/{id}/open   {articleId}
//	POST   /reader/sessions/{id}/close
//	DELETE /reader/sessions/{id}
//	GET    /source?id=<url>             readability view of the source page
//	GET    /health
//
// The OpenAPI spec is available at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    Flags:      flags,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//	handlers.NewArticleHandler(store).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format. Domain errors are mapped to status
// codes by handlers.toHumaError. AI failures are not errors: the insight
// endpoint answers 200 with status "unavailable".
package api
