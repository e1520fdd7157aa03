// ABOUTME: Article handler for the Huma API
// ABOUTME: Serves the content store's current list and single-article lookups

package handlers

import (
	"context"
	"net/http"

	"biblicalman-api/api/dto/mappers"
	"biblicalman-api/api/dto/responses"
	"biblicalman-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// ArticleHandler handles article list requests
type ArticleHandler struct {
	store interfaces.ArticleStore
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(store interfaces.ArticleStore) *ArticleHandler {
	return &ArticleHandler{store: store}
}

// RegisterRoutes registers all article-related routes
func (h *ArticleHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listArticles",
		Method:      http.MethodGet,
		Path:        "/articles",
		Summary:     "List current articles",
		Description: "Returns the fallback set until the feed refresh has replaced it",
		Tags:        []string{"Articles"},
	}, h.ListArticles)

	// Ids are URLs, so they travel as a query parameter
	huma.Register(api, huma.Operation{
		OperationID: "getArticle",
		Method:      http.MethodGet,
		Path:        "/article",
		Summary:     "Get one article",
		Tags:        []string{"Articles"},
	}, h.GetArticle)
}

// ListArticlesInput defines the input for the ListArticles operation
type ListArticlesInput struct {
	IncludeContent bool `query:"includeContent" doc:"Include fullContentHtml for each article"`
}

// ListArticlesOutput defines the output for the ListArticles operation
type ListArticlesOutput struct {
	Body responses.ArticleListResponse
}

// ListArticles returns the current list
func (h *ArticleHandler) ListArticles(ctx context.Context, input *ListArticlesInput) (*ListArticlesOutput, error) {
	resp := mappers.ToArticleListResponse(h.store.Articles(), h.store.Refreshed(), input.IncludeContent)
	return &ListArticlesOutput{Body: resp}, nil
}

// GetArticleInput defines the input for the GetArticle operation
type GetArticleInput struct {
	ID string `query:"id" required:"true" minLength:"1" doc:"Article id (its source URL)"`
}

// GetArticleOutput defines the output for the GetArticle operation
type GetArticleOutput struct {
	Body responses.ArticleResponse
}

// GetArticle returns one article including its full content
func (h *ArticleHandler) GetArticle(ctx context.Context, input *GetArticleInput) (*GetArticleOutput, error) {
	article, err := h.store.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &GetArticleOutput{Body: mappers.ToArticleResponse(article, true)}, nil
}
