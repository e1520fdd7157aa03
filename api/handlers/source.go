// ABOUTME: Source view handler for the Huma API
// ABOUTME: Extracts a clean "read more" page for an article in the current list

package handlers

import (
	"context"
	"net/http"

	"biblicalman-api/api/dto/mappers"
	"biblicalman-api/api/dto/responses"
	"biblicalman-api/core/interfaces"
	"biblicalman-api/pkg/featureflags"
	"github.com/danielgtaylor/huma/v2"
)

// SourceHandler handles source view requests
type SourceHandler struct {
	store     interfaces.ArticleStore
	extractor interfaces.SourceExtractor
	flags     featureflags.Manager
}

// NewSourceHandler creates a new source handler
func NewSourceHandler(store interfaces.ArticleStore, extractor interfaces.SourceExtractor, flags featureflags.Manager) *SourceHandler {
	if flags == nil {
		flags = featureflags.NewStaticManager(featureflags.Defaults)
	}
	return &SourceHandler{
		store:     store,
		extractor: extractor,
		flags:     flags,
	}
}

// RegisterRoutes registers all source-related routes
func (h *SourceHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getSourceView",
		Method:      http.MethodGet,
		Path:        "/source",
		Summary:     "Extract an article's source page",
		Description: "Fetches the article's source link and returns a readability view. Only ids from the current list are accepted.",
		Tags:        []string{"Reader"},
	}, h.GetSource)
}

// GetSourceInput defines the input for the GetSource operation
type GetSourceInput struct {
	ID string `query:"id" required:"true" minLength:"1" doc:"Article id (its source URL)"`
}

// GetSourceOutput defines the output for the GetSource operation
type GetSourceOutput struct {
	Body responses.SourceViewResponse
}

// GetSource extracts the source page. Extraction failures are reported in
// the body with status "error".
func (h *SourceHandler) GetSource(ctx context.Context, input *GetSourceInput) (*GetSourceOutput, error) {
	if h.extractor == nil || !h.flags.IsEnabled(ctx, featureflags.SourceViewEnabled) {
		return nil, huma.Error404NotFound("source view is disabled")
	}

	article, err := h.store.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	view := h.extractor.Extract(ctx, article.SourceLink)
	return &GetSourceOutput{Body: mappers.ToSourceViewResponse(view)}, nil
}
