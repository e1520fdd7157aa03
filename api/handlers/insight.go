// ABOUTME: Insight handler for the Huma API
// ABOUTME: AI failures degrade to status "unavailable" instead of an HTTP error

package handlers

import (
	"context"
	"net/http"
	"strings"

	"biblicalman-api/api/dto/mappers"
	"biblicalman-api/api/dto/requests"
	"biblicalman-api/api/dto/responses"
	"biblicalman-api/core/domain"
	"biblicalman-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// InsightHandler handles insight requests
type InsightHandler struct {
	store   interfaces.ArticleStore
	service interfaces.InsightService
	logger  interfaces.Logger
}

// NewInsightHandler creates a new insight handler. service may be nil when no
// provider is configured.
func NewInsightHandler(store interfaces.ArticleStore, service interfaces.InsightService, logger interfaces.Logger) *InsightHandler {
	return &InsightHandler{
		store:   store,
		service: service,
		logger:  interfaces.LoggerOrNop(logger),
	}
}

// RegisterRoutes registers all insight-related routes
func (h *InsightHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "createInsight",
		Method:      http.MethodPost,
		Path:        "/insight",
		Summary:     "Generate an AI insight",
		Description: "Generates a core principle, action item and reflection for an article or raw HTML",
		Tags:        []string{"Insight"},
	}, h.CreateInsight)
}

// CreateInsightInput defines the input for the CreateInsight operation
type CreateInsightInput struct {
	Body requests.InsightRequest
}

// CreateInsightOutput defines the output for the CreateInsight operation
type CreateInsightOutput struct {
	Body responses.InsightResponse
}

// CreateInsight generates an insight
func (h *InsightHandler) CreateInsight(ctx context.Context, input *CreateInsightInput) (*CreateInsightOutput, error) {
	articleID := strings.TrimSpace(input.Body.ArticleID)
	contentHTML := strings.TrimSpace(input.Body.HTML)

	if articleID == "" && contentHTML == "" {
		return nil, huma.Error400BadRequest("articleId or html is required")
	}

	var article domain.Article
	if articleID != "" {
		var err error
		article, err = h.store.Get(articleID)
		if err != nil {
			return nil, toHumaError(err)
		}
	}

	if h.service == nil {
		return &CreateInsightOutput{Body: mappers.UnavailableInsightResponse()}, nil
	}

	var insight domain.Insight
	var err error
	if articleID != "" {
		insight, err = h.service.Generate(ctx, article)
	} else {
		insight, err = h.service.GenerateFromHTML(ctx, contentHTML)
	}

	if err != nil {
		h.logger.Warn("Insight unavailable", map[string]interface{}{
			"article_id": articleID,
			"error":      err.Error(),
		})
		return &CreateInsightOutput{Body: mappers.UnavailableInsightResponse()}, nil
	}

	return &CreateInsightOutput{Body: mappers.ToInsightResponse(insight)}, nil
}
