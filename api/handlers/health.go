// ABOUTME: Health handler for the Huma API
// ABOUTME: Reports liveness together with content store and session counts

package handlers

import (
	"context"
	"net/http"

	"biblicalman-api/api/dto/responses"
	"biblicalman-api/core/interfaces"
	"biblicalman-api/pkg/featureflags"
	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler handles health checks
type HealthHandler struct {
	store    interfaces.ArticleStore
	sessions SessionRegistry
	flags    featureflags.Manager
}

// NewHealthHandler creates a new health handler. sessions may be nil.
func NewHealthHandler(store interfaces.ArticleStore, sessions SessionRegistry, flags featureflags.Manager) *HealthHandler {
	if flags == nil {
		flags = featureflags.NewStaticManager(featureflags.Defaults)
	}
	return &HealthHandler{
		store:    store,
		sessions: sessions,
		flags:    flags,
	}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health reports service state
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	resp := responses.HealthResponse{
		Status:          "ok",
		Refreshed:       h.store.Refreshed(),
		StoreVersion:    h.store.Version(),
		Articles:        len(h.store.Articles()),
		InsightsEnabled: h.flags.IsEnabled(ctx, featureflags.InsightsEnabled),
	}
	if h.sessions != nil {
		resp.ReaderSessions = h.sessions.Count()
	}
	return &HealthOutput{Body: resp}, nil
}
