// ABOUTME: Reader session handler for the Huma API
// ABOUTME: Drives one reader view per session through open and close transitions

package handlers

import (
	"context"
	"net/http"

	"biblicalman-api/api/dto/mappers"
	"biblicalman-api/api/dto/requests"
	"biblicalman-api/api/dto/responses"
	"biblicalman-api/core/interfaces"
	"biblicalman-api/core/reader"
	"github.com/danielgtaylor/huma/v2"
)

// SessionRegistry stores reader views by session id
type SessionRegistry interface {
	Create() (string, *reader.View)
	Get(id string) (*reader.View, error)
	Delete(id string)
	Count() int
}

// ReaderHandler handles reader session requests
type ReaderHandler struct {
	store    interfaces.ArticleStore
	sessions SessionRegistry
}

// NewReaderHandler creates a new reader handler
func NewReaderHandler(store interfaces.ArticleStore, sessions SessionRegistry) *ReaderHandler {
	return &ReaderHandler{
		store:    store,
		sessions: sessions,
	}
}

// RegisterRoutes registers all reader-related routes
func (h *ReaderHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "createReaderSession",
		Method:        http.MethodPost,
		Path:          "/reader/sessions",
		Summary:       "Create a reader session",
		Description:   "Starts a session holding one closed reader view",
		Tags:          []string{"Reader"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateSession)

	huma.Register(api, huma.Operation{
		OperationID: "getReaderSession",
		Method:      http.MethodGet,
		Path:        "/reader/sessions/{id}",
		Summary:     "Get reader state",
		Description: "Poll this to observe the insight moving from loading to ready or unavailable",
		Tags:        []string{"Reader"},
	}, h.GetSession)

	huma.Register(api, huma.Operation{
		OperationID: "openReaderArticle",
		Method:      http.MethodPost,
		Path:        "/reader/sessions/{id}/open",
		Summary:     "Open an article in the reader",
		Tags:        []string{"Reader"},
	}, h.OpenArticle)

	huma.Register(api, huma.Operation{
		OperationID: "closeReader",
		Method:      http.MethodPost,
		Path:        "/reader/sessions/{id}/close",
		Summary:     "Close the reader",
		Tags:        []string{"Reader"},
	}, h.CloseReader)

	huma.Register(api, huma.Operation{
		OperationID:   "deleteReaderSession",
		Method:        http.MethodDelete,
		Path:          "/reader/sessions/{id}",
		Summary:       "End a reader session",
		Tags:          []string{"Reader"},
		DefaultStatus: http.StatusNoContent,
	}, h.DeleteSession)
}

// SessionPathInput identifies a session
type SessionPathInput struct {
	ID string `path:"id" doc:"Reader session id"`
}

// ReaderStateOutput defines the output for reader operations
type ReaderStateOutput struct {
	Body responses.ReaderStateResponse
}

// CreateSession starts a new session
func (h *ReaderHandler) CreateSession(ctx context.Context, input *struct{}) (*ReaderStateOutput, error) {
	id, view := h.sessions.Create()
	return &ReaderStateOutput{Body: mappers.ToReaderStateResponse(id, view.State())}, nil
}

// GetSession returns the current state of a session
func (h *ReaderHandler) GetSession(ctx context.Context, input *SessionPathInput) (*ReaderStateOutput, error) {
	view, err := h.sessions.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ReaderStateOutput{Body: mappers.ToReaderStateResponse(input.ID, view.State())}, nil
}

// OpenArticleInput defines the input for the OpenArticle operation
type OpenArticleInput struct {
	ID   string `path:"id" doc:"Reader session id"`
	Body requests.OpenReaderRequest
}

// OpenArticle shows an article and starts its insight request
func (h *ReaderHandler) OpenArticle(ctx context.Context, input *OpenArticleInput) (*ReaderStateOutput, error) {
	view, err := h.sessions.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	article, err := h.store.Get(input.Body.ArticleID)
	if err != nil {
		return nil, toHumaError(err)
	}

	state := view.Open(article)
	return &ReaderStateOutput{Body: mappers.ToReaderStateResponse(input.ID, state)}, nil
}

// CloseReader dismisses the open article
func (h *ReaderHandler) CloseReader(ctx context.Context, input *SessionPathInput) (*ReaderStateOutput, error) {
	view, err := h.sessions.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ReaderStateOutput{Body: mappers.ToReaderStateResponse(input.ID, view.Close())}, nil
}

// DeleteSession ends a session
func (h *ReaderHandler) DeleteSession(ctx context.Context, input *SessionPathInput) (*struct{}, error) {
	if _, err := h.sessions.Get(input.ID); err != nil {
		return nil, toHumaError(err)
	}
	h.sessions.Delete(input.ID)
	return &struct{}{}, nil
}
