// ABOUTME: Reader view state machine for a single reader session
// ABOUTME: closed -> open(article) -> closed, with an async insight that is discarded after close

package reader

import (
	"context"
	"sync"

	"biblicalman-api/core/domain"
	"biblicalman-api/core/interfaces"
	"biblicalman-api/core/workers"
	"biblicalman-api/pkg/featureflags"

	"github.com/microcosm-cc/bluemonday"
)

// Submitter queues insight jobs
type Submitter interface {
	Submit(job *workers.InsightJob) error
}

// Observer receives every state change of a view
type Observer func(state domain.ReaderState)

// View is one reader panel. It is safe for concurrent use.
type View struct {
	mu         sync.Mutex
	state      domain.ReaderState
	generation uint64
	observers  map[int]Observer
	nextID     int

	submitter Submitter
	flags     featureflags.Manager
	policy    *bluemonday.Policy
	logger    interfaces.Logger
}

// NewView creates a closed view. submitter may be nil, in which case every
// opened article shows the unavailable message.
func NewView(submitter Submitter, flags featureflags.Manager, logger interfaces.Logger) *View {
	if flags == nil {
		flags = featureflags.NewStaticManager(featureflags.Defaults)
	}
	return &View{
		state:     closedState(),
		observers: make(map[int]Observer),
		submitter: submitter,
		flags:     flags,
		policy:    bluemonday.UGCPolicy(),
		logger:    interfaces.LoggerOrNop(logger),
	}
}

func closedState() domain.ReaderState {
	return domain.ReaderState{InsightStatus: domain.InsightIdle}
}

// State returns a snapshot of the current state
func (v *View) State() domain.ReaderState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return snapshot(v.state)
}

// IsOpen reports whether an article is showing
func (v *View) IsOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.Open
}

// Subscribe registers fn for state changes and returns a function that removes it
func (v *View) Subscribe(fn Observer) func() {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++
	v.observers[id] = fn

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.observers, id)
	}
}

// Open shows article, locks background scroll and requests its insight.
// Opening while another article is showing replaces it; the earlier
// article's pending insight is discarded.
func (v *View) Open(article domain.Article) domain.ReaderState {
	ctx := context.Background()

	v.mu.Lock()
	v.generation++
	gen := v.generation

	opened := article
	v.state = domain.ReaderState{
		Open:          true,
		Article:       &opened,
		ContentHTML:   v.render(ctx, article.FullContentHTML),
		ScrollLocked:  true,
		InsightStatus: domain.InsightLoading,
	}

	if v.submitter == nil || !v.flags.IsEnabled(ctx, featureflags.InsightsEnabled) {
		v.markUnavailable()
	}
	loading := v.state.InsightStatus == domain.InsightLoading
	state := snapshot(v.state)
	observers := v.observerList()
	v.mu.Unlock()

	notify(observers, state)

	if !loading {
		return state
	}

	err := v.submitter.Submit(&workers.InsightJob{
		Article: article,
		Context: ctx,
		Done: func(insight domain.Insight, err error) {
			v.complete(gen, insight, err)
		},
	})
	if err != nil {
		v.logger.Warn("Insight request not queued", map[string]interface{}{
			"article_id": article.ID,
			"error":      err.Error(),
		})
		v.complete(gen, domain.Insight{}, err)
	}

	return v.State()
}

// Close dismisses the panel and restores background scroll. A pending
// insight still completes but its result is dropped.
func (v *View) Close() domain.ReaderState {
	v.mu.Lock()
	if !v.state.Open {
		state := snapshot(v.state)
		v.mu.Unlock()
		return state
	}

	v.generation++
	v.state = closedState()
	state := snapshot(v.state)
	observers := v.observerList()
	v.mu.Unlock()

	notify(observers, state)
	return state
}

// complete applies an insight result if it belongs to the current generation
func (v *View) complete(gen uint64, insight domain.Insight, err error) {
	v.mu.Lock()
	if gen != v.generation || !v.state.Open {
		v.mu.Unlock()
		v.logger.Debug("Discarding stale insight", map[string]interface{}{"generation": gen})
		return
	}

	if err != nil || !insight.IsComplete() {
		v.markUnavailable()
	} else {
		got := insight
		v.state.Insight = &got
		v.state.InsightStatus = domain.InsightReady
		v.state.Message = ""
	}

	state := snapshot(v.state)
	observers := v.observerList()
	v.mu.Unlock()

	notify(observers, state)
}

// markUnavailable must be called with v.mu held
func (v *View) markUnavailable() {
	v.state.InsightStatus = domain.InsightUnavailable
	v.state.Insight = nil
	v.state.Message = domain.InsightUnavailableMessage
}

// render returns the HTML handed to the renderer
func (v *View) render(ctx context.Context, contentHTML string) string {
	if !v.flags.IsEnabled(ctx, featureflags.SanitizeHTML) {
		return contentHTML
	}
	return v.policy.Sanitize(contentHTML)
}

// observerList must be called with v.mu held
func (v *View) observerList() []Observer {
	out := make([]Observer, 0, len(v.observers))
	for _, o := range v.observers {
		out = append(out, o)
	}
	return out
}

func notify(observers []Observer, state domain.ReaderState) {
	for _, o := range observers {
		o(state)
	}
}

// snapshot deep-copies the pointer fields so callers cannot mutate the view
func snapshot(s domain.ReaderState) domain.ReaderState {
	if s.Article != nil {
		a := *s.Article
		s.Article = &a
	}
	if s.Insight != nil {
		i := *s.Insight
		s.Insight = &i
	}
	return s
}
