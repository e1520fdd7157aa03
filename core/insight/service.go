// ABOUTME: Insight service generates and caches the AI micro-lesson for an article
// ABOUTME: Truncates content before submission and validates the three-field result

package insight

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"biblicalman-api/core/domain"
	coreerrors "biblicalman-api/core/errors"
	"biblicalman-api/core/interfaces"
	"biblicalman-api/pkg/featureflags"
	"biblicalman-api/pkg/utils/text"
)

// MaxContentChars is how much of the article HTML is sent to the model
const MaxContentChars = 5000

// ErrDisabled is returned when insights are switched off
var ErrDisabled = errors.New("insights are disabled")

// Service implements interfaces.InsightGenerator
type Service struct {
	provider Provider
	cache    interfaces.Cache
	cacheTTL time.Duration
	logger   interfaces.Logger
	flags    featureflags.Manager
}

// NewService creates an insight service. provider may be nil, in which case
// every request fails and callers show the unavailable message.
func NewService(provider Provider, deps interfaces.Dependencies, cacheTTL time.Duration) *Service {
	return &Service{
		provider: provider,
		cache:    deps.Cache,
		cacheTTL: cacheTTL,
		logger:   interfaces.LoggerOrNop(deps.Logger),
		flags:    featureflags.NewStaticManager(featureflags.Defaults),
	}
}

// SetFlags replaces the feature flag manager
func (s *Service) SetFlags(m featureflags.Manager) {
	if m != nil {
		s.flags = m
	}
}

// Generate produces an insight for article, reusing a cached one when available
func (s *Service) Generate(ctx context.Context, article domain.Article) (domain.Insight, error) {
	return s.generate(ctx, "insight:"+hashKey(article.ID), article.FullContentHTML, article.ID)
}

// GenerateFromHTML produces an insight for arbitrary HTML content
func (s *Service) GenerateFromHTML(ctx context.Context, contentHTML string) (domain.Insight, error) {
	truncated := text.Head(contentHTML, MaxContentChars)
	return s.generate(ctx, "insight:html:"+hashKey(truncated), contentHTML, "")
}

func (s *Service) generate(ctx context.Context, cacheKey, contentHTML, articleID string) (domain.Insight, error) {
	if !s.flags.IsEnabled(ctx, featureflags.InsightsEnabled) {
		return domain.Insight{}, ErrDisabled
	}
	if s.provider == nil {
		return domain.Insight{}, &coreerrors.ValidationError{Field: "provider", Message: "AI not configured"}
	}
	if contentHTML == "" {
		return domain.Insight{}, &coreerrors.ValidationError{Field: "content", Message: "article has no content"}
	}

	useCache := s.cache != nil && s.flags.IsEnabled(ctx, featureflags.InsightCacheEnabled)
	if useCache {
		if cached, ok := s.getCached(ctx, cacheKey); ok {
			s.logger.Debug("Insight cache hit", map[string]interface{}{"article_id": articleID})
			return cached, nil
		}
	}

	raw, err := s.provider.Complete(ctx, BuildPrompt(text.Head(contentHTML, MaxContentChars)))
	if err != nil {
		return domain.Insight{}, err
	}

	insight, err := ParseInsight(raw)
	if err != nil {
		return domain.Insight{}, err
	}

	if useCache {
		s.setCached(ctx, cacheKey, insight)
	}

	s.logger.Info("Insight generated", map[string]interface{}{
		"article_id": articleID,
		"provider":   s.provider.Name(),
	})
	return insight, nil
}

func (s *Service) getCached(ctx context.Context, key string) (domain.Insight, bool) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, interfaces.ErrCacheMiss) {
			s.logger.Warn("Insight cache read failed", map[string]interface{}{"error": err.Error()})
		}
		return domain.Insight{}, false
	}

	var insight domain.Insight
	if err := json.Unmarshal(data, &insight); err != nil || !insight.IsComplete() {
		return domain.Insight{}, false
	}
	return insight, true
}

func (s *Service) setCached(ctx context.Context, key string, insight domain.Insight) {
	data, err := json.Marshal(insight)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.logger.Warn("Insight cache write failed", map[string]interface{}{"error": err.Error()})
	}
}

func hashKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
