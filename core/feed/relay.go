// ABOUTME: Feed fetcher that retrieves a remote feed through a CORS relay
// ABOUTME: Adds a cache-busting timestamp and unwraps the relay's JSON envelope

package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	coreerrors "biblicalman-api/core/errors"
	"biblicalman-api/core/interfaces"
)

const relayAPIName = "relay"

// ErrNoContents is returned when the relay answered without a usable body
var ErrNoContents = errors.New("relay response has no contents")

// relayEnvelope is the JSON shape the relay wraps the fetched document in
type relayEnvelope struct {
	Contents *string `json:"contents"`
}

// RelayFetcher fetches raw feed documents through a relay endpoint
type RelayFetcher struct {
	client   interfaces.HTTPClient
	relayURL string
	now      func() time.Time
}

// NewRelayFetcher creates a fetcher that sends every request through relayURL
func NewRelayFetcher(client interfaces.HTTPClient, relayURL string) *RelayFetcher {
	return &RelayFetcher{
		client:   client,
		relayURL: relayURL,
		now:      time.Now,
	}
}

// WithClock replaces the clock used for the cache-busting parameter
func (f *RelayFetcher) WithClock(now func() time.Time) *RelayFetcher {
	f.now = now
	return f
}

// RequestURL builds the relay URL for feedURL, including the cache buster
func (f *RelayFetcher) RequestURL(feedURL string) (string, error) {
	relay, err := url.Parse(f.relayURL)
	if err != nil || relay.Scheme == "" || relay.Host == "" {
		return "", &coreerrors.ValidationError{Field: "relay_url", Message: "invalid URL format"}
	}

	sep := "?"
	if strings.Contains(feedURL, "?") {
		sep = "&"
	}
	target := feedURL + sep + "t=" + strconv.FormatInt(f.now().UnixMilli(), 10)

	q := relay.Query()
	q.Set("url", target)
	relay.RawQuery = q.Encode()
	return relay.String(), nil
}

// Fetch returns the raw feed document. Every failure mode (transport error,
// non-2xx status, undecodable envelope, missing contents) is returned as an
// error for the caller to absorb.
func (f *RelayFetcher) Fetch(ctx context.Context, feedURL string) (string, error) {
	if feedURL == "" {
		return "", &coreerrors.ValidationError{Field: "feed_url", Message: "feed URL cannot be empty"}
	}
	if f.client == nil {
		return "", errors.New("HTTP client not configured")
	}

	reqURL, err := f.RequestURL(feedURL)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Get(ctx, reqURL)
	if err != nil {
		return "", coreerrors.WrapError(err, "relay request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return "", &coreerrors.ExternalAPIError{
			API:        relayAPIName,
			StatusCode: resp.StatusCode(),
			Message:    "non-2xx response",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", coreerrors.WrapError(err, "failed to read relay response")
	}

	var envelope relayEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", &coreerrors.ParseError{Source: relayAPIName, Message: fmt.Sprintf("invalid JSON envelope: %v", err)}
	}
	if envelope.Contents == nil || strings.TrimSpace(*envelope.Contents) == "" {
		return "", ErrNoContents
	}

	return *envelope.Contents, nil
}
