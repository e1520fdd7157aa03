// ABOUTME: Fetch outcome models the result of one feed refresh attempt
// ABOUTME: Lets the content store choose "keep previous" explicitly for non-success

package domain

// OutcomeKind classifies a refresh attempt
type OutcomeKind int

const (
	// OutcomeSuccess means at least one article was produced
	OutcomeSuccess OutcomeKind = iota

	// OutcomeEmpty means the feed was reachable but yielded no articles
	OutcomeEmpty

	// OutcomeFailure means transport or decoding failed
	OutcomeFailure
)

// String returns the lowercase name of the kind
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeEmpty:
		return "empty"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// FetchOutcome is the result of running the fetch and parse pipeline once
type FetchOutcome struct {
	Kind     OutcomeKind
	Articles []Article
	Err      error
}

// Succeeded returns a success outcome, or an empty one when no articles were produced
func Succeeded(articles []Article) FetchOutcome {
	if len(articles) == 0 {
		return FetchOutcome{Kind: OutcomeEmpty}
	}
	return FetchOutcome{Kind: OutcomeSuccess, Articles: articles}
}

// Failed returns a failure outcome carrying the cause
func Failed(err error) FetchOutcome {
	return FetchOutcome{Kind: OutcomeFailure, Err: err}
}
