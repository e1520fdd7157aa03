package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found",
			err:  &NotFoundError{Resource: "article", ID: "https://example.com/p/one"},
			want: "article not found: https://example.com/p/one",
		},
		{
			name: "validation",
			err:  &ValidationError{Field: "articleId", Message: "required"},
			want: "validation error on field 'articleId': required",
		},
		{
			name: "external api",
			err:  &ExternalAPIError{StatusCode: 503, Message: "service unavailable", API: "relay"},
			want: "external API error from relay: 503 - service unavailable",
		},
		{
			name: "parse",
			err:  &ParseError{Source: "feed", Message: "no items"},
			want: "parse error in feed: no items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.want {
				t.Errorf("Error() = %v, want %v", tt.err.Error(), tt.want)
			}
		})
	}
}

func TestClassifiers(t *testing.T) {
	plain := errors.New("some other error")

	if !IsNotFound(&NotFoundError{Resource: "session", ID: "abc"}) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
	if IsNotFound(plain) {
		t.Error("IsNotFound should return false for plain errors")
	}
	if !IsValidation(&ValidationError{Field: "id"}) {
		t.Error("IsValidation should return true for ValidationError")
	}
	if IsValidation(plain) {
		t.Error("IsValidation should return false for plain errors")
	}
	if !IsExternalAPI(&ExternalAPIError{API: "anthropic"}) {
		t.Error("IsExternalAPI should return true for ExternalAPIError")
	}
	if IsExternalAPI(plain) {
		t.Error("IsExternalAPI should return false for plain errors")
	}
	if !IsParse(&ParseError{Source: "insight"}) {
		t.Error("IsParse should return true for ParseError")
	}
	if IsParse(plain) {
		t.Error("IsParse should return false for plain errors")
	}
}

func TestClassifiers_SeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("looking up article: %w", &NotFoundError{Resource: "article", ID: "x"})
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should return true for wrapped NotFoundError")
	}

	wrapped = fmt.Errorf("decoding relay body: %w", &ParseError{Source: "relay", Message: "bad json"})
	if !IsParse(wrapped) {
		t.Error("IsParse should return true for wrapped ParseError")
	}
}

func TestWrapError(t *testing.T) {
	original := &NotFoundError{Resource: "article", ID: "abc"}
	wrapped := WrapError(original, "opening reader")

	if wrapped == nil {
		t.Fatal("WrapError should not return nil for non-nil error")
	}
	if wrapped.Error() != "opening reader: article not found: abc" {
		t.Errorf("WrapError message = %v", wrapped.Error())
	}
	if !IsNotFound(wrapped) {
		t.Error("wrapped error should still be identifiable as NotFoundError")
	}
	if WrapError(nil, "unused") != nil {
		t.Error("WrapError should return nil when wrapping nil error")
	}
}
