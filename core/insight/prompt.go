// ABOUTME: Prompt and response handling shared by all insight providers
// ABOUTME: Extracts the three-field JSON object from free-form model output

package insight

import (
	"encoding/json"
	"fmt"
	"strings"

	"biblicalman-api/core/domain"
	coreerrors "biblicalman-api/core/errors"
)

const insightPrompt = `You are helping men apply biblical teaching to daily life. Read the article below and produce a short micro-lesson.

Respond with ONLY a JSON object with exactly these three string fields:
{"corePrinciple": "<the single principle the article teaches, one sentence>",
 "actionItem": "<one concrete thing the reader can do this week>",
 "reflection": "<one question for personal reflection>"}

No Markdown, no commentary.

Article:
%s`

// BuildPrompt returns the provider prompt for the given (already truncated) HTML
func BuildPrompt(contentHTML string) string {
	return fmt.Sprintf(insightPrompt, contentHTML)
}

// ParseInsight extracts an insight from model output. Code fences and any
// text around the first JSON object are ignored; all three fields must be
// present and non-empty.
func ParseInsight(text string) (domain.Insight, error) {
	obj, ok := firstJSONObject(stripCodeFences(text))
	if !ok {
		return domain.Insight{}, &coreerrors.ParseError{Source: "insight", Message: "no JSON object in response"}
	}

	var insight domain.Insight
	if err := json.Unmarshal([]byte(obj), &insight); err != nil {
		return domain.Insight{}, &coreerrors.ParseError{Source: "insight", Message: err.Error()}
	}

	insight.CorePrinciple = strings.TrimSpace(insight.CorePrinciple)
	insight.ActionItem = strings.TrimSpace(insight.ActionItem)
	insight.Reflection = strings.TrimSpace(insight.Reflection)

	if !insight.IsComplete() {
		return domain.Insight{}, &coreerrors.ParseError{Source: "insight", Message: "missing one or more fields"}
	}
	return insight, nil
}

// stripCodeFences removes ``` and ```json fence lines
func stripCodeFences(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// firstJSONObject returns the first balanced {...} in text, honouring
// braces inside JSON strings.
func firstJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
