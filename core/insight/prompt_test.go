package insight

import (
	"testing"

	"biblicalman-api/core/domain"
	coreerrors "biblicalman-api/core/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInsight(t *testing.T) {
	expected := domain.Insight{
		CorePrinciple: "Lead by serving.",
		ActionItem:    "Ask your wife what she needs this week.",
		Reflection:    "Where am I demanding instead of giving?",
	}

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "bare object",
			input: `{"corePrinciple":"Lead by serving.","actionItem":"Ask your wife what she needs this week.","reflection":"Where am I demanding instead of giving?"}`,
		},
		{
			name: "fenced",
			input: "```json\n" +
				`{"corePrinciple":"Lead by serving.","actionItem":"Ask your wife what she needs this week.","reflection":"Where am I demanding instead of giving?"}` +
				"\n```",
		},
		{
			name:  "surrounding prose",
			input: `Here you go: {"corePrinciple":" Lead by serving. ","actionItem":"Ask your wife what she needs this week.","reflection":"Where am I demanding instead of giving?"} Hope it helps {x}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInsight(tt.input)
			require.NoError(t, err)
			assert.Equal(t, expected, got)
		})
	}
}

func TestParseInsight_BracesInsideStrings(t *testing.T) {
	got, err := ParseInsight(`{"corePrinciple":"Use {braces} freely","actionItem":"Quote \"}\" safely","reflection":"Done?"}`)
	require.NoError(t, err)
	assert.Equal(t, "Use {braces} freely", got.CorePrinciple)
	assert.Equal(t, `Quote "}" safely`, got.ActionItem)
}

func TestParseInsight_Failures(t *testing.T) {
	inputs := map[string]string{
		"empty":         "",
		"no object":     "I cannot help with that.",
		"unbalanced":    `{"corePrinciple":"x"`,
		"missing field": `{"corePrinciple":"x","actionItem":"y"}`,
		"blank field":   `{"corePrinciple":"x","actionItem":"y","reflection":"   "}`,
		"wrong type":    `{"corePrinciple":1,"actionItem":"y","reflection":"z"}`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			got, err := ParseInsight(input)
			assert.True(t, coreerrors.IsParse(err), "expected parse error, got %v", err)
			assert.Equal(t, domain.Insight{}, got)
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("<p>Body</p>")
	assert.Contains(t, prompt, "<p>Body</p>")
	assert.Contains(t, prompt, "corePrinciple")
	assert.Contains(t, prompt, "actionItem")
	assert.Contains(t, prompt, "reflection")
}
