package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoDrafts = `[
	{"content": "Fresh beans landed today", "hashtags": ["#coffee"], "cta": "Stop by!", "imagePrompt": "bags of coffee beans", "bestTimeToPost": "Tuesday 10:00", "estimatedEngagement": "high"},
	{"content": "Meet our roaster", "hashtags": [], "cta": "", "imagePrompt": "portrait", "bestTimeToPost": "Friday 17:00", "estimatedEngagement": "medium"}
]`

func TestGeneratePosts_ParsesArray(t *testing.T) {
	g := NewGenerator(&stubCompleter{reply: twoDrafts})

	drafts, err := g.GeneratePosts(context.Background(), GenerationSpec{
		Industry:  "specialty coffee",
		Platform:  "twitter",
		Tone:      "friendly",
		PostCount: 2,
	})
	require.NoError(t, err)

	require.Len(t, drafts, 2)
	assert.Equal(t, "Fresh beans landed today", drafts[0].Content)
	assert.Equal(t, []string{"#coffee"}, drafts[0].Hashtags)
	assert.Equal(t, "medium", drafts[1].EstimatedEngagement)
}

func TestGeneratePosts_StripsCodeFences(t *testing.T) {
	g := NewGenerator(&stubCompleter{reply: "```json\n" + twoDrafts + "\n```"})

	drafts, err := g.GeneratePosts(context.Background(), GenerationSpec{
		Industry: "coffee", Platform: "twitter", Tone: "friendly", PostCount: 2,
	})
	require.NoError(t, err)
	assert.Len(t, drafts, 2)
}

func TestGeneratePosts_RejectsBadOutput(t *testing.T) {
	cases := []string{
		"Here are your posts!",
		"[]",
		`[{"content": "", "estimatedEngagement": "high"}]`,
		`[{"content": "ok", "estimatedEngagement": "viral"}]`,
	}

	for _, reply := range cases {
		g := NewGenerator(&stubCompleter{reply: reply})
		_, err := g.GeneratePosts(context.Background(), GenerationSpec{
			Industry: "coffee", Platform: "twitter", Tone: "friendly", PostCount: 1,
		})
		assert.True(t, errors.Is(err, ErrInvalidOutput), "reply %q should be rejected", reply)
	}
}
