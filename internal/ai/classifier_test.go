package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return s.reply, s.err
}

func TestClassify_ParsesPlainJSON(t *testing.T) {
	c := NewClassifier(&stubCompleter{
		reply: `{"score": 8.5, "label": "positive", "reasoning": "enthusiastic praise", "confidence": 0.92}`,
	})

	result, err := c.Classify(context.Background(), "best croissants in town")
	require.NoError(t, err)

	assert.Equal(t, 8.5, result.Score)
	assert.Equal(t, "positive", result.Label)
	assert.Equal(t, 0.92, result.Confidence)
}

func TestClassify_StripsCodeFences(t *testing.T) {
	c := NewClassifier(&stubCompleter{
		reply: "```json\n{\"score\": 2, \"label\": \"negative\", \"reasoning\": \"complaint about wait time\", \"confidence\": 0.8}\n```",
	})

	result, err := c.Classify(context.Background(), "waited an hour")
	require.NoError(t, err)
	assert.Equal(t, "negative", result.Label)
}

func TestClassify_RejectsMalformedOutput(t *testing.T) {
	cases := []string{
		"The sentiment is positive.",
		`{"score": 42, "label": "positive", "reasoning": "x", "confidence": 0.5}`,
		`{"score": 5, "label": "mixed", "reasoning": "x", "confidence": 0.5}`,
		`{"score": 5, "label": "neutral", "reasoning": "", "confidence": 0.5}`,
		`{"score": 5, "label": "neutral", "reasoning": "x", "confidence": 1.5}`,
	}

	for _, reply := range cases {
		c := NewClassifier(&stubCompleter{reply: reply})
		_, err := c.Classify(context.Background(), "text")
		assert.True(t, errors.Is(err, ErrInvalidOutput), "reply %q should be rejected", reply)
	}
}

func TestClassify_TransportErrorPassesThrough(t *testing.T) {
	c := NewClassifier(&stubCompleter{err: ErrUnavailable})

	_, err := c.Classify(context.Background(), "text")
	assert.True(t, errors.Is(err, ErrUnavailable))
}
