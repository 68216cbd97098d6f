package ai

import (
	"context"
	"encoding/json"
	"fmt"
)

const classifyPrompt = `You are a brand sentiment analyst. Rate the emotional polarity of the following social media mention about a business.

Mention:
"""
%s
"""

Respond with a single JSON object, no other text:
{"score": <number 0-10, 0 = very negative, 5 = neutral, 10 = very positive>, "label": "positive" | "negative" | "neutral", "reasoning": "<one sentence>", "confidence": <number 0-1>}`

type SentimentResult struct {
	Score      float64 `json:"score"`
	Label      string  `json:"label"`
	Reasoning  string  `json:"reasoning"`
	Confidence float64 `json:"confidence"`
}

type Classifier struct {
	llm Completer
}

func NewClassifier(llm Completer) *Classifier {
	return &Classifier{llm: llm}
}

// Classify makes one completion call for one text. No retries; the batch
// orchestrator decides what to do with a failed item.
func (c *Classifier) Classify(ctx context.Context, text string) (*SentimentResult, error) {
	raw, err := c.llm.Complete(ctx, fmt.Sprintf(classifyPrompt, text))
	if err != nil {
		return nil, err
	}

	var result SentimentResult
	if err := json.Unmarshal([]byte(stripFences(raw)), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if result.Score < 0 || result.Score > 10 {
		return nil, fmt.Errorf("%w: score %v out of range", ErrInvalidOutput, result.Score)
	}
	switch result.Label {
	case "positive", "negative", "neutral":
	default:
		return nil, fmt.Errorf("%w: unknown label %q", ErrInvalidOutput, result.Label)
	}
	if result.Reasoning == "" {
		return nil, fmt.Errorf("%w: missing reasoning", ErrInvalidOutput)
	}
	if result.Confidence < 0 || result.Confidence > 1 {
		return nil, fmt.Errorf("%w: confidence %v out of range", ErrInvalidOutput, result.Confidence)
	}

	return &result, nil
}
