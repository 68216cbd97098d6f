package ai

import (
	"context"
	"encoding/json"
	"fmt"
)

const generatePrompt = `You are a social media content strategist for a business in the "%s" industry.

Write exactly %d posts for %s in a %s tone.%s%s

Respond with a JSON array only, no other text. Each element:
{"content": "<post text>", "hashtags": ["<tag>", ...], "cta": "<call to action or empty string>", "imagePrompt": "<image generation prompt>", "bestTimeToPost": "<e.g. Tuesday 10:00>", "estimatedEngagement": "high" | "medium" | "low"}`

// GenerationSpec describes one batch of requested posts.
type GenerationSpec struct {
	Industry        string
	Platform        string
	Tone            string
	PostCount       int
	IncludeHashtags bool
	IncludeCTA      bool
}

type PostDraft struct {
	Content             string   `json:"content"`
	Hashtags            []string `json:"hashtags"`
	CTA                 string   `json:"cta"`
	ImagePrompt         string   `json:"imagePrompt"`
	BestTimeToPost      string   `json:"bestTimeToPost"`
	EstimatedEngagement string   `json:"estimatedEngagement"`
}

type Generator struct {
	llm Completer
}

func NewGenerator(llm Completer) *Generator {
	return &Generator{llm: llm}
}

// GeneratePosts makes a single completion call requesting spec.PostCount
// posts and validates the returned array element by element.
func (g *Generator) GeneratePosts(ctx context.Context, spec GenerationSpec) ([]PostDraft, error) {
	hashtagNote := " Do not include hashtags."
	if spec.IncludeHashtags {
		hashtagNote = " Include 3-5 relevant hashtags per post."
	}
	ctaNote := ""
	if spec.IncludeCTA {
		ctaNote = " Each post ends with a clear call to action."
	}

	prompt := fmt.Sprintf(generatePrompt, spec.Industry, spec.PostCount,
		spec.Platform, spec.Tone, hashtagNote, ctaNote)

	raw, err := g.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var drafts []PostDraft
	if err := json.Unmarshal([]byte(stripFences(raw)), &drafts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("%w: empty post array", ErrInvalidOutput)
	}

	for i, d := range drafts {
		if d.Content == "" {
			return nil, fmt.Errorf("%w: post %d has no content", ErrInvalidOutput, i)
		}
		switch d.EstimatedEngagement {
		case "high", "medium", "low":
		default:
			return nil, fmt.Errorf("%w: post %d has engagement %q", ErrInvalidOutput, i, d.EstimatedEngagement)
		}
	}

	return drafts, nil
}
