package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/phrazzld/syllabus-api/internal/generation"
)

// genaiCaller is the production contentCaller backed by the genai client.
type genaiCaller struct {
	client *genai.Client
	model  string
}

// generate sends the prompt and returns the concatenated response text.
// API-level failures are returned as-is so the retry loop treats them as
// transient; structural problems map to permanent sentinel errors.
func (c *genaiCaller) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API call: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	text := ""
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text += part.Text
		}
	}

	if text == "" {
		return "", fmt.Errorf("%w: response contained no text", generation.ErrInvalidResponse)
	}

	return text, nil
}
