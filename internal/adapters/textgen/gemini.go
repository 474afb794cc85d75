package textgen

import (
	"context"
	"errors"
	"fmt"
	"storyrun-service/internal/platform/obs"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-2.5-flash"

// GeminiGenerator implements TextGenerator using Google Gemini.
// A client is created per call, so a bad key surfaces as a call error.
type GeminiGenerator struct {
	apiKey string
	model  string
}

func NewGeminiGenerator(apiKey, model string) (*GeminiGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is empty")
	}
	if model == "" {
		model = DefaultModel
	}

	return &GeminiGenerator{apiKey: apiKey, model: model}, nil
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (_ string, err error) {
	defer obs.Time(ctx, "gemini.GenerateContent")(&err)

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content model=%s: %w", g.model, err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", fmt.Errorf("generate content model=%s: %w", g.model, err)
	}

	return text, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("no candidates returned")
	}

	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", errors.New("no content generated")
	}

	var b strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	return b.String(), nil
}
