package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// RecipeGenerator drafts a recipe for a dish.
type RecipeGenerator interface {
	GenerateRecipe(ctx context.Context, dish string) (*GeneratedRecipe, error)
}

type AIService struct {
	client *openai.Client
}

type GeneratedRecipe struct {
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
	}
}

// GenerateRecipe asks OpenAI GPT for a recipe draft for dish
func (s *AIService) GenerateRecipe(ctx context.Context, dish string) (*GeneratedRecipe, error) {
	if s.client == nil {
		return nil, fmt.Errorf("OpenAI client not initialized")
	}

	prompt := fmt.Sprintf(`You are a recipe writing assistant. Write a home-cooking recipe for the dish below.

Dish:
%s

Return a single JSON object in this shape:
{
  "title": "short recipe title",
  "instructions": "step-by-step instructions as one paragraph, at least 50 characters",
  "minutes_to_complete": total minutes as an integer, or null if unknown
}

Return JSON only, with no surrounding explanation.`, dish)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
			Temperature: 0.3,
		},
	)

	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	return parseGeneratedRecipe(resp.Choices[0].Message.Content)
}

func parseGeneratedRecipe(content string) (*GeneratedRecipe, error) {
	var recipe GeneratedRecipe
	if err := json.Unmarshal([]byte(content), &recipe); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}
	return &recipe, nil
}
