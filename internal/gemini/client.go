// Package gemini wraps the Google GenAI client behind the two capabilities
// the tool needs: prompt-in/text-out generation and model discovery.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spigell/cv-summary/internal/logger"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-1.5-flash"

const generateAction = "generateContent"

// Generator wraps the Google GenAI client to provide simple prompt-based interactions.
type Generator struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// ModelInfo describes a model available to the configured API key.
type ModelInfo struct {
	Name             string
	Actions          []string
	InputTokenLimit  int32
	OutputTokenLimit int32
}

// SupportsGenerate reports whether the model advertises generateContent support.
func (m ModelInfo) SupportsGenerate() bool {
	return slices.Contains(m.Actions, generateAction)
}

// NewGenerator creates a new Generator configured for the Gemini API backend.
func NewGenerator(ctx context.Context, apiKey, model string, log *zap.Logger) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = DefaultModel
	}

	return &Generator{
		client: client,
		model:  model,
		logger: logger.WithModel(log, "gemini", model),
	}, nil
}

// GenerateContent sends the prompt to Gemini and returns the concatenated
// textual response. An empty response is an error.
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", errors.New("gemini generator is not initialized")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	g.logger.Debug("gemini generate content request", zap.Int("prompt_length", len(prompt)))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	output := collectText(resp)
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	g.logger.Debug("gemini generate content response", zap.Int("response_length", len(output)))

	return output, nil
}

// ListModels returns the models available to the configured API key along
// with their supported actions and token limits.
func (g *Generator) ListModels(ctx context.Context) ([]ModelInfo, error) {
	if g == nil || g.client == nil {
		return nil, errors.New("gemini generator is not initialized")
	}

	var models []ModelInfo
	for model, err := range g.client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list models: %w", err)
		}
		if model == nil {
			continue
		}

		models = append(models, ModelInfo{
			Name:             model.Name,
			Actions:          model.SupportedActions,
			InputTokenLimit:  model.InputTokenLimit,
			OutputTokenLimit: model.OutputTokenLimit,
		})
	}

	slices.SortFunc(models, func(a, b ModelInfo) int {
		return strings.Compare(a.Name, b.Name)
	})

	return models, nil
}

func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.model
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	return strings.TrimSpace(builder.String())
}
