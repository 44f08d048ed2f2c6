package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/thermavillage/revcal/internal/calendar"
)

// AnthropicProvider calls Claude directly instead of a hosted agent. The
// model's text output is packed into the same envelope shape the agent
// gateway produces, so the normalizer sees a single input contract.
type AnthropicProvider struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicProvider creates a new Anthropic-backed provider.
func NewAnthropicProvider(apiKey, model string) *AnthropicProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)
	return &AnthropicProvider{
		client: &client,
		model:  model,
	}
}

// Invoke sends the prompt to Claude and wraps the reply in a gateway
// envelope.
func (c *AnthropicProvider) Invoke(ctx context.Context, prompt string) (calendar.Envelope, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: 8192,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return calendar.Envelope{}, fmt.Errorf("failed to call Claude API: %w", err)
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}
	if responseText == "" {
		return calendar.Envelope{}, fmt.Errorf("Claude returned empty response")
	}

	payload, err := json.Marshal(map[string]any{"result": extractJSON(responseText)})
	if err != nil {
		return calendar.Envelope{}, fmt.Errorf("failed to build envelope: %w", err)
	}

	env := calendar.Envelope{Success: true, Response: payload}
	if raw, err := json.Marshal(env); err == nil {
		env.Raw = raw
	}
	return env, nil
}

var (
	fencedObjectRe = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\{.*?\\})\\s*\\n?```")
	rawObjectRe    = regexp.MustCompile(`(?s)(\{.*\})`)
)

// extractJSON pulls the JSON object out of Claude's reply, which may wrap it
// in markdown code fences or surrounding prose. The caller's normalizer
// handles anything this cannot recognize.
func extractJSON(text string) string {
	if matches := fencedObjectRe.FindStringSubmatch(text); len(matches) > 1 {
		return matches[1]
	}
	if matches := rawObjectRe.FindStringSubmatch(text); len(matches) > 1 {
		return matches[1]
	}
	return text
}
