// Package providers implements the agent gateway backends.
package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/thermavillage/revcal/internal/calendar"
)

// AgentGateway calls a hosted agent endpoint over HTTP. The returned
// envelope's payload is passed through untouched; only the transport result
// and the success flag are interpreted here.
type AgentGateway struct {
	endpoint string
	agentID  string
	client   *http.Client
}

// NewAgentGateway creates a gateway for the given endpoint and agent.
func NewAgentGateway(endpoint, agentID string) *AgentGateway {
	return &AgentGateway{
		endpoint: endpoint,
		agentID:  agentID,
		client: &http.Client{
			Timeout: 120 * time.Second, // agent calls can be slow
		},
	}
}

// agentRequest is the gateway's wire request.
type agentRequest struct {
	Message string `json:"message"`
	AgentID string `json:"agent_id"`
}

// Invoke sends the prompt and returns the raw response envelope.
func (g *AgentGateway) Invoke(ctx context.Context, prompt string) (calendar.Envelope, error) {
	jsonBody, err := json.Marshal(agentRequest{Message: prompt, AgentID: g.agentID})
	if err != nil {
		return calendar.Envelope{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return calendar.Envelope{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Printf("[agent] Calling agent %s...", g.agentID)
	resp, err := g.client.Do(req)
	if err != nil {
		return calendar.Envelope{}, fmt.Errorf("failed to call agent gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return calendar.Envelope{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return calendar.Envelope{}, fmt.Errorf("agent gateway returned status %d: %.200s", resp.StatusCode, string(body))
	}

	var env calendar.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return calendar.Envelope{}, fmt.Errorf("failed to parse gateway envelope: %w", err)
	}
	env.Raw = body

	return env, nil
}
