package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentGateway_Invoke(t *testing.T) {
	var gotBody agentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"response":{"result":"{\"weeks\":[]}"}}`))
	}))
	defer srv.Close()

	g := NewAgentGateway(srv.URL, "agent-123")
	env, err := g.Invoke(context.Background(), "make a calendar")
	require.NoError(t, err)

	assert.Equal(t, "make a calendar", gotBody.Message)
	assert.Equal(t, "agent-123", gotBody.AgentID)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"result":"{\"weeks\":[]}"}`, string(env.Response))
	assert.NotEmpty(t, env.Raw)
}

func TestAgentGateway_FailureEnvelopePassedThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"success":false,"error":"agent overloaded"}`))
	}))
	defer srv.Close()

	env, err := NewAgentGateway(srv.URL, "agent-123").Invoke(context.Background(), "hi")
	require.NoError(t, err)
	assert.False(t, env.Success)
	assert.Equal(t, "agent overloaded", env.Error)
}

func TestAgentGateway_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewAgentGateway(srv.URL, "agent-123").Invoke(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestExtractJSON(t *testing.T) {
	fenced := "Here you go:\n```json\n{\"weeks\":[]}\n```\nEnjoy!"
	assert.Equal(t, `{"weeks":[]}`, extractJSON(fenced))

	bare := `prefix {"summary":{}} suffix`
	assert.Equal(t, `{"summary":{}}`, extractJSON(bare))

	assert.Equal(t, "no json here", extractJSON("no json here"))
}
