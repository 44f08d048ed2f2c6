// Package planner turns the persisted plan configuration into agent prompts
// and normalized calendar results.
package planner

import (
	"context"
	"fmt"

	"github.com/thermavillage/revcal/internal/calendar"
	"github.com/thermavillage/revcal/internal/config"
	"github.com/thermavillage/revcal/internal/planner/providers"
)

// Provider is the agent gateway: it sends one prompt and returns the raw,
// shape-untrusted response envelope.
type Provider interface {
	Invoke(ctx context.Context, prompt string) (calendar.Envelope, error)
}

// Exchange captures one prompt/response pair for the generation history.
type Exchange struct {
	Prompt   string
	Response string
}

// Planner drives calendar generation through a configured provider.
type Planner struct {
	provider Provider
}

// New creates a planner with the provider selected by configuration.
func New(cfg config.AgentConfig) (*Planner, error) {
	var provider Provider

	switch cfg.Provider {
	case config.ProviderAgent:
		provider = providers.NewAgentGateway(cfg.Endpoint, cfg.AgentID)
	case config.ProviderAnthropic:
		provider = providers.NewAnthropicProvider(cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown agent provider: %s", cfg.Provider)
	}

	return NewWithProvider(provider), nil
}

// NewWithProvider wraps an explicit provider.
func NewWithProvider(p Provider) *Planner {
	return &Planner{provider: p}
}

// GenerateMonth requests and normalizes a full calendar document.
func (p *Planner) GenerateMonth(ctx context.Context, plan config.PlanConfig, promos []config.Promotion) (calendar.Document, Exchange, error) {
	prompt := BuildMonthPrompt(plan, promos)
	ex := Exchange{Prompt: prompt}

	env, err := p.provider.Invoke(ctx, prompt)
	if err != nil {
		return calendar.Document{}, ex, fmt.Errorf("%w: %v", calendar.ErrAgentCallFailed, err)
	}
	ex.Response = string(env.Raw)

	doc, err := calendar.NormalizeDocument(env)
	if err != nil {
		return calendar.Document{}, ex, err
	}
	return doc, ex, nil
}

// RegenerateWeek requests and normalizes a single replacement week.
func (p *Planner) RegenerateWeek(ctx context.Context, plan config.PlanConfig, promos []config.Promotion, weekNumber int, dateRange string) (calendar.Week, Exchange, error) {
	prompt := BuildWeekPrompt(plan, promos, weekNumber, dateRange)
	ex := Exchange{Prompt: prompt}

	env, err := p.provider.Invoke(ctx, prompt)
	if err != nil {
		return calendar.Week{}, ex, fmt.Errorf("%w: %v", calendar.ErrAgentCallFailed, err)
	}
	ex.Response = string(env.Raw)

	week, err := calendar.NormalizeWeek(env, weekNumber)
	if err != nil {
		return calendar.Week{}, ex, err
	}
	return week, ex, nil
}
