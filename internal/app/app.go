// Package app wires the planner, document store, and generation history into
// one orchestration layer shared by the CLI commands and serve mode.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/thermavillage/revcal/internal/calendar"
	"github.com/thermavillage/revcal/internal/config"
	"github.com/thermavillage/revcal/internal/planner"
	"github.com/thermavillage/revcal/internal/store"
)

// ErrScopeBusy is returned when a generation for the same scope is already
// in flight.
var ErrScopeBusy = errors.New("generation already in progress for this scope")

// ScopeFull identifies a whole-calendar generation in busy tracking and in
// the history store. Week generations use WeekScope.
const ScopeFull = "full"

// WeekScope returns the history scope key for a single week.
func WeekScope(weekNumber int) string {
	return fmt.Sprintf("week:%d", weekNumber)
}

// App coordinates generation requests against the in-memory document and the
// persistent history.
type App struct {
	mu      sync.Mutex
	cfg     *config.Config
	planner *planner.Planner
	docs    *calendar.Store
	history *store.Store
	busy    map[string]bool
}

// New creates the application layer. The history store may be nil, in which
// case generations are not persisted.
func New(cfg *config.Config, p *planner.Planner, history *store.Store) *App {
	return &App{
		cfg:     cfg,
		planner: p,
		docs:    calendar.NewStore(),
		history: history,
		busy:    make(map[string]bool),
	}
}

// Config returns the current configuration.
func (a *App) Config() *config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// ReloadConfig re-reads configuration from disk and rebuilds the planner.
func (a *App) ReloadConfig() error {
	cfg := config.Load()
	p, err := planner.New(cfg.Agent)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.cfg = cfg
	a.planner = p
	return nil
}

// Document returns a copy of the current calendar, if one exists.
func (a *App) Document() (calendar.Document, bool) {
	return a.docs.Current()
}

// LoadSample replaces the current calendar with the built-in sample document.
func (a *App) LoadSample() {
	a.docs.ReplaceFull(calendar.SampleDocument())
}

// Generate requests a full calendar for the configured plan. The current
// document is cleared before the call, so a failed generation leaves no
// calendar loaded.
func (a *App) Generate(ctx context.Context) (calendar.Document, error) {
	if err := a.acquire(ScopeFull); err != nil {
		return calendar.Document{}, err
	}
	defer a.release(ScopeFull)

	plan, promos := a.planInputs()
	a.docs.Clear()

	doc, ex, err := a.planner.GenerateMonth(ctx, plan, promos)
	a.record(ScopeFull, plan, ex, err)
	if err != nil {
		return calendar.Document{}, err
	}

	a.docs.ReplaceFull(doc)
	return doc, nil
}

// RegenerateWeek requests a replacement for one week and merges it into the
// current calendar. A failed generation leaves the calendar untouched.
func (a *App) RegenerateWeek(ctx context.Context, weekNumber int) (calendar.Document, error) {
	scope := WeekScope(weekNumber)
	if err := a.acquire(scope); err != nil {
		return calendar.Document{}, err
	}
	defer a.release(scope)

	dateRange, err := a.weekDateRange(weekNumber)
	if err != nil {
		return calendar.Document{}, err
	}

	plan, promos := a.planInputs()
	week, ex, err := a.planner.RegenerateWeek(ctx, plan, promos, weekNumber, dateRange)
	a.record(scope, plan, ex, err)
	if err != nil {
		return calendar.Document{}, err
	}

	if err := a.docs.MergeWeek(weekNumber, week); err != nil {
		return calendar.Document{}, err
	}

	doc, _ := a.docs.Current()
	return doc, nil
}

// RestoreFromHistory rebuilds the in-memory calendar from the history store:
// the newest successful full generation, with any newer successful week
// regenerations merged on top in the order they happened. Returns true when
// a calendar was restored.
func (a *App) RestoreFromHistory() (bool, error) {
	if a.history == nil {
		return false, nil
	}

	recent, err := a.history.Recent(restoreWindow)
	if err != nil {
		return false, fmt.Errorf("failed to read generation history: %w", err)
	}

	// Recent is newest first; find the newest successful full generation.
	fullIdx := -1
	for i, g := range recent {
		if g.Scope == ScopeFull && g.Success {
			fullIdx = i
			break
		}
	}
	if fullIdx < 0 {
		return false, nil
	}

	doc, err := calendar.NormalizeDocument(historyEnvelope(recent[fullIdx]))
	if err != nil {
		return false, fmt.Errorf("stored calendar no longer parses: %w", err)
	}
	a.docs.ReplaceFull(doc)

	// Replay week regenerations newer than the full generation, oldest first.
	for i := fullIdx - 1; i >= 0; i-- {
		g := recent[i]
		var weekNumber int
		if !g.Success || g.Scope == ScopeFull {
			continue
		}
		if _, err := fmt.Sscanf(g.Scope, "week:%d", &weekNumber); err != nil {
			continue
		}

		week, err := calendar.NormalizeWeek(historyEnvelope(g), weekNumber)
		if err != nil {
			continue
		}
		if err := a.docs.MergeWeek(weekNumber, week); err != nil {
			return false, err
		}
	}

	return true, nil
}

// restoreWindow bounds how far back RestoreFromHistory scans.
const restoreWindow = 100

func historyEnvelope(g store.Generation) calendar.Envelope {
	var env calendar.Envelope
	// Leaf errors are tolerated the same way live responses are.
	json.Unmarshal([]byte(g.Response), &env)
	env.Raw = json.RawMessage(g.Response)
	return env
}

func (a *App) planInputs() (config.PlanConfig, []config.Promotion) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg.Plan, a.cfg.Promotions
}

func (a *App) weekDateRange(weekNumber int) (string, error) {
	doc, ok := a.docs.Current()
	if !ok {
		return "", calendar.ErrNoBaseDocument
	}
	for _, w := range doc.Weeks {
		if w.WeekNumber == weekNumber {
			return w.DateRange, nil
		}
	}
	return "", fmt.Errorf("no week %d in the current calendar", weekNumber)
}

func (a *App) acquire(scope string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.busy[scope] {
		return ErrScopeBusy
	}
	a.busy[scope] = true
	return nil
}

func (a *App) release(scope string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.busy, scope)
}

// record persists the exchange to the history store and the file cache.
// Recording failures are logged, never surfaced to the caller. A nil history
// store disables persistence entirely.
func (a *App) record(scope string, plan config.PlanConfig, ex planner.Exchange, genErr error) {
	if a.history == nil {
		return
	}

	gen := store.Generation{
		Scope:    scope,
		Month:    plan.Month,
		Year:     plan.Year,
		Prompt:   ex.Prompt,
		Response: ex.Response,
		Success:  genErr == nil,
	}
	if genErr != nil {
		gen.Error = genErr.Error()
	}

	if err := a.history.SaveGeneration(&gen); err != nil {
		log.Printf("[app] Failed to save generation history: %v", err)
	}

	a.mu.Lock()
	agent := a.cfg.Agent
	a.mu.Unlock()

	exchange := store.Exchange{
		Timestamp: time.Now(),
		Provider:  agent.Provider,
		AgentID:   agent.AgentID,
		Model:     agent.Model,
		Prompt:    ex.Prompt,
		Response:  ex.Response,
		Error:     gen.Error,
	}
	if _, err := store.SaveExchange(exchange); err != nil {
		log.Printf("[app] Failed to cache exchange: %v", err)
	}
}
