package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thermavillage/revcal/internal/config"
)

func testPlan() config.PlanConfig {
	return config.PlanConfig{
		Month:            "March",
		Year:             2026,
		TargetMarket:     "Both",
		PrimaryGoal:      "Bookings",
		HeroOffer:        "Spring Escape - 3 nights",
		PostingFrequency: 5,
	}
}

func TestBuildMonthPrompt(t *testing.T) {
	got := BuildMonthPrompt(testPlan(), nil)

	assert.Contains(t, got, "Month: March 2026")
	assert.Contains(t, got, "Target Market: Both")
	assert.Contains(t, got, "Primary Goal: Bookings")
	assert.Contains(t, got, "Hero Offer (Revenue Priority): Spring Escape - 3 nights")
	assert.Contains(t, got, "Posting Frequency: 5 posts per week")
	assert.Contains(t, got, "No special promotions.")
	assert.Contains(t, got, `Return in JSON format with "summary" and "weeks" fields.`)
}

func TestBuildMonthPrompt_DefaultHeroOffer(t *testing.T) {
	plan := testPlan()
	plan.HeroOffer = ""
	got := BuildMonthPrompt(plan, nil)
	assert.Contains(t, got, "Hero Offer (Revenue Priority): General wellness packages")
}

func TestBuildMonthPrompt_Promotions(t *testing.T) {
	promos := []config.Promotion{
		{Name: "Easter Weekend", Date: "2026-04-12", Notes: "family focus"},
		{Name: "Flash Friday", ValidityStart: "2026-03-13", ValidityEnd: "2026-03-15"},
	}
	got := BuildMonthPrompt(testPlan(), promos)

	assert.Contains(t, got, "Special Promotions:")
	assert.Contains(t, got, "1. Easter Weekend - Date: 2026-04-12 - Notes: family focus")
	assert.Contains(t, got, "2. Flash Friday - Valid: 2026-03-13 to 2026-03-15")
	assert.NotContains(t, got, "No special promotions.")
}

func TestBuildWeekPrompt(t *testing.T) {
	promos := []config.Promotion{{Name: "Easter Weekend"}, {Name: "Flash Friday"}}
	got := BuildWeekPrompt(testPlan(), promos, 2, "March 8 - March 14")

	assert.Contains(t, got, "Regenerate ONLY Week 2 (March 8 - March 14) of the March 2026 content calendar")
	assert.Contains(t, got, "Keep the same configuration:")
	assert.Contains(t, got, "Hero Offer: Spring Escape - 3 nights")
	// Week prompts carry promotion names only, not the full block.
	assert.Contains(t, got, "Special Promotions: Easter Weekend, Flash Friday")
	assert.Contains(t, got, "Return ONLY the regenerated week")
}
