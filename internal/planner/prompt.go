package planner

import (
	"fmt"
	"strings"

	"github.com/thermavillage/revcal/internal/config"
)

// BuildMonthPrompt constructs the agent instruction for a full-month
// generation from the persisted form configuration.
func BuildMonthPrompt(plan config.PlanConfig, promos []config.Promotion) string {
	var sb strings.Builder

	sb.WriteString("Generate a complete monthly Facebook content calendar for Therma Village Spa & Sport with the following configuration:\n\n")
	sb.WriteString(fmt.Sprintf("Month: %s %d\n", plan.Month, plan.Year))
	sb.WriteString(fmt.Sprintf("Target Market: %s\n", plan.TargetMarket))
	sb.WriteString(fmt.Sprintf("Primary Goal: %s\n", plan.PrimaryGoal))
	sb.WriteString(fmt.Sprintf("Hero Offer (Revenue Priority): %s\n", heroOffer(plan)))
	sb.WriteString(fmt.Sprintf("Posting Frequency: %d posts per week\n", plan.PostingFrequency))
	sb.WriteString(promotionBlock(promos))
	sb.WriteString("\n\nPlease generate the complete calendar with summary dashboard and all weekly post cards following all business rules. ")
	sb.WriteString(`Return in JSON format with "summary" and "weeks" fields.`)

	return sb.String()
}

// BuildWeekPrompt constructs the agent instruction for regenerating a single
// week while keeping the rest of the calendar untouched.
func BuildWeekPrompt(plan config.PlanConfig, promos []config.Promotion, weekNumber int, dateRange string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Regenerate ONLY Week %d (%s) of the %s %d content calendar for Therma Village Spa & Sport.\n\n",
		weekNumber, dateRange, plan.Month, plan.Year))
	sb.WriteString("Keep the same configuration:\n")
	sb.WriteString(fmt.Sprintf("Month: %s %d\n", plan.Month, plan.Year))
	sb.WriteString(fmt.Sprintf("Target Market: %s\n", plan.TargetMarket))
	sb.WriteString(fmt.Sprintf("Primary Goal: %s\n", plan.PrimaryGoal))
	sb.WriteString(fmt.Sprintf("Hero Offer: %s\n", heroOffer(plan)))
	sb.WriteString(fmt.Sprintf("Posting Frequency: %d posts per week\n", plan.PostingFrequency))
	if len(promos) > 0 {
		names := make([]string, len(promos))
		for i, p := range promos {
			names[i] = p.Name
		}
		sb.WriteString(fmt.Sprintf("Special Promotions: %s\n", strings.Join(names, ", ")))
	}
	sb.WriteString("\nReturn ONLY the regenerated week in the same JSON format with weekNumber, dateRange, and posts array. ")
	sb.WriteString("Keep it consistent with the rest of the calendar.")

	return sb.String()
}

func heroOffer(plan config.PlanConfig) string {
	if plan.HeroOffer == "" {
		return "General wellness packages"
	}
	return plan.HeroOffer
}

func promotionBlock(promos []config.Promotion) string {
	if len(promos) == 0 {
		return "\nNo special promotions."
	}

	var sb strings.Builder
	sb.WriteString("\nSpecial Promotions:")
	for i, p := range promos {
		sb.WriteString(fmt.Sprintf("\n%d. %s", i+1, p.Name))
		if p.Date != "" {
			sb.WriteString(fmt.Sprintf(" - Date: %s", p.Date))
		}
		if p.ValidityStart != "" {
			sb.WriteString(fmt.Sprintf(" - Valid: %s to %s", p.ValidityStart, p.ValidityEnd))
		}
		if p.Notes != "" {
			sb.WriteString(fmt.Sprintf(" - Notes: %s", p.Notes))
		}
	}
	return sb.String()
}
