// Package export produces the outward-facing representations of a calendar
// document: canonical plain text for copying, and a standalone HTML page.
package export

import (
	"fmt"
	"strings"

	"github.com/thermavillage/revcal/internal/calendar"
)

// PostText renders one post as canonical plain text. The caption's markup
// characters are left untranslated; this is export text, not display output.
func PostText(p calendar.Post) string {
	lines := []string{
		fmt.Sprintf("%s - %s", p.Day, p.Date),
		fmt.Sprintf("Pillar: %s", p.Pillar),
		fmt.Sprintf("Objective: %s", p.ObjectiveTag),
		fmt.Sprintf("Format: %s | Time: %s", p.Format, p.SuggestedTime),
		"",
		"Caption:",
		p.Caption,
		"",
		fmt.Sprintf("CTA: %s", p.CTAType),
		fmt.Sprintf("Visual Concept: %s", p.VisualConcept),
	}
	if len(p.Hashtags) > 0 {
		lines = append(lines, fmt.Sprintf("Hashtags: %s", strings.Join(p.Hashtags, " ")))
	}
	lines = append(lines,
		fmt.Sprintf("Ad Use: %s", p.SuggestedAdUse),
		fmt.Sprintf("Remarketing Tag: %s", p.RemarketingTag),
	)
	if p.CulturalWarning != "" {
		lines = append(lines, fmt.Sprintf("Cultural Warning: %s", p.CulturalWarning))
	}
	return strings.Join(lines, "\n")
}

// WeekText renders a week as a banner-framed header followed by its posts.
func WeekText(w calendar.Week) string {
	header := fmt.Sprintf("Week %d (%s)", w.WeekNumber, w.DateRange)
	banner := strings.Repeat("=", len(header))

	posts := make([]string, len(w.Posts))
	for i, p := range w.Posts {
		posts[i] = PostText(p)
	}

	return fmt.Sprintf("%s\n%s\n%s\n\n%s", banner, header, banner, strings.Join(posts, "\n\n---\n\n"))
}

// DocumentText renders the summary dashboard and every week.
func DocumentText(doc calendar.Document) string {
	s := doc.Summary
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %d - Monthly Summary\n", s.Month, s.Year))
	sb.WriteString(fmt.Sprintf("Total Posts: %d\n", s.TotalPosts))
	sb.WriteString(fmt.Sprintf("Promotional Posts: %d\n", s.PromotionalPosts))
	sb.WriteString(fmt.Sprintf("Conversion Posts: %d\n", s.ConversionPosts))
	sb.WriteString(fmt.Sprintf("Awareness:Conversion: %s\n", s.AwarenessConversionRatio))
	fd := s.FormatDistribution
	sb.WriteString(fmt.Sprintf("Formats: Image %d / Carousel %d / Reel %d / Story %d\n", fd.Image, fd.Carousel, fd.Reel, fd.Story))
	sb.WriteString(fmt.Sprintf("Offer Support: %g%%\n", s.OfferSupportPercentage))

	for _, w := range doc.Weeks {
		sb.WriteString("\n")
		sb.WriteString(WeekText(w))
		sb.WriteString("\n")
	}
	return sb.String()
}
