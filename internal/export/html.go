package export

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/thermavillage/revcal/internal/calendar"
	"github.com/thermavillage/revcal/internal/render"
)

var pageTemplate = template.Must(template.New("calendar").Funcs(template.FuncMap{
	"caption":  captionHTML,
	"hashtags": func(tags []string) string { return strings.Join(tags, " ") },
}).Parse(defaultTemplate))

// WriteHTML renders the document to a standalone HTML page in outputDir and
// returns the file path.
func WriteHTML(outputDir string, doc calendar.Document) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	filename := fmt.Sprintf("calendar-%s.html", time.Now().Format("2006-01-02T15-04-05"))
	path := filepath.Join(outputDir, filename)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := pageTemplate.Execute(f, doc); err != nil {
		return "", fmt.Errorf("failed to render calendar page: %w", err)
	}
	return path, nil
}

// DocumentHTML renders the page into a string, for email bodies.
func DocumentHTML(doc calendar.Document) (string, error) {
	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, doc); err != nil {
		return "", fmt.Errorf("failed to render calendar page: %w", err)
	}
	return sb.String(), nil
}

// LatestHTML returns the most recently written calendar page in outputDir.
func LatestHTML(outputDir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(outputDir, "calendar-*.html"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no calendar page found in %s", outputDir)
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}

// captionHTML renders restricted caption markup as HTML via the block
// renderer. Text content is escaped; only the markup's own tags are emitted.
func captionHTML(caption string) template.HTML {
	var sb strings.Builder
	for _, b := range render.Render(caption) {
		switch b.Kind {
		case render.Heading:
			// Heading levels 1-3 map onto h2-h4 inside the post card.
			tag := fmt.Sprintf("h%d", b.Level+1)
			sb.WriteString("<" + tag + ">" + template.HTMLEscapeString(b.Text()) + "</" + tag + ">")
		case render.ListItem:
			sb.WriteString("<li>")
			writeSpans(&sb, b.Spans)
			sb.WriteString("</li>")
		case render.Spacer:
			sb.WriteString(`<div class="spacer"></div>`)
		default:
			sb.WriteString("<p>")
			writeSpans(&sb, b.Spans)
			sb.WriteString("</p>")
		}
	}
	return template.HTML(sb.String())
}

func writeSpans(sb *strings.Builder, spans []render.Span) {
	for _, s := range spans {
		if s.Emph {
			sb.WriteString("<strong>" + template.HTMLEscapeString(s.Text) + "</strong>")
		} else {
			sb.WriteString(template.HTMLEscapeString(s.Text))
		}
	}
}

const defaultTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Summary.Month}} {{.Summary.Year}} Content Calendar</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 860px; margin: 0 auto; padding: 20px; background: #eef6f3; }
        .container { background: white; border-radius: 8px; padding: 24px; }
        h1 { color: #0f766e; margin-bottom: 4px; }
        .subtitle { color: #666; margin-bottom: 20px; }
        .summary { display: grid; grid-template-columns: repeat(3, 1fr); gap: 10px; margin-bottom: 28px; }
        .stat { background: #f0fdfa; border: 1px solid #ccfbf1; border-radius: 8px; padding: 12px; }
        .stat .label { font-size: 11px; text-transform: uppercase; color: #666; letter-spacing: 0.05em; }
        .stat .value { font-size: 20px; font-weight: 700; color: #134e4a; }
        .week { margin-bottom: 28px; }
        .week h2 { color: #134e4a; border-bottom: 2px solid #ccfbf1; padding-bottom: 4px; }
        .range { color: #666; font-size: 14px; margin-bottom: 12px; }
        .post { border: 1px solid #e5e7eb; border-radius: 8px; padding: 14px; margin-bottom: 12px; }
        .post .head { font-weight: 700; }
        .badge { display: inline-block; background: #f0fdfa; color: #0f766e; border-radius: 999px; padding: 2px 10px; font-size: 12px; margin-right: 6px; }
        .caption { margin: 10px 0; line-height: 1.45; }
        .caption .spacer { height: 6px; }
        .meta { color: #555; font-size: 13px; }
        .warning { background: #fffbeb; border: 1px solid #fde68a; color: #92400e; border-radius: 6px; padding: 8px; font-size: 13px; margin-top: 8px; }
        .hashtags { color: #0f766e; font-size: 13px; margin-top: 6px; }
        .footer { margin-top: 20px; padding-top: 12px; border-top: 1px solid #eee; color: #999; font-size: 12px; text-align: center; }
    </style>
</head>
<body>
    <div class="container">
        <h1>{{.Summary.Month}} {{.Summary.Year}} Content Calendar</h1>
        <div class="subtitle">Revenue-driven social content plan for Therma Village Spa &amp; Sport</div>

        <div class="summary">
            <div class="stat"><div class="label">Total Posts</div><div class="value">{{.Summary.TotalPosts}}</div></div>
            <div class="stat"><div class="label">Promotional Posts</div><div class="value">{{.Summary.PromotionalPosts}}</div></div>
            <div class="stat"><div class="label">Conversion Posts</div><div class="value">{{.Summary.ConversionPosts}}</div></div>
            <div class="stat"><div class="label">Awareness:Conversion</div><div class="value">{{.Summary.AwarenessConversionRatio}}</div></div>
            <div class="stat"><div class="label">Formats</div><div class="value">Img {{.Summary.FormatDistribution.Image}} / Car {{.Summary.FormatDistribution.Carousel}} / Reel {{.Summary.FormatDistribution.Reel}} / Story {{.Summary.FormatDistribution.Story}}</div></div>
            <div class="stat"><div class="label">Offer Support</div><div class="value">{{.Summary.OfferSupportPercentage}}%</div></div>
        </div>

        {{range .Weeks}}
        <div class="week">
            <h2>Week {{.WeekNumber}}</h2>
            <div class="range">{{.DateRange}}</div>
            {{range .Posts}}
            <div class="post">
                <div class="head">{{.Day}} &middot; {{.Date}}</div>
                <div>
                    <span class="badge">{{.Pillar}}</span>
                    <span class="badge">{{.ObjectiveTag}}</span>
                    <span class="badge">{{.Format}} @ {{.SuggestedTime}}</span>
                </div>
                <div class="caption">{{caption .Caption}}</div>
                <div class="meta">CTA: {{.CTAType}} &middot; Ad Use: {{.SuggestedAdUse}} &middot; Tag: {{.RemarketingTag}}</div>
                <div class="meta">Visual: {{.VisualConcept}}</div>
                {{if .Hashtags}}<div class="hashtags">{{hashtags .Hashtags}}</div>{{end}}
                {{if .CulturalWarning}}<div class="warning">{{.CulturalWarning}}</div>{{end}}
            </div>
            {{end}}
        </div>
        {{end}}

        <div class="footer">Generated by revcal</div>
    </div>
</body>
</html>`
