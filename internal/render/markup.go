// Package render turns the restricted caption markup produced by the agent
// into an ordered sequence of typed block nodes for display surfaces.
package render

import (
	"regexp"
	"strings"
)

// BlockKind classifies a rendered line.
type BlockKind int

const (
	Paragraph BlockKind = iota
	Heading
	ListItem
	Spacer
)

// Span is an inline run of text, optionally emphasized.
type Span struct {
	Text string
	Emph bool
}

// Block is one line-level node. Level is set for headings (1-3); Ordered
// distinguishes numbered list items from bulleted ones.
type Block struct {
	Kind    BlockKind
	Level   int
	Ordered bool
	Spans   []Span
}

// Text concatenates the block's spans without formatting.
func (b Block) Text() string {
	var sb strings.Builder
	for _, s := range b.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

var (
	orderedRe = regexp.MustCompile(`^\d+\.\s`)
	emphRe    = regexp.MustCompile(`\*\*(.*?)\*\*`)
)

// Render splits text on line breaks and classifies each line by its prefix,
// longest match first. Malformed markup never fails; it degrades to plain
// paragraphs.
func Render(text string) []Block {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, renderLine(line))
	}
	return blocks
}

func renderLine(line string) Block {
	switch {
	case strings.HasPrefix(line, "### "):
		return Block{Kind: Heading, Level: 3, Spans: []Span{{Text: line[4:]}}}
	case strings.HasPrefix(line, "## "):
		return Block{Kind: Heading, Level: 2, Spans: []Span{{Text: line[3:]}}}
	case strings.HasPrefix(line, "# "):
		return Block{Kind: Heading, Level: 1, Spans: []Span{{Text: line[2:]}}}
	case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
		return Block{Kind: ListItem, Spans: Inline(line[2:])}
	case orderedRe.MatchString(line):
		return Block{Kind: ListItem, Ordered: true, Spans: Inline(orderedRe.ReplaceAllString(line, ""))}
	case strings.TrimSpace(line) == "":
		return Block{Kind: Spacer}
	default:
		return Block{Kind: Paragraph, Spans: Inline(line)}
	}
}

// Inline splits text on paired ** delimiters into alternating plain and
// emphasized spans. Unpaired delimiters stay as literal text.
func Inline(text string) []Span {
	matches := emphRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Span{{Text: text}}
	}

	var spans []Span
	last := 0
	for _, m := range matches {
		if m[0] > last {
			spans = append(spans, Span{Text: text[last:m[0]]})
		}
		spans = append(spans, Span{Text: text[m[2]:m[3]], Emph: true})
		last = m[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:]})
	}
	return spans
}
