package calendar

import "encoding/json"

// Post is one scheduled social post. All fields come from the agent and are
// best-effort prose; missing fields decode to their zero values and render
// as empty downstream.
type Post struct {
	Day             string   `json:"day"`
	Date            string   `json:"date"`
	Pillar          string   `json:"pillar"`
	ObjectiveTag    string   `json:"objectiveTag"`
	Format          string   `json:"format"`
	SuggestedTime   string   `json:"suggestedTime"`
	Caption         string   `json:"caption"`
	CTAType         string   `json:"ctaType"`
	VisualConcept   string   `json:"visualConcept"`
	Hashtags        []string `json:"hashtags"`
	SuggestedAdUse  string   `json:"suggestedAdUse"`
	RemarketingTag  string   `json:"remarketingTag"`
	CulturalWarning string   `json:"culturalWarning"`
}

// Week is a contiguous planning unit. WeekNumber is the sole correlation key
// when splicing a regenerated week back into a document.
type Week struct {
	WeekNumber int    `json:"weekNumber"`
	DateRange  string `json:"dateRange"`
	Posts      []Post `json:"posts"`
}

// FormatDistribution counts posts per media format.
type FormatDistribution struct {
	Image    int `json:"Image"`
	Carousel int `json:"Carousel"`
	Reel     int `json:"Reel"`
	Story    int `json:"Story"`
}

// Summary is the monthly aggregate supplied by the agent. It is accepted
// as-is and never recomputed from week data.
type Summary struct {
	Month                    string             `json:"month"`
	Year                     int                `json:"year"`
	TotalPosts               int                `json:"totalPosts"`
	PromotionalPosts         int                `json:"promotionalPosts"`
	ConversionPosts          int                `json:"conversionPosts"`
	AwarenessConversionRatio string             `json:"awarenessConversionRatio"`
	FormatDistribution       FormatDistribution `json:"formatDistribution"`
	OfferSupportPercentage   float64            `json:"offerSupportPercentage"`
}

// Document is the root aggregate: one summary plus an ordered week sequence.
type Document struct {
	Summary Summary `json:"summary"`
	Weeks   []Week  `json:"weeks"`
}

// Envelope is the raw response returned by the agent gateway. The success
// flag is trusted; the response payload is not, and may be a string, a
// nested object, or missing entirely.
type Envelope struct {
	Success  bool            `json:"success"`
	Response json.RawMessage `json:"response,omitempty"`
	Error    string          `json:"error,omitempty"`

	// Raw is the unparsed envelope bytes as received from the provider,
	// kept for the generation history. Not part of the wire shape.
	Raw json.RawMessage `json:"-"`
}
