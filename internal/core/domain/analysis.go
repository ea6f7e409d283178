package domain

import "strings"

// MonthsInYear is the number of monthly activity entries a well-formed
// analysis carries. The remote service is asked for exactly this many;
// Normalise enforces it locally.
const MonthsInYear = 12

// ThemeCount is one life theme with its mention count.
type ThemeCount struct {
	Theme string `json:"theme"`
	Count int    `json:"count"`
}

// MonthActivity is the activity count for one month.
type MonthActivity struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// Sentiment is the overall emotional composition of the year.
// The three components are non-negative and are not required to sum
// to any fixed total.
type Sentiment struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// YearSummary holds the statistical half of an analysis.
type YearSummary struct {
	// TotalPosts is the model's estimate of how many events the year held.
	TotalPosts int `json:"totalPosts"`

	// TopThemes are the main life themes, most prominent first.
	TopThemes []ThemeCount `json:"topThemes"`

	// MonthlyActivity covers one calendar year, one entry per month.
	MonthlyActivity []MonthActivity `json:"monthlyActivity"`

	// Sentiment is the overall emotional composition.
	Sentiment Sentiment `json:"sentiment"`

	// Highlights are prose descriptions of key events.
	Highlights []string `json:"highlights"`

	// Locations are free-text place names mentioned in the input.
	Locations []string `json:"locations"`
}

// Drafts holds the three stylistically distinct caption drafts.
type Drafts struct {
	Warm    string `json:"warm"`
	Funny   string `json:"funny"`
	Minimal string `json:"minimal"`
}

// AnalysisResult is the sole durable artifact of a session: the parsed
// structured output of the remote analysis call.
type AnalysisResult struct {
	Summary YearSummary `json:"summary"`
	Drafts  Drafts      `json:"drafts"`
}

// Draft returns the caption draft for the given style.
func (r *AnalysisResult) Draft(style DraftStyle) string {
	switch style {
	case DraftWarm:
		return r.Drafts.Warm
	case DraftFunny:
		return r.Drafts.Funny
	case DraftMinimal:
		return r.Drafts.Minimal
	default:
		return ""
	}
}

// defaultMonths labels entries added when the remote service returns
// fewer than twelve months.
var defaultMonths = []string{
	"1月", "2月", "3月", "4月", "5月", "6月",
	"7月", "8月", "9月", "10月", "11月", "12月",
}

// Normalise repairs a schema-conformant but semantically off result so
// downstream rendering can rely on its shape: monthly activity is padded
// or truncated to twelve entries, negative counts are clamped to zero,
// and blank highlights and locations are dropped. The remote contract
// promises a clean result; this is the local enforcement of it.
func (r *AnalysisResult) Normalise() {
	months := r.Summary.MonthlyActivity
	if len(months) > MonthsInYear {
		months = months[:MonthsInYear]
	}
	for len(months) < MonthsInYear {
		months = append(months, MonthActivity{Month: defaultMonths[len(months)]})
	}
	for i := range months {
		if months[i].Count < 0 {
			months[i].Count = 0
		}
	}
	r.Summary.MonthlyActivity = months

	if r.Summary.TotalPosts < 0 {
		r.Summary.TotalPosts = 0
	}
	for i := range r.Summary.TopThemes {
		if r.Summary.TopThemes[i].Count < 0 {
			r.Summary.TopThemes[i].Count = 0
		}
	}
	r.Summary.Sentiment = Sentiment{
		Positive: max(r.Summary.Sentiment.Positive, 0),
		Neutral:  max(r.Summary.Sentiment.Neutral, 0),
		Negative: max(r.Summary.Sentiment.Negative, 0),
	}

	r.Summary.Highlights = dropBlank(r.Summary.Highlights)
	r.Summary.Locations = dropBlank(r.Summary.Locations)
}

// dropBlank removes empty and whitespace-only strings, preserving order.
func dropBlank(items []string) []string {
	out := items[:0]
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// DraftStyle identifies one of the three caption draft styles.
type DraftStyle string

// Available draft styles.
const (
	// DraftWarm is the warm, narrative style.
	DraftWarm DraftStyle = "warm"

	// DraftFunny is the humorous, self-deprecating style.
	DraftFunny DraftStyle = "funny"

	// DraftMinimal is the minimal emoji-list style.
	DraftMinimal DraftStyle = "minimal"
)

// IsValid returns true if the draft style is recognised.
func (s DraftStyle) IsValid() bool {
	switch s {
	case DraftWarm, DraftFunny, DraftMinimal:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s DraftStyle) String() string {
	return string(s)
}

// Description returns a human-readable label for the style.
func (s DraftStyle) Description() string {
	switch s {
	case DraftWarm:
		return "走心叙事"
	case DraftFunny:
		return "幽默调侃"
	case DraftMinimal:
		return "极简清单"
	default:
		return "Unknown"
	}
}

// AllDraftStyles returns the styles in display order.
func AllDraftStyles() []DraftStyle {
	return []DraftStyle{DraftWarm, DraftFunny, DraftMinimal}
}
