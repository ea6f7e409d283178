// Package chart renders small text charts for the dashboard view.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/styles"
	"github.com/weyear-labs/weyear-cli/internal/core/domain"
)

// BarChart renders horizontal activity bars, one row per entry.
type BarChart struct {
	styles *styles.Styles
	width  int
}

// NewBarChart creates a bar chart renderer.
func NewBarChart(s *styles.Styles) *BarChart {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &BarChart{styles: s, width: 40}
}

// SetWidth sets the maximum bar width in cells.
func (c *BarChart) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	c.width = width
}

// Render draws one row per activity entry. Any entry count is tolerated,
// including zero entries and an entry count other than twelve.
func (c *BarChart) Render(entries []domain.MonthActivity) string {
	if len(entries) == 0 {
		return c.styles.Muted.Render("(no activity data)")
	}

	maxCount := 0
	for _, e := range entries {
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}

	rows := make([]string, 0, len(entries))
	for _, e := range entries {
		length := 0
		if maxCount > 0 {
			length = max(e.Count, 0) * c.width / maxCount
		}
		if e.Count > 0 && length == 0 {
			length = 1
		}
		bar := c.styles.Subtitle.Render(strings.Repeat("█", length))
		label := c.styles.Muted.Render(fmt.Sprintf("%4s", e.Month))
		rows = append(rows, fmt.Sprintf("%s %s %d", label, bar, e.Count))
	}
	return strings.Join(rows, "\n")
}

// SentimentBar renders the emotional composition as one segmented bar.
type SentimentBar struct {
	styles *styles.Styles
	width  int
}

// NewSentimentBar creates a sentiment bar renderer.
func NewSentimentBar(s *styles.Styles) *SentimentBar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &SentimentBar{styles: s, width: 40}
}

// SetWidth sets the total bar width in cells.
func (b *SentimentBar) SetWidth(width int) {
	if width < 12 {
		width = 12
	}
	b.width = width
}

// Render draws the composition bar with a legend line underneath.
// A zero composition renders as an all-muted bar.
func (b *SentimentBar) Render(s domain.Sentiment) string {
	total := s.Positive + s.Neutral + s.Negative
	if total <= 0 {
		return b.styles.Muted.Render(strings.Repeat("░", b.width))
	}

	posLen := max(int(s.Positive/total*float64(b.width)), 0)
	negLen := max(int(s.Negative/total*float64(b.width)), 0)
	neuLen := max(b.width-posLen-negLen, 0)

	bar := lipgloss.JoinHorizontal(lipgloss.Top,
		b.styles.Success.Render(strings.Repeat("█", posLen)),
		b.styles.Muted.Render(strings.Repeat("█", neuLen)),
		b.styles.Error.Render(strings.Repeat("█", negLen)),
	)
	legend := b.styles.Help.Render(fmt.Sprintf(
		"开心 %.0f%%  平淡 %.0f%%  低落 %.0f%%",
		s.Positive/total*100, s.Neutral/total*100, s.Negative/total*100,
	))
	return bar + "\n" + legend
}
