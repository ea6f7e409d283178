package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
)

func TestBarChart_Render_Empty(t *testing.T) {
	chart := NewBarChart(nil)

	out := chart.Render(nil)

	assert.Contains(t, out, "no activity data")
}

func TestBarChart_Render(t *testing.T) {
	chart := NewBarChart(nil)
	entries := []domain.MonthActivity{
		{Month: "1月", Count: 10},
		{Month: "2月", Count: 5},
		{Month: "3月", Count: 0},
	}

	out := chart.Render(entries)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "1月")
	assert.Contains(t, lines[0], "10")
	assert.Contains(t, lines[2], "3月")
}

func TestBarChart_Render_MinimumBarForNonZeroCount(t *testing.T) {
	chart := NewBarChart(nil)
	chart.SetWidth(10)
	entries := []domain.MonthActivity{
		{Month: "1月", Count: 100},
		{Month: "2月", Count: 1},
	}

	out := chart.Render(entries)

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[1], "█")
}

func TestBarChart_Render_NegativeCount(t *testing.T) {
	chart := NewBarChart(nil)
	entries := []domain.MonthActivity{
		{Month: "1月", Count: 5},
		{Month: "2月", Count: -3},
	}

	var out string
	assert.NotPanics(t, func() {
		out = chart.Render(entries)
	})
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[1], "-3")
}

func TestBarChart_Render_ShortYear(t *testing.T) {
	chart := NewBarChart(nil)
	entries := []domain.MonthActivity{
		{Month: "1月", Count: 3},
	}

	out := chart.Render(entries)

	assert.Len(t, strings.Split(out, "\n"), 1)
}

func TestSentimentBar_Render_ZeroComposition(t *testing.T) {
	bar := NewSentimentBar(nil)

	out := bar.Render(domain.Sentiment{})

	assert.Contains(t, out, "░")
	assert.NotContains(t, out, "%")
}

func TestSentimentBar_Render(t *testing.T) {
	bar := NewSentimentBar(nil)

	out := bar.Render(domain.Sentiment{Positive: 60, Neutral: 30, Negative: 10})

	assert.Contains(t, out, "开心 60%")
	assert.Contains(t, out, "平淡 30%")
	assert.Contains(t, out, "低落 10%")
}

func TestSentimentBar_Render_MixedSigns(t *testing.T) {
	bar := NewSentimentBar(nil)

	assert.NotPanics(t, func() {
		bar.Render(domain.Sentiment{Positive: 50, Neutral: 0, Negative: -10})
	})
}
