// Package dashboard renders the year analysis report: activity chart,
// sentiment, themes, highlights and grounded locations.
package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/components/chart"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/keymap"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/messages"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/styles"
	"github.com/weyear-labs/weyear-cli/internal/core/domain"
)

// View is the analysis dashboard stage.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	activity  *chart.BarChart
	sentiment *chart.SentimentBar

	result           *domain.AnalysisResult
	locations        []domain.LocationInfo
	locationsPending bool

	width  int
	height int
}

// NewView creates a new dashboard view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:    s,
		keymap:    km,
		activity:  chart.NewBarChart(s),
		sentiment: chart.NewSentimentBar(s),
		width:     80,
		height:    24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the dashboard view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if key.Matches(msg, v.keymap.Next) {
			return v, func() tea.Msg {
				return messages.AdvanceRequested{}
			}
		}
	}

	return v, nil
}

// View renders the dashboard.
func (v *View) View() string {
	if v.result == nil {
		return v.styles.Muted.Render("暂无分析结果。")
	}

	r := v.result

	sections := []string{
		v.styles.Title.Render("你的 2025 年度报告"),
		v.styles.Muted.Render(fmt.Sprintf("共梳理出 %d 条记忆碎片", r.Summary.TotalPosts)),
		"",
		v.styles.Subtitle.Render("月度活跃"),
		v.activity.Render(r.Summary.MonthlyActivity),
		"",
		v.styles.Subtitle.Render("情绪光谱"),
		v.sentiment.Render(r.Summary.Sentiment),
		"",
		v.styles.Subtitle.Render("年度关键词"),
		v.renderThemes(),
		"",
		v.styles.Subtitle.Render("高光时刻"),
	}

	for _, h := range r.Summary.Highlights {
		sections = append(sections, v.styles.Normal.Render("  ★ "+h))
	}

	sections = append(sections, "", v.styles.Subtitle.Render("走过的地方"))
	sections = append(sections, v.renderLocations()...)

	sections = append(sections, "",
		v.styles.Help.Render("[enter] 生成年度封面  [ctrl+c] 退出"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderThemes() string {
	if len(v.result.Summary.TopThemes) == 0 {
		return v.styles.Muted.Render("  (无)")
	}
	line := " "
	for _, t := range v.result.Summary.TopThemes {
		line += " " + v.styles.Selected.Render(fmt.Sprintf("#%s(%d)", t.Theme, t.Count))
	}
	return line
}

func (v *View) renderLocations() []string {
	if v.locationsPending {
		return []string{v.styles.Muted.Render("  正在通过 Google Maps 匹配地点...")}
	}
	if len(v.locations) == 0 {
		return []string{v.styles.Muted.Render("  未检测到明确的地点信息。")}
	}

	lines := make([]string, 0, len(v.locations))
	for _, loc := range v.locations {
		line := "  📍 " + v.styles.Normal.Render(loc.Name)
		if loc.Rating > 0 {
			line += v.styles.Warning.Render(fmt.Sprintf(" ★%.1f", loc.Rating))
		}
		if loc.URI != "" {
			line += " " + v.styles.Muted.Render(loc.URI)
		}
		lines = append(lines, line)
	}
	return lines
}

// SetResult installs a fresh analysis result and marks location
// enrichment as pending until SetLocations is called.
func (v *View) SetResult(result *domain.AnalysisResult, enriching bool) {
	v.result = result
	v.locations = nil
	v.locationsPending = enriching && result != nil && len(result.Summary.Locations) > 0
}

// SetLocations installs the enrichment outcome. A nil slice means
// enrichment failed or found nothing.
func (v *View) SetLocations(locations []domain.LocationInfo) {
	v.locations = locations
	v.locationsPending = false
}

// Result returns the current analysis result.
func (v *View) Result() *domain.AnalysisResult {
	return v.result
}

// Reset clears the view for a fresh session.
func (v *View) Reset() {
	v.result = nil
	v.locations = nil
	v.locationsPending = false
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	chartWidth := width - 16
	if chartWidth > 40 {
		chartWidth = 40
	}
	v.activity.SetWidth(chartWidth)
	v.sentiment.SetWidth(chartWidth)
}
