// Package analyzing provides the spinner view shown while the year
// analysis request is in flight.
package analyzing

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/styles"
	"github.com/weyear-labs/weyear-cli/internal/core/domain"
)

// View shows a spinner and the current analysis status line.
type View struct {
	styles  *styles.Styles
	spinner spinner.Model

	status string
	width  int
	height int
}

// NewView creates a new analyzing view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Selected

	return &View{
		styles:  s,
		spinner: sp,
		status:  domain.StatusConnecting,
		width:   80,
		height:  24,
	}
}

// Init starts the spinner.
func (v *View) Init() tea.Cmd {
	return v.spinner.Tick
}

// Update handles messages for the analyzing view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	return v, nil
}

// View renders the analyzing view.
func (v *View) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Title.Render("AI 深度分析中"),
		"",
		v.spinner.View()+" "+v.styles.Normal.Render(v.status),
		"",
		v.styles.Muted.Render("分析由 Gemini 模型完成，请保持网络畅通。"),
	)
}

// SetStatus replaces the status line.
func (v *View) SetStatus(status string) {
	v.status = status
}

// Status returns the current status line.
func (v *View) Status() string {
	return v.status
}

// Reset restores the initial status line.
func (v *View) Reset() {
	v.status = domain.StatusConnecting
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
