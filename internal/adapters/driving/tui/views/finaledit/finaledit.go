// Package finaledit provides the closing view: draft selection, the
// user's own words and the assembled share caption.
package finaledit

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/keymap"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/messages"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/styles"
	"github.com/weyear-labs/weyear-cli/internal/core/domain"
)

const (
	focusSummary = iota
	focusGoal
)

// View is the final edit stage.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	summary textinput.Model
	goal    textinput.Model

	result *domain.AnalysisResult
	style  domain.DraftStyle
	focus  int
	copied bool
	errMsg string

	width  int
	height int
}

// NewView creates a new final edit view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	summary := textinput.New()
	summary.Placeholder = "用一句话总结你的这一年"
	summary.CharLimit = 0
	summary.Width = 56
	summary.Focus()

	goal := textinput.New()
	goal.Placeholder = "明年最想做成的一件事"
	goal.CharLimit = 0
	goal.Width = 56

	return &View{
		styles:  s,
		keymap:  km,
		summary: summary,
		goal:    goal,
		style:   domain.DraftWarm,
		width:   80,
		height:  24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the final edit view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Up), key.Matches(msg, v.keymap.Down):
			all := domain.AllDraftStyles()
			idx := 0
			for i, st := range all {
				if st == v.style {
					idx = i
				}
			}
			if key.Matches(msg, v.keymap.Up) {
				idx = (idx + len(all) - 1) % len(all)
			} else {
				idx = (idx + 1) % len(all)
			}
			v.style = all[idx]
			v.copied = false
			return v, nil

		case key.Matches(msg, v.keymap.Focus):
			if v.focus == focusSummary {
				v.focus = focusGoal
				v.summary.Blur()
				v.goal.Focus()
			} else {
				v.focus = focusSummary
				v.goal.Blur()
				v.summary.Focus()
			}
			return v, nil

		case key.Matches(msg, v.keymap.Copy):
			caption := v.Caption()
			return v, func() tea.Msg {
				return messages.CopyCaptionRequested{Text: caption}
			}

		case key.Matches(msg, v.keymap.Restart):
			return v, func() tea.Msg {
				return messages.RestartRequested{}
			}
		}
	}

	var cmd tea.Cmd
	if v.focus == focusSummary {
		v.summary, cmd = v.summary.Update(msg)
	} else {
		v.goal, cmd = v.goal.Update(msg)
	}
	return v, cmd
}

// View renders the final edit view.
func (v *View) View() string {
	sections := []string{
		v.styles.Title.Render("最后一步：留下你自己的声音"),
		"",
		v.renderStyleTabs(),
		"",
		v.styles.Border.Render(v.draftText()),
		"",
		v.styles.Normal.Render("💬 我这一句:"),
		v.styles.InputField.Render(v.summary.View()),
		v.styles.Normal.Render("🎯 明年想做:"),
		v.styles.InputField.Render(v.goal.View()),
		"",
		v.styles.Subtitle.Render("文案预览"),
		v.styles.Muted.Render(v.Caption()),
	}

	if v.copied {
		sections = append(sections, "", v.styles.Success.Render("✓ 文案已复制到剪贴板"))
	}
	if v.errMsg != "" {
		sections = append(sections, "", v.styles.Error.Render("⚠ "+v.errMsg))
	}

	sections = append(sections, "",
		v.styles.Help.Render("[↑/↓] 切换文风  [tab] 切换输入框  [ctrl+y] 复制文案  [ctrl+r] 重新开始"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderStyleTabs() string {
	line := ""
	for _, st := range domain.AllDraftStyles() {
		label := fmt.Sprintf(" %s ", st.Description())
		if st == v.style {
			line += v.styles.Selected.Render("[" + label + "]")
		} else {
			line += v.styles.Muted.Render(" " + label + " ")
		}
	}
	return line
}

func (v *View) draftText() string {
	if v.result == nil {
		return ""
	}
	return v.result.Draft(v.style)
}

// Caption assembles the share caption from the selected draft and the
// user's inputs.
func (v *View) Caption() string {
	return domain.AssembleCaption(v.draftText(), v.summary.Value(), v.goal.Value())
}

// SetResult installs the analysis result the drafts come from.
func (v *View) SetResult(result *domain.AnalysisResult) {
	v.result = result
}

// SetCopied records the clipboard outcome.
func (v *View) SetCopied(err error) {
	if err != nil {
		v.copied = false
		v.errMsg = err.Error()
		return
	}
	v.copied = true
	v.errMsg = ""
}

// Style returns the selected draft style.
func (v *View) Style() domain.DraftStyle {
	return v.style
}

// Reset clears the view for a fresh session.
func (v *View) Reset() {
	v.summary.Reset()
	v.goal.Reset()
	v.result = nil
	v.style = domain.DraftWarm
	v.focus = focusSummary
	v.copied = false
	v.errMsg = ""
	v.goal.Blur()
	v.summary.Focus()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	inWidth := width - 12
	if inWidth < 30 {
		inWidth = 30
	}
	v.summary.Width = inWidth
	v.goal.Width = inWidth
}
