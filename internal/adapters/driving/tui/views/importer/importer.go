// Package importer provides the journal text entry view, the first
// stage of the wizard.
package importer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/keymap"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/messages"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/styles"
)

// placeholder mirrors the product's import-stage hint text.
const placeholder = `请在这里粘贴任何内容...

例如：
“一月去看了雪山，很震撼。”
“五月工作很忙，经常加班到深夜。”
“生日那天收到了朋友送的花。”

或者直接复制手机备忘录里的流水账，哪怕格式很乱也没关系，AI 会读懂它。`

// demoText is the canned demonstration input.
const demoText = `1月的时候去了一趟哈尔滨，冰雪大世界太冷了但是很美。
2月过年回家，被七大姑八大姨催婚，有点烦躁。
3月开始减肥，坚持了三天就放弃了，哈哈。
4月工作上拿了一个大项目，开心！和同事去吃了庆功宴。
5月平平淡淡，周末经常去公园发呆。
7月去了上海看展，外滩的人真的好多啊。
10月国庆节在家里躺了七天，太爽了。
11月买了一台新相机，拍了很多照片。
12月，希望明年会对我也好一点。`

// View is the import stage: a multi-line text area plus submit/demo
// actions.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	textarea textarea.Model

	alert  string
	width  int
	height int
	ready  bool
}

// NewView creates a new import view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 0
	ta.SetWidth(76)
	ta.SetHeight(14)
	ta.Focus()

	return &View{
		styles:   s,
		keymap:   km,
		textarea: ta,
		width:    80,
		height:   24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the import view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		// An analysis-failure alert blocks input until acknowledged.
		if v.alert != "" {
			v.alert = ""
			return v, nil
		}

		switch {
		case key.Matches(msg, v.keymap.Submit):
			text := v.textarea.Value()
			if strings.TrimSpace(text) == "" {
				return v, nil
			}
			return v, func() tea.Msg {
				return messages.TextSubmitted{Text: text}
			}

		case key.Matches(msg, v.keymap.Demo):
			v.textarea.SetValue(demoText)
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.textarea, cmd = v.textarea.Update(msg)
	return v, cmd
}

// View renders the import view.
func (v *View) View() string {
	sections := []string{
		v.styles.Title.Render("WeYear · AI 记忆重组"),
		"",
		v.styles.Muted.Render("把你的一年写下来，AI 会从零散的文字中梳理出时间线、情感和高光时刻。"),
		"",
		v.styles.InputField.Render(v.textarea.View()),
	}

	if v.alert != "" {
		sections = append(sections, "",
			v.styles.Error.Render("⚠ "+v.alert),
			v.styles.Muted.Render("(按任意键继续)"),
		)
	}

	sections = append(sections, "",
		v.styles.Help.Render("[ctrl+s] 开始分析  [ctrl+p] 试用演示数据  [ctrl+c] 退出"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetAlert shows a blocking error notice above the footer. The next
// keypress dismisses it.
func (v *View) SetAlert(message string) {
	v.alert = message
}

// Alert returns the current alert message, empty when none.
func (v *View) Alert() string {
	return v.alert
}

// Value returns the current text area content.
func (v *View) Value() string {
	return v.textarea.Value()
}

// SetValue sets the text area content.
func (v *View) SetValue(text string) {
	v.textarea.SetValue(text)
}

// Reset clears the view for a fresh session.
func (v *View) Reset() {
	v.textarea.Reset()
	v.alert = ""
	v.textarea.Focus()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	taWidth := width - 4
	if taWidth < 40 {
		taWidth = 40
	}
	v.textarea.SetWidth(taWidth)
}
