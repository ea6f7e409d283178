// Package imagegen provides the cover generation view: prompt entry,
// size selection and export of the generated poster.
package imagegen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/keymap"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/messages"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/styles"
	"github.com/weyear-labs/weyear-cli/internal/core/domain"
)

// defaultExportPath is where ctrl+o writes the decoded poster.
const defaultExportPath = "weyear-cover.png"

// View is the cover generation stage.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	prompt  textinput.Model
	spinner spinner.Model

	defaultSize domain.ImageSize
	sizeIdx     int
	generating  bool
	dataURI     string
	exported    string
	errMsg      string

	width  int
	height int
}

// NewView creates a new image generation view.
func NewView(s *styles.Styles, km *keymap.KeyMap, defaultSize domain.ImageSize) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	ti := textinput.New()
	ti.Placeholder = "描述你想要的封面画面..."
	ti.CharLimit = 0
	ti.Width = 64
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Selected

	sizeIdx := 0
	for i, size := range domain.AllImageSizes() {
		if size == defaultSize {
			sizeIdx = i
		}
	}

	return &View{
		styles:      s,
		keymap:      km,
		prompt:      ti,
		spinner:     sp,
		defaultSize: defaultSize,
		sizeIdx:     sizeIdx,
		width:       80,
		height:      24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the image generation view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case spinner.TickMsg:
		if !v.generating {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if v.generating {
			return v, nil
		}

		switch {
		case key.Matches(msg, v.keymap.Generate):
			text := strings.TrimSpace(v.prompt.Value())
			if text == "" {
				v.errMsg = "请先输入封面描述。"
				return v, nil
			}
			v.errMsg = ""
			v.exported = ""
			size := v.Size()
			return v, func() tea.Msg {
				return messages.GenerateCoverRequested{Prompt: text, Size: size}
			}

		case key.Matches(msg, v.keymap.Up), key.Matches(msg, v.keymap.Down):
			sizes := domain.AllImageSizes()
			if key.Matches(msg, v.keymap.Up) {
				v.sizeIdx = (v.sizeIdx + len(sizes) - 1) % len(sizes)
			} else {
				v.sizeIdx = (v.sizeIdx + 1) % len(sizes)
			}
			return v, nil

		case key.Matches(msg, v.keymap.Save):
			if v.dataURI == "" {
				return v, nil
			}
			return v, func() tea.Msg {
				return messages.ExportCoverRequested{Path: defaultExportPath}
			}

		case key.Matches(msg, v.keymap.Next):
			if v.dataURI == "" {
				return v, nil
			}
			return v, func() tea.Msg {
				return messages.AdvanceRequested{}
			}
		}
	}

	var cmd tea.Cmd
	v.prompt, cmd = v.prompt.Update(msg)
	return v, cmd
}

// View renders the image generation view.
func (v *View) View() string {
	sections := []string{
		v.styles.Title.Render("生成年度封面"),
		"",
		v.styles.Normal.Render("封面描述:"),
		v.styles.InputField.Render(v.prompt.View()),
		"",
		v.renderSizes(),
		"",
	}

	switch {
	case v.generating:
		sections = append(sections, v.spinner.View()+" "+v.styles.Muted.Render("正在绘制 3:4 年度海报..."))
	case v.dataURI != "":
		sections = append(sections,
			v.styles.Success.Render(fmt.Sprintf("✓ 封面已生成 (%s, %d 字节)", v.Size(), len(v.dataURI))),
		)
		if v.exported != "" {
			sections = append(sections, v.styles.Success.Render("✓ 已保存到 "+v.exported))
		}
	}

	if v.errMsg != "" {
		sections = append(sections, v.styles.Error.Render("⚠ "+v.errMsg))
	}

	help := "[ctrl+g] 生成  [↑/↓] 尺寸"
	if v.dataURI != "" {
		help += "  [ctrl+o] 保存 PNG  [enter] 下一步"
	}
	sections = append(sections, "", v.styles.Help.Render(help))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderSizes() string {
	line := v.styles.Normal.Render("输出尺寸: ")
	for i, size := range domain.AllImageSizes() {
		label := fmt.Sprintf(" %s · %s ", size, size.Description())
		if i == v.sizeIdx {
			line += v.styles.Selected.Render("[" + label + "]")
		} else {
			line += v.styles.Muted.Render(" " + label + " ")
		}
	}
	return line
}

// Size returns the currently selected output size.
func (v *View) Size() domain.ImageSize {
	return domain.AllImageSizes()[v.sizeIdx]
}

// SetGenerating toggles the in-flight state.
func (v *View) SetGenerating(generating bool) tea.Cmd {
	v.generating = generating
	if generating {
		return v.spinner.Tick
	}
	return nil
}

// Generating reports whether a request is in flight.
func (v *View) Generating() bool {
	return v.generating
}

// SetCover installs a generated cover data URI.
func (v *View) SetCover(dataURI string) {
	v.dataURI = dataURI
	v.generating = false
	v.errMsg = ""
}

// SetError shows a generation or export failure.
func (v *View) SetError(err error) {
	v.generating = false
	if err != nil {
		v.errMsg = err.Error()
	}
}

// SetExported records a successful PNG export.
func (v *View) SetExported(path string) {
	v.exported = path
}

// SetSuggestedPrompt prefills the prompt field when it is still empty.
func (v *View) SetSuggestedPrompt(prompt string) {
	if strings.TrimSpace(v.prompt.Value()) == "" {
		v.prompt.SetValue(prompt)
	}
}

// Reset clears the view for a fresh session.
func (v *View) Reset() {
	v.prompt.Reset()
	v.generating = false
	v.dataURI = ""
	v.exported = ""
	v.errMsg = ""
	for i, size := range domain.AllImageSizes() {
		if size == v.defaultSize {
			v.sizeIdx = i
		}
	}
	v.prompt.Focus()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	inWidth := width - 8
	if inWidth < 30 {
		inWidth = 30
	}
	v.prompt.Width = inWidth
}
