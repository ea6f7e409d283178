// Package syncing provides the simulated data-sync view shown between
// import and analysis.
package syncing

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/messages"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/styles"
)

// syncDuration is how long the staged sync animation runs before the
// wizard advances.
const syncDuration = 1500 * time.Millisecond

// tickInterval drives both the progress bar and the log reveal.
const tickInterval = 150 * time.Millisecond

// logLines is the scripted sync transcript, revealed one line per tick.
var logLines = []string{
	"正在连接微信安全网关...",
	"验证身份令牌 (Token) 成功...",
	"扫描朋友圈图文数据库 [█████-----]",
	"解析本地相册元数据 (EXIF)...",
	"检测到 328 条动态，42 张截图...",
	"数据清洗与去重中...",
	"构建记忆碎片索引...",
	"同步完成，准备移交分析引擎。",
}

// View animates a fake device sync with a progress bar and a scrolling
// log, then reports completion.
type View struct {
	styles   *styles.Styles
	progress progress.Model

	ticks    int
	started  time.Time
	running  bool
	width    int
	height   int
}

// NewView creates a new syncing view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	p := progress.New(progress.WithDefaultGradient())
	p.Width = 48

	return &View{
		styles:   s,
		progress: p,
		width:    80,
		height:   24,
	}
}

// Init starts the sync animation.
func (v *View) Init() tea.Cmd {
	v.ticks = 0
	v.started = time.Now()
	v.running = true
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return messages.SyncTicked{}
	})
}

// Update advances the animation and signals completion once the sync
// window has elapsed.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SyncTicked:
		if !v.running {
			return v, nil
		}
		v.ticks++
		if time.Since(v.started) >= syncDuration {
			v.running = false
			return v, func() tea.Msg {
				return messages.SyncDelayElapsed{}
			}
		}
		return v, tea.Tick(tickInterval, func(time.Time) tea.Msg {
			return messages.SyncTicked{}
		})

	case progress.FrameMsg:
		model, cmd := v.progress.Update(msg)
		v.progress = model.(progress.Model)
		return v, cmd
	}

	return v, nil
}

// View renders the sync animation.
func (v *View) View() string {
	ratio := float64(v.ticks) * float64(tickInterval) / float64(syncDuration)
	if ratio > 1 {
		ratio = 1
	}

	visible := v.ticks
	if visible > len(logLines) {
		visible = len(logLines)
	}

	log := make([]string, 0, visible)
	for _, line := range logLines[:visible] {
		log = append(log, v.styles.Muted.Render("› "+line))
	}

	sections := []string{
		v.styles.Title.Render("正在同步记忆数据"),
		"",
		v.progress.ViewAs(ratio),
		"",
	}
	sections = append(sections, log...)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Reset clears the animation state.
func (v *View) Reset() {
	v.ticks = 0
	v.running = false
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth < 20 {
		barWidth = 20
	}
	v.progress.Width = barWidth
}
