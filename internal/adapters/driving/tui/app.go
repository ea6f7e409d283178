package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/keymap"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/messages"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/styles"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/views/analyzing"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/views/dashboard"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/views/finaledit"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/views/imagegen"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/views/importer"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/views/syncing"
	"github.com/weyear-labs/weyear-cli/internal/core/domain"
)

// deepAnalysisDelay is when the analyzing status line switches from the
// connection notice to the long-phase notice.
const deepAnalysisDelay = 2 * time.Second

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea. All wizard
// transitions go through domain.Reduce; the App owns only the
// presentation around that state.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the shared key bindings.
	keymap *keymap.KeyMap

	// state is the wizard state, advanced exclusively via domain.Reduce.
	state domain.WizardState

	// importerView is the journal text entry view.
	importerView *importer.View

	// syncingView is the simulated data-sync view.
	syncingView *syncing.View

	// analyzingView is the analysis-in-flight view.
	analyzingView *analyzing.View

	// dashboardView is the year report view.
	dashboardView *dashboard.View

	// imagegenView is the cover generation view.
	imagegenView *imagegen.View

	// finaleditView is the closing caption view.
	finaleditView *finaledit.View

	// enrichLocations controls whether the dashboard triggers the
	// grounding lookup after analysis.
	enrichLocations bool

	// Generation counters let stale asynchronous completions be
	// dropped after a restart or resubmission.
	analysisGen  int
	locationsGen int
	coverGen     int

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	settings := domain.DefaultAppSettings()
	if ports.Settings != nil {
		if loaded, err := ports.Settings.Get(); err == nil && loaded != nil {
			settings = *loaded
		}
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:           ports,
		ctx:             context.Background(),
		styles:          s,
		keymap:          km,
		state:           domain.InitialWizardState(),
		importerView:    importer.NewView(s, km),
		syncingView:     syncing.NewView(s),
		analyzingView:   analyzing.NewView(s),
		dashboardView:   dashboard.NewView(s, km),
		imagegenView:    imagegen.NewView(s, km, settings.DefaultImageSize),
		finaleditView:   finaledit.NewView(s, km),
		enrichLocations: settings.EnrichLocations,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("weyear - AI 年终总结"),
		a.importerView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.importerView.SetDimensions(msg.Width, msg.Height)
		a.syncingView.SetDimensions(msg.Width, msg.Height)
		a.analyzingView.SetDimensions(msg.Width, msg.Height)
		a.dashboardView.SetDimensions(msg.Width, msg.Height)
		a.imagegenView.SetDimensions(msg.Width, msg.Height)
		a.finaleditView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.updateActiveView(msg)

	case messages.TextSubmitted:
		a.state = domain.Reduce(a.state, domain.SubmitText{Text: msg.Text})
		if a.state.Step == domain.StepSyncing {
			a.syncingView.Reset()
			return a, a.syncingView.Init()
		}
		return a, nil

	case messages.SyncDelayElapsed:
		a.state = domain.Reduce(a.state, domain.SyncFinished{})
		if a.state.Step != domain.StepAnalyzing {
			return a, nil
		}
		a.analyzingView.Reset()
		a.state = domain.Reduce(a.state, domain.StatusChanged{Status: domain.StatusConnecting})
		return a, tea.Batch(
			a.analyzingView.Init(),
			a.startAnalysis(),
			tea.Tick(deepAnalysisDelay, func(time.Time) tea.Msg {
				return messages.AnalysisStatusChanged{Status: domain.StatusDeepAnalysis}
			}),
		)

	case messages.AnalysisStatusChanged:
		a.state = domain.Reduce(a.state, domain.StatusChanged{Status: msg.Status})
		if a.state.Step == domain.StepAnalyzing {
			a.analyzingView.SetStatus(msg.Status)
		}
		return a, nil

	case messages.AnalysisCompleted:
		if msg.Gen != a.analysisGen {
			return a, nil
		}
		if msg.Err != nil {
			a.state = domain.Reduce(a.state, domain.AnalysisFailed{Err: msg.Err})
			a.importerView.Reset()
			a.importerView.SetAlert(msg.Err.Error())
			return a, nil
		}
		a.state = domain.Reduce(a.state, domain.AnalysisSucceeded{Result: msg.Result})
		if a.state.Step != domain.StepDashboard {
			return a, nil
		}
		enriching := a.canEnrich(msg.Result)
		a.dashboardView.SetResult(msg.Result, enriching)
		a.finaleditView.SetResult(msg.Result)
		a.imagegenView.SetSuggestedPrompt(coverPromptFor(msg.Result))
		if enriching {
			return a, a.startLocationLookup(msg.Result.Summary.Locations)
		}
		return a, nil

	case messages.LocationsLoaded:
		if msg.Gen != a.locationsGen {
			return a, nil
		}
		a.dashboardView.SetLocations(msg.Locations)
		return a, nil

	case messages.AdvanceRequested:
		return a.advance()

	case messages.GenerateCoverRequested:
		if a.state.Step != domain.StepImageGen {
			return a, nil
		}
		return a, tea.Batch(
			a.imagegenView.SetGenerating(true),
			a.startCoverGeneration(msg.Prompt, msg.Size),
		)

	case messages.CoverCompleted:
		if msg.Gen != a.coverGen {
			return a, nil
		}
		if msg.Err != nil {
			a.imagegenView.SetError(msg.Err)
			return a, nil
		}
		a.state = domain.Reduce(a.state, domain.CoverGenerated{DataURI: msg.DataURI})
		a.imagegenView.SetCover(msg.DataURI)
		return a, nil

	case messages.ExportCoverRequested:
		if a.state.CoverImage == "" {
			return a, nil
		}
		dataURI := a.state.CoverImage
		path := msg.Path
		return a, func() tea.Msg {
			err := a.ports.Cover.ExportPNG(dataURI, path)
			return messages.CoverExported{Path: path, Err: err}
		}

	case messages.CoverExported:
		if msg.Err != nil {
			a.imagegenView.SetError(msg.Err)
			return a, nil
		}
		a.imagegenView.SetExported(msg.Path)
		return a, nil

	case messages.CopyCaptionRequested:
		text := msg.Text
		return a, func() tea.Msg {
			err := a.ports.Caption.CopyToClipboard(a.ctx, text)
			return messages.CaptionCopied{Err: err}
		}

	case messages.CaptionCopied:
		a.finaleditView.SetCopied(msg.Err)
		return a, nil

	case messages.RestartRequested:
		a.state = domain.Reduce(a.state, domain.Restart{})
		if a.state.Step != domain.StepImport {
			return a, nil
		}
		// Invalidate any still-running asynchronous work.
		a.analysisGen++
		a.locationsGen++
		a.coverGen++
		a.importerView.Reset()
		a.syncingView.Reset()
		a.analyzingView.Reset()
		a.dashboardView.Reset()
		a.imagegenView.Reset()
		a.finaleditView.Reset()
		return a, a.importerView.Init()

	case messages.ErrorOccurred:
		if a.state.Step == domain.StepImport {
			a.importerView.SetAlert(msg.Err.Error())
		}
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (ticks, blinks, frames) to the active view.
	return a.updateActiveView(msg)
}

// updateActiveView forwards a message to the view for the current step.
func (a *App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.state.Step {
	case domain.StepImport:
		a.importerView, cmd = a.importerView.Update(msg)
	case domain.StepSyncing:
		a.syncingView, cmd = a.syncingView.Update(msg)
	case domain.StepAnalyzing:
		a.analyzingView, cmd = a.analyzingView.Update(msg)
	case domain.StepDashboard:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
	case domain.StepImageGen:
		a.imagegenView, cmd = a.imagegenView.Update(msg)
	case domain.StepFinalEdit:
		a.finaleditView, cmd = a.finaleditView.Update(msg)
	}
	return a, cmd
}

// advance applies the explicit user advance for the current step.
func (a *App) advance() (tea.Model, tea.Cmd) {
	switch a.state.Step {
	case domain.StepDashboard:
		a.state = domain.Reduce(a.state, domain.AdvanceFromDashboard{})
		if a.state.Step == domain.StepImageGen {
			return a, a.imagegenView.Init()
		}
	case domain.StepImageGen:
		a.state = domain.Reduce(a.state, domain.AdvanceFromImageGen{})
		if a.state.Step == domain.StepFinalEdit {
			return a, a.finaleditView.Init()
		}
	case domain.StepImport, domain.StepSyncing, domain.StepAnalyzing, domain.StepFinalEdit:
		// No explicit advance from these steps.
	}
	return a, nil
}

// startAnalysis launches the year analysis for the current moments.
func (a *App) startAnalysis() tea.Cmd {
	a.analysisGen++
	gen := a.analysisGen
	moments := a.state.Moments
	return func() tea.Msg {
		result, err := a.ports.Review.Analyze(a.ctx, moments, nil)
		return messages.AnalysisCompleted{Gen: gen, Result: result, Err: err}
	}
}

// startLocationLookup launches the grounding enrichment.
func (a *App) startLocationLookup(names []string) tea.Cmd {
	a.locationsGen++
	gen := a.locationsGen
	return func() tea.Msg {
		locations := a.ports.Locations.Lookup(a.ctx, names)
		return messages.LocationsLoaded{Gen: gen, Locations: locations}
	}
}

// startCoverGeneration launches the cover image request.
func (a *App) startCoverGeneration(prompt string, size domain.ImageSize) tea.Cmd {
	a.coverGen++
	gen := a.coverGen
	return func() tea.Msg {
		dataURI, err := a.ports.Cover.Generate(a.ctx, prompt, size)
		return messages.CoverCompleted{Gen: gen, DataURI: dataURI, Err: err}
	}
}

// canEnrich reports whether the grounding lookup should run for the
// given result.
func (a *App) canEnrich(result *domain.AnalysisResult) bool {
	return a.enrichLocations &&
		a.ports.Locations != nil &&
		result != nil &&
		len(result.Summary.Locations) > 0
}

// coverPromptFor builds the suggested cover prompt from the year's
// highlights.
func coverPromptFor(result *domain.AnalysisResult) string {
	if result == nil || len(result.Summary.Highlights) == 0 {
		return "一张温暖治愈的年度总结插画海报"
	}
	highlights := result.Summary.Highlights
	if len(highlights) > 3 {
		highlights = highlights[:3]
	}
	return "为我的年度总结设计一张插画风格海报，画面包含：" + strings.Join(highlights, "、")
}

// View implements tea.Model.
// It renders the view for the current wizard step.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.state.Step {
	case domain.StepImport:
		return a.importerView.View()
	case domain.StepSyncing:
		return a.syncingView.View()
	case domain.StepAnalyzing:
		return a.analyzingView.View()
	case domain.StepDashboard:
		return a.dashboardView.View()
	case domain.StepImageGen:
		return a.imagegenView.View()
	case domain.StepFinalEdit:
		return a.finaleditView.View()
	default:
		return ""
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// State returns the current wizard state.
func (a *App) State() domain.WizardState {
	return a.state
}

// CurrentStep returns the current wizard step.
func (a *App) CurrentStep() domain.Step {
	return a.state.Step
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.importerView.SetDimensions(width, height)
	a.dashboardView.SetDimensions(width, height)
}
