package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui/messages"
	"github.com/weyear-labs/weyear-cli/internal/core/domain"
	"github.com/weyear-labs/weyear-cli/internal/core/ports/driving"
)

func newTestPorts() *Ports {
	return &Ports{
		Review:    &MockReviewService{},
		Locations: &MockLocationLookupService{},
		Cover:     &MockCoverService{},
		Caption:   &MockCaptionService{},
		Settings:  &MockSettingsService{},
	}
}

func testResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Summary: domain.YearSummary{
			TotalPosts: 42,
			TopThemes:  []domain.ThemeCount{{Theme: "旅行", Count: 5}},
			Highlights: []string{"第一次看到极光"},
			Locations:  []string{"上海"},
		},
		Drafts: domain.Drafts{Warm: "w", Funny: "f", Minimal: "m"},
	}
}

// goToDashboard drives the app through import, sync and analysis.
func goToDashboard(app *App) {
	app.Update(messages.TextSubmitted{Text: "一年流水账"})
	app.Update(messages.SyncDelayElapsed{})
	app.Update(messages.AnalysisCompleted{Gen: app.analysisGen, Result: testResult()})
}

func TestNewApp_Success(t *testing.T) {
	ports := newTestPorts()

	app, err := NewApp(ports)

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, domain.StepImport, app.CurrentStep())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	ports := newTestPorts()
	ports.Review = nil

	app, err := NewApp(ports)

	assert.ErrorIs(t, err, ErrMissingReviewService)
	assert.Nil(t, app)
}

func TestNewApp_OptionalPortsMayBeNil(t *testing.T) {
	ports := newTestPorts()
	ports.Locations = nil
	ports.Settings = nil

	app, err := NewApp(ports)

	require.NoError(t, err)
	require.NotNil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")
	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
}

func TestApp_Init(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	cmd := app.Init()

	assert.NotNil(t, cmd)
}

func TestApp_Update_WindowSize(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	msg := tea.WindowSizeMsg{Width: 80, Height: 24}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_Update_KeyMsg_CtrlC(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)

	msg := tea.KeyMsg{Type: tea.KeyCtrlC}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.NotNil(t, cmd)
}

func TestApp_Update_TextSubmitted(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)

	msg := messages.TextSubmitted{Text: "  一年流水账  "}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.NotNil(t, cmd)
	assert.Equal(t, domain.StepSyncing, app.CurrentStep())
	require.Len(t, app.State().Moments, 1)
	assert.True(t, app.State().Moments[0].IsSentinel())
	assert.Equal(t, "一年流水账", app.State().Moments[0].Content)
}

func TestApp_Update_TextSubmitted_Blank(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)

	msg := messages.TextSubmitted{Text: "   "}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.Equal(t, domain.StepImport, app.CurrentStep())
}

func TestApp_Update_SyncDelayElapsed_RunsAnalysis(t *testing.T) {
	analyzeCalled := false
	ports := newTestPorts()
	ports.Review = &MockReviewService{
		AnalyzeFunc: func(
			ctx context.Context, moments []domain.Moment, status driving.StatusFunc,
		) (*domain.AnalysisResult, error) {
			analyzeCalled = true
			assert.Len(t, moments, 1)
			return testResult(), nil
		},
	}
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	app.Update(messages.TextSubmitted{Text: "一年流水账"})

	_, cmd := app.Update(messages.SyncDelayElapsed{})

	assert.Equal(t, domain.StepAnalyzing, app.CurrentStep())
	assert.Equal(t, domain.StatusConnecting, app.State().Status)
	require.NotNil(t, cmd)

	// The batch carries the analysis command; find and run it.
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	var completed messages.AnalysisCompleted
	found := false
	for _, sub := range batch {
		if msg, ok := sub().(messages.AnalysisCompleted); ok {
			completed = msg
			found = true
			break
		}
	}
	require.True(t, found)
	assert.True(t, analyzeCalled)

	app.Update(completed)
	assert.Equal(t, domain.StepDashboard, app.CurrentStep())
}

func TestApp_Update_AnalysisStatusChanged(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	app.Update(messages.TextSubmitted{Text: "一年流水账"})
	app.Update(messages.SyncDelayElapsed{})

	app.Update(messages.AnalysisStatusChanged{Status: domain.StatusDeepAnalysis})

	assert.Equal(t, domain.StatusDeepAnalysis, app.State().Status)
}

func TestApp_Update_AnalysisCompleted_Success(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	app.Update(messages.TextSubmitted{Text: "一年流水账"})
	app.Update(messages.SyncDelayElapsed{})

	msg := messages.AnalysisCompleted{Gen: app.analysisGen, Result: testResult()}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.Equal(t, domain.StepDashboard, app.CurrentStep())
	require.NotNil(t, app.State().Result)
	// Locations are present and enrichment is on, so a lookup starts.
	assert.NotNil(t, cmd)
}

func TestApp_Update_AnalysisCompleted_NoLocations(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	app.Update(messages.TextSubmitted{Text: "一年流水账"})
	app.Update(messages.SyncDelayElapsed{})

	result := testResult()
	result.Summary.Locations = nil
	msg := messages.AnalysisCompleted{Gen: app.analysisGen, Result: result}
	_, cmd := app.Update(msg)

	assert.Equal(t, domain.StepDashboard, app.CurrentStep())
	assert.Nil(t, cmd)
}

func TestApp_Update_AnalysisCompleted_Error(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	app.importerView.SetValue("一年流水账")
	app.Update(messages.TextSubmitted{Text: "一年流水账"})
	app.Update(messages.SyncDelayElapsed{})

	failure := errors.New("model unavailable")
	msg := messages.AnalysisCompleted{Gen: app.analysisGen, Err: failure}
	_, cmd := app.Update(msg)

	assert.Nil(t, cmd)
	assert.Equal(t, domain.StepImport, app.CurrentStep())
	assert.Equal(t, failure, app.State().Err)
	assert.Equal(t, "model unavailable", app.importerView.Alert())
	assert.Empty(t, app.importerView.Value())
}

func TestApp_Update_AnalysisCompleted_StaleGeneration(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	app.Update(messages.TextSubmitted{Text: "一年流水账"})
	app.Update(messages.SyncDelayElapsed{})

	msg := messages.AnalysisCompleted{Gen: app.analysisGen - 1, Result: testResult()}
	_, cmd := app.Update(msg)

	assert.Nil(t, cmd)
	assert.Equal(t, domain.StepAnalyzing, app.CurrentStep())
}

func TestApp_Update_LocationsLoaded_StaleGeneration(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	goToDashboard(app)

	msg := messages.LocationsLoaded{
		Gen:       app.locationsGen - 1,
		Locations: []domain.LocationInfo{{Name: "外滩"}},
	}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
}

func TestApp_Update_AdvanceRequested_FromDashboard(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	goToDashboard(app)

	_, cmd := app.Update(messages.AdvanceRequested{})

	assert.Equal(t, domain.StepImageGen, app.CurrentStep())
	assert.NotNil(t, cmd)
}

func TestApp_Update_AdvanceRequested_WithoutCover(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	goToDashboard(app)
	app.Update(messages.AdvanceRequested{})

	// No cover has been generated yet; the wizard stays put.
	_, cmd := app.Update(messages.AdvanceRequested{})

	assert.Equal(t, domain.StepImageGen, app.CurrentStep())
	assert.Nil(t, cmd)
}

func TestApp_Update_GenerateCoverRequested(t *testing.T) {
	generateCalled := false
	ports := newTestPorts()
	ports.Cover = &MockCoverService{
		GenerateFunc: func(ctx context.Context, prompt string, size domain.ImageSize) (string, error) {
			generateCalled = true
			assert.Equal(t, "插画海报", prompt)
			assert.Equal(t, domain.ImageSize4K, size)
			return "data:image/png;base64,AAAA", nil
		},
	}
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	goToDashboard(app)
	app.Update(messages.AdvanceRequested{})

	msg := messages.GenerateCoverRequested{Prompt: "插画海报", Size: domain.ImageSize4K}
	_, cmd := app.Update(msg)

	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	var completed messages.CoverCompleted
	found := false
	for _, sub := range batch {
		if m, ok := sub().(messages.CoverCompleted); ok {
			completed = m
			found = true
			break
		}
	}
	require.True(t, found)
	assert.True(t, generateCalled)

	app.Update(completed)
	assert.Equal(t, "data:image/png;base64,AAAA", app.State().CoverImage)

	// With a cover in hand the advance goes through.
	app.Update(messages.AdvanceRequested{})
	assert.Equal(t, domain.StepFinalEdit, app.CurrentStep())
}

func TestApp_Update_GenerateCoverRequested_WrongStep(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)

	msg := messages.GenerateCoverRequested{Prompt: "插画海报", Size: domain.ImageSize2K}
	_, cmd := app.Update(msg)

	assert.Nil(t, cmd)
}

func TestApp_Update_CoverCompleted_Error(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	goToDashboard(app)
	app.Update(messages.AdvanceRequested{})

	msg := messages.CoverCompleted{Gen: app.coverGen, Err: errors.New("no image")}
	_, cmd := app.Update(msg)

	assert.Nil(t, cmd)
	assert.Equal(t, domain.StepImageGen, app.CurrentStep())
	assert.Empty(t, app.State().CoverImage)
}

func TestApp_Update_ExportCoverRequested_WithoutCover(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)

	_, cmd := app.Update(messages.ExportCoverRequested{Path: "out.png"})

	assert.Nil(t, cmd)
}

func TestApp_Update_ExportCoverRequested(t *testing.T) {
	exportCalled := false
	ports := newTestPorts()
	ports.Cover = &MockCoverService{
		ExportPNGFunc: func(dataURI, path string) error {
			exportCalled = true
			assert.Equal(t, "data:image/png;base64,AAAA", dataURI)
			assert.Equal(t, "out.png", path)
			return nil
		},
	}
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	goToDashboard(app)
	app.Update(messages.AdvanceRequested{})
	app.Update(messages.CoverCompleted{Gen: app.coverGen, DataURI: "data:image/png;base64,AAAA"})

	_, cmd := app.Update(messages.ExportCoverRequested{Path: "out.png"})

	require.NotNil(t, cmd)
	result := cmd()
	exported, ok := result.(messages.CoverExported)
	require.True(t, ok)
	assert.NoError(t, exported.Err)
	assert.Equal(t, "out.png", exported.Path)
	assert.True(t, exportCalled)
}

func TestApp_Update_CopyCaptionRequested(t *testing.T) {
	copied := ""
	ports := newTestPorts()
	ports.Caption = &MockCaptionService{
		CopyToClipboardFunc: func(ctx context.Context, text string) error {
			copied = text
			return nil
		},
	}
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)

	_, cmd := app.Update(messages.CopyCaptionRequested{Text: "文案"})

	require.NotNil(t, cmd)
	result := cmd()
	assert.IsType(t, messages.CaptionCopied{}, result)
	assert.Equal(t, "文案", copied)
}

func TestApp_Update_RestartRequested(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	goToDashboard(app)
	app.Update(messages.AdvanceRequested{})
	app.Update(messages.CoverCompleted{Gen: app.coverGen, DataURI: "data:image/png;base64,AAAA"})
	app.Update(messages.AdvanceRequested{})
	require.Equal(t, domain.StepFinalEdit, app.CurrentStep())

	oldGen := app.analysisGen
	_, cmd := app.Update(messages.RestartRequested{})

	assert.NotNil(t, cmd)
	assert.Equal(t, domain.StepImport, app.CurrentStep())
	assert.Equal(t, domain.InitialWizardState(), app.State())
	assert.Greater(t, app.analysisGen, oldGen)
}

func TestApp_Update_RestartRequested_WrongStep(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	goToDashboard(app)

	_, cmd := app.Update(messages.RestartRequested{})

	assert.Nil(t, cmd)
	assert.Equal(t, domain.StepDashboard, app.CurrentStep())
}

func TestApp_Update_ErrorOccurred_AtImport(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)

	app.Update(messages.ErrorOccurred{Err: errors.New("something went wrong")})

	assert.Equal(t, "something went wrong", app.importerView.Alert())
}

func TestApp_Update_Quit(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	_, cmd := app.Update(messages.Quit{})

	assert.NotNil(t, cmd)
}

func TestApp_View_NotReady(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	view := app.View()

	assert.Contains(t, view, "Initialising")
}

func TestApp_View_ImportView(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)

	view := app.View()

	assert.NotEmpty(t, view)
}

func TestApp_View_DashboardView(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	goToDashboard(app)

	view := app.View()

	assert.Contains(t, view, "第一次看到极光")
}

func TestApp_View_UnknownStep(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	app.state.Step = domain.Step(99)

	view := app.View()

	assert.Empty(t, view)
}

func TestApp_SetDimensions(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	assert.False(t, app.Ready())

	app.SetDimensions(100, 50)

	assert.True(t, app.Ready())
}
