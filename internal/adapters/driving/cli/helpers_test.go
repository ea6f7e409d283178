package cli

import (
	"context"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
	"github.com/weyear-labs/weyear-cli/internal/core/ports/driving"
)

// mockReviewService implements driving.ReviewService for CLI tests.
type mockReviewService struct {
	AnalyzeFunc func(ctx context.Context, moments []domain.Moment, status driving.StatusFunc) (*domain.AnalysisResult, error)
}

func (m *mockReviewService) Analyze(
	ctx context.Context, moments []domain.Moment, status driving.StatusFunc,
) (*domain.AnalysisResult, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, moments, status)
	}
	result := testAnalysisResult()
	return &result, nil
}

// mockLocationLookupService implements driving.LocationLookupService.
type mockLocationLookupService struct {
	LookupFunc func(ctx context.Context, names []string) []domain.LocationInfo
}

func (m *mockLocationLookupService) Lookup(ctx context.Context, names []string) []domain.LocationInfo {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, names)
	}
	return nil
}

// mockCoverService implements driving.CoverService.
type mockCoverService struct {
	GenerateFunc  func(ctx context.Context, prompt string, size domain.ImageSize) (string, error)
	ExportPNGFunc func(dataURI, path string) error
}

func (m *mockCoverService) Generate(ctx context.Context, prompt string, size domain.ImageSize) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, size)
	}
	return "data:image/png;base64,AAAA", nil
}

func (m *mockCoverService) ExportPNG(dataURI, path string) error {
	if m.ExportPNGFunc != nil {
		return m.ExportPNGFunc(dataURI, path)
	}
	return nil
}

// mockCaptionService implements driving.CaptionService.
type mockCaptionService struct{}

func (m *mockCaptionService) Assemble(
	result *domain.AnalysisResult, style domain.DraftStyle, userSummary, userGoal string,
) string {
	if result == nil {
		return ""
	}
	return domain.AssembleCaption(result.Draft(style), userSummary, userGoal)
}

func (m *mockCaptionService) CopyToClipboard(_ context.Context, _ string) error {
	return nil
}

// mockSettingsService implements driving.SettingsService.
type mockSettingsService struct {
	settings domain.AppSettings
	apiKey   string
	saved    *domain.AppSettings
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{settings: domain.DefaultAppSettings()}
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	settings := m.settings
	return &settings, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.saved = settings
	m.settings = *settings
	return nil
}

func (m *mockSettingsService) APIKey() string { return m.apiKey }

func (m *mockSettingsService) SetAPIKey(key string) error {
	m.apiKey = key
	return nil
}

func testAnalysisResult() domain.AnalysisResult {
	result := domain.AnalysisResult{
		Summary: domain.YearSummary{
			TotalPosts: 42,
			TopThemes:  []domain.ThemeCount{{Theme: "旅行", Count: 5}},
			Sentiment:  domain.Sentiment{Positive: 60, Neutral: 30, Negative: 10},
			Highlights: []string{"第一次看到极光"},
		},
		Drafts: domain.Drafts{Warm: "温暖文案", Funny: "搞笑文案", Minimal: "极简文案"},
	}
	result.Normalise()
	return result
}

// setupTestServices installs mock services and returns a cleanup that
// restores the previous ones.
func setupTestServices() func() {
	oldReview := reviewService
	oldLocations := locationsService
	oldCover := coverService
	oldCaption := captionService
	oldSettings := settingsService

	reviewService = &mockReviewService{}
	locationsService = &mockLocationLookupService{}
	coverService = &mockCoverService{}
	captionService = &mockCaptionService{}
	settingsService = newMockSettingsService()

	return func() {
		reviewService = oldReview
		locationsService = oldLocations
		coverService = oldCover
		captionService = oldCaption
		settingsService = oldSettings
	}
}
