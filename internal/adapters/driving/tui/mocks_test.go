package tui

import (
	"context"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
	"github.com/weyear-labs/weyear-cli/internal/core/ports/driving"
)

// MockReviewService is a function-field mock of driving.ReviewService.
type MockReviewService struct {
	AnalyzeFunc func(ctx context.Context, moments []domain.Moment, status driving.StatusFunc) (*domain.AnalysisResult, error)
}

func (m *MockReviewService) Analyze(
	ctx context.Context,
	moments []domain.Moment,
	status driving.StatusFunc,
) (*domain.AnalysisResult, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, moments, status)
	}
	return &domain.AnalysisResult{}, nil
}

// MockLocationLookupService is a function-field mock of
// driving.LocationLookupService.
type MockLocationLookupService struct {
	LookupFunc func(ctx context.Context, names []string) []domain.LocationInfo
}

func (m *MockLocationLookupService) Lookup(ctx context.Context, names []string) []domain.LocationInfo {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, names)
	}
	return nil
}

// MockCoverService is a function-field mock of driving.CoverService.
type MockCoverService struct {
	GenerateFunc  func(ctx context.Context, prompt string, size domain.ImageSize) (string, error)
	ExportPNGFunc func(dataURI, path string) error
}

func (m *MockCoverService) Generate(ctx context.Context, prompt string, size domain.ImageSize) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, size)
	}
	return "data:image/png;base64,AAAA", nil
}

func (m *MockCoverService) ExportPNG(dataURI, path string) error {
	if m.ExportPNGFunc != nil {
		return m.ExportPNGFunc(dataURI, path)
	}
	return nil
}

// MockCaptionService is a function-field mock of driving.CaptionService.
type MockCaptionService struct {
	AssembleFunc        func(result *domain.AnalysisResult, style domain.DraftStyle, userSummary, userGoal string) string
	CopyToClipboardFunc func(ctx context.Context, text string) error
}

func (m *MockCaptionService) Assemble(
	result *domain.AnalysisResult,
	style domain.DraftStyle,
	userSummary, userGoal string,
) string {
	if m.AssembleFunc != nil {
		return m.AssembleFunc(result, style, userSummary, userGoal)
	}
	return ""
}

func (m *MockCaptionService) CopyToClipboard(ctx context.Context, text string) error {
	if m.CopyToClipboardFunc != nil {
		return m.CopyToClipboardFunc(ctx, text)
	}
	return nil
}

// MockSettingsService is a function-field mock of driving.SettingsService.
type MockSettingsService struct {
	GetFunc func() (*domain.AppSettings, error)
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc()
	}
	defaults := domain.DefaultAppSettings()
	return &defaults, nil
}

func (m *MockSettingsService) Save(_ *domain.AppSettings) error { return nil }
func (m *MockSettingsService) APIKey() string                   { return "" }
func (m *MockSettingsService) SetAPIKey(_ string) error         { return nil }
