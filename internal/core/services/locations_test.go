package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
)

// mockLocationService is a function-field mock of driven.LocationService.
type mockLocationService struct {
	enrichFn func(ctx context.Context, names []string) ([]domain.LocationInfo, error)
	calls    int
}

func (m *mockLocationService) Enrich(ctx context.Context, names []string) ([]domain.LocationInfo, error) {
	m.calls++
	if m.enrichFn != nil {
		return m.enrichFn(ctx, names)
	}
	return nil, nil
}

func TestLocationLookupService_Lookup(t *testing.T) {
	expected := []domain.LocationInfo{
		{Name: "哈尔滨冰雪大世界", URI: "https://maps.example/x", Rating: 4.6},
	}
	mock := &mockLocationService{
		enrichFn: func(_ context.Context, names []string) ([]domain.LocationInfo, error) {
			assert.Equal(t, []string{"哈尔滨"}, names)
			return expected, nil
		},
	}
	service := NewLocationLookupService(mock)

	infos := service.Lookup(context.Background(), []string{"哈尔滨"})

	assert.Equal(t, expected, infos)
}

func TestLocationLookupService_Lookup_EmptyInputShortCircuits(t *testing.T) {
	mock := &mockLocationService{}
	service := NewLocationLookupService(mock)

	infos := service.Lookup(context.Background(), nil)

	assert.Nil(t, infos)
	assert.Zero(t, mock.calls, "remote service must not be called for empty input")
}

func TestLocationLookupService_Lookup_FailureDegradesToNil(t *testing.T) {
	mock := &mockLocationService{
		enrichFn: func(_ context.Context, _ []string) ([]domain.LocationInfo, error) {
			return nil, errors.New("grounding unavailable")
		},
	}
	service := NewLocationLookupService(mock)

	infos := service.Lookup(context.Background(), []string{"上海"})

	assert.Nil(t, infos)
}

func TestLocationLookupService_Lookup_NilDrivenService(t *testing.T) {
	service := NewLocationLookupService(nil)

	infos := service.Lookup(context.Background(), []string{"上海"})

	assert.Nil(t, infos)
}
