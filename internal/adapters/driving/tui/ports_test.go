package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPorts(t *testing.T) {
	review := &MockReviewService{}
	locations := &MockLocationLookupService{}
	cover := &MockCoverService{}
	caption := &MockCaptionService{}
	settings := &MockSettingsService{}

	ports := NewPorts(review, locations, cover, caption, settings)

	require.NotNil(t, ports)
	assert.Equal(t, review, ports.Review)
	assert.Equal(t, locations, ports.Locations)
	assert.Equal(t, cover, ports.Cover)
	assert.Equal(t, caption, ports.Caption)
	assert.Equal(t, settings, ports.Settings)
}

func TestPorts_Validate_AllSet(t *testing.T) {
	ports := newTestPorts()

	err := ports.Validate()

	assert.NoError(t, err)
}

func TestPorts_Validate_OptionalPortsNil(t *testing.T) {
	ports := newTestPorts()
	ports.Locations = nil
	ports.Settings = nil

	err := ports.Validate()

	assert.NoError(t, err)
}

func TestPorts_Validate_MissingReview(t *testing.T) {
	ports := newTestPorts()
	ports.Review = nil

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingReviewService)
}

func TestPorts_Validate_MissingCover(t *testing.T) {
	ports := newTestPorts()
	ports.Cover = nil

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingCoverService)
}

func TestPorts_Validate_MissingCaption(t *testing.T) {
	ports := newTestPorts()
	ports.Caption = nil

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingCaptionService)
}
