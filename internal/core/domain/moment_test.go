package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRawMoment(t *testing.T) {
	moment := NewRawMoment("一整年的流水账")

	assert.Equal(t, SentinelMomentID, moment.ID)
	assert.Equal(t, SentinelMomentDate, moment.Date)
	assert.Equal(t, "一整年的流水账", moment.Content)
	assert.True(t, moment.IsSentinel())
}

func TestMoment_IsSentinel(t *testing.T) {
	regular := Moment{ID: "abc-123", Content: "去爬山"}
	assert.False(t, regular.IsSentinel())
}

func TestImageSize_IsValid(t *testing.T) {
	for _, size := range AllImageSizes() {
		assert.True(t, size.IsValid())
	}
	assert.False(t, ImageSize("8K").IsValid())
	assert.False(t, ImageSize("").IsValid())
	assert.False(t, ImageSize("2k").IsValid())
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "import", StepImport.String())
	assert.Equal(t, "final_edit", StepFinalEdit.String())
	assert.Equal(t, "unknown", Step(99).String())
}

func TestStep_IsValid(t *testing.T) {
	assert.True(t, StepImport.IsValid())
	assert.True(t, StepFinalEdit.IsValid())
	assert.False(t, Step(-1).IsValid())
	assert.False(t, Step(6).IsValid())
}
