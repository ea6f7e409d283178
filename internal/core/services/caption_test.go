package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
)

func TestCaptionService_Assemble(t *testing.T) {
	service := NewCaptionService()
	result := &domain.AnalysisResult{
		Drafts: domain.Drafts{
			Warm:    "这一年走了很多路。",
			Funny:   "摆烂也是一种坚持。",
			Minimal: "🏔️🎉📷",
		},
	}

	caption := service.Assemble(result, domain.DraftWarm, "值得", "去冰岛")

	expected := "这一年走了很多路。\n\n💬 我这一句：值得\n🎯 明年想做：去冰岛\n\n#WeYear年终总结"
	assert.Equal(t, expected, caption)
}

func TestCaptionService_Assemble_StyleSelection(t *testing.T) {
	service := NewCaptionService()
	result := &domain.AnalysisResult{
		Drafts: domain.Drafts{Warm: "w", Funny: "f", Minimal: "m"},
	}

	tests := []struct {
		style domain.DraftStyle
		draft string
	}{
		{domain.DraftWarm, "w"},
		{domain.DraftFunny, "f"},
		{domain.DraftMinimal, "m"},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			caption := service.Assemble(result, tt.style, "s", "g")
			assert.Contains(t, caption, tt.draft)
		})
	}
}

func TestCaptionService_Assemble_NilResult(t *testing.T) {
	service := NewCaptionService()

	caption := service.Assemble(nil, domain.DraftWarm, "", "")

	assert.Empty(t, caption)
}
