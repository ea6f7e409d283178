package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
	"github.com/weyear-labs/weyear-cli/internal/core/ports/driven"
)

// Ensure AnalysisClient implements the interface.
var _ driven.AnalysisService = (*AnalysisClient)(nil)

// Analysis request tuning.
const (
	// maxPromptChars caps the journal text embedded in the instruction
	// template.
	maxPromptChars = 100000

	// maxThinkingBudget is the endpoint's maximum thinking budget. Set
	// to the maximum so the model reconstructs the timeline logically
	// before emitting output.
	maxThinkingBudget = 32768
)

// defaultAnalysisPrompt is the fallback instruction template when no
// PromptStore is configured. It expects a %s placeholder for the
// journal text.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
const defaultAnalysisPrompt = `你是一位专业的传记作家和数据分析师。
用户提供了一段**“年度记忆碎片”**。这段文本可能是流水账、零散的关键词，或者是复制粘贴的聊天记录，甚至可能没有明确的日期。

**你的核心任务：**
1. **重构时间线**：仔细阅读文本，根据上下文（如“春节”、“夏天”、“十一假期”、“下雪了”）推断事件发生的月份。如果完全无法推断，请根据事件的逻辑顺序均匀分布到全年。
2. **提取意义**：从碎片中挖掘出用户这一年的核心主题（是奋斗的一年？还是旅行的一年？）。
3. **生成年报**：基于你的理解，补全缺失的细节，生成一份结构化的年度总结数据。

**输入数据**:
"""
%s
"""

请执行以下任务并严格按照 JSON 格式返回（所有返回的文本内容使用简体中文）：

1. **统计**:
   - totalPosts: 根据提到的事件数量估算一个“动态数”。
   - monthlyActivity: 务必生成 12 个月的数据。如果没有提及某个月，根据上下文逻辑适当填充低数值（0-2），提及了大事的月份填充高数值。
   - topThemes: 总结 3 个主要生活主题（如：职场成长、探索世界、小确幸）。
2. **情感分析**: 综合评估这一年的整体基调。
3. **高光时刻**: 提取或**总结**出 3-5 个具体的关键事件。如果原文很短，请适当润色使其看起来像一个完整的事件（例如原文“去爬山”，润色为“征服了一座高山，看到了云海”）。
4. **足迹**: 提取所有地名。如果没提到，可以为空数组。
5. **文案草稿**:
   - 基于这些记忆写 3 个版本的文案。请务必结合用户输入的内容细节，不要写空话。
   - **温暖走心版**: 侧重于感悟和成长。
   - **幽默自嘲版**: 哪怕用户过得很惨，也要用幽默的方式说出来。
   - **极简清单版**: 用 Emoji 列出成就。

请确保返回的是合法的 JSON。`

// AnalysisClient issues the single structured-output analysis request.
// Stateless; owns no retry logic.
type AnalysisClient struct {
	client      *Client
	model       string
	promptStore driven.PromptStore
}

// NewAnalysisClient creates a new analysis client.
func NewAnalysisClient(client *Client, model string) *AnalysisClient {
	if model == "" {
		model = domain.DefaultAnalysisModel
	}
	return &AnalysisClient{client: client, model: model}
}

// ModelName returns the analysis model identifier.
func (a *AnalysisClient) ModelName() string {
	return a.model
}

// SetPromptStore sets the prompt store for loading customisable prompts.
// If not set, the client uses the hardcoded default prompt.
func (a *AnalysisClient) SetPromptStore(store driven.PromptStore) {
	a.promptStore = store
}

// Analyze sends the moments to the remote model with a strict response
// schema and deserialises the returned JSON into an AnalysisResult.
// The result is passed through as deserialised; shape enforcement is the
// caller's responsibility.
func (a *AnalysisClient) Analyze(ctx context.Context, moments []domain.Moment) (*domain.AnalysisResult, error) {
	if len(moments) == 0 {
		return nil, domain.ErrEmptyInput
	}

	rawInput := flattenMoments(moments)
	promptTemplate := a.loadPrompt()
	prompt := fmt.Sprintf(promptTemplate, truncate(rawInput, maxPromptChars))

	resp, err := a.client.generateContent(ctx, a.model, generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   analysisSchema(),
			ThinkingConfig:   &thinkingConfig{ThinkingBudget: maxThinkingBudget},
		},
	})
	if err != nil {
		return nil, err
	}

	text := resp.firstText()
	if text == "" {
		return nil, domain.ErrNoAnalysis
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	return &result, nil
}

// flattenMoments normalises the input for the prompt body. A single
// sentinel moment is used verbatim; the legacy multi-moment path
// serialises each moment as one "[date] @location: content" line.
func flattenMoments(moments []domain.Moment) string {
	if len(moments) == 1 && moments[0].IsSentinel() {
		return moments[0].Content
	}

	lines := make([]string, 0, len(moments))
	for _, m := range moments {
		location := ""
		if m.Location != "" {
			location = "@" + m.Location + " "
		}
		lines = append(lines, fmt.Sprintf("[%s] %s: %s", m.Date, location, m.Content))
	}
	return strings.Join(lines, "\n")
}

// truncate caps s at n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// loadPrompt loads the analysis template from the store, falling back to
// the default if unavailable.
func (a *AnalysisClient) loadPrompt() string {
	if a.promptStore == nil {
		return defaultAnalysisPrompt
	}
	prompt, err := a.promptStore.Load(driven.PromptYearAnalysis)
	if err != nil {
		return defaultAnalysisPrompt
	}
	return prompt
}

// analysisSchema is the strict output schema the remote model must honour.
// It mirrors domain.AnalysisResult field for field.
func analysisSchema() *schema {
	return &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"summary": {
				Type: "OBJECT",
				Properties: map[string]*schema{
					"totalPosts": {Type: "INTEGER"},
					"topThemes": {
						Type: "ARRAY",
						Items: &schema{
							Type: "OBJECT",
							Properties: map[string]*schema{
								"theme": {Type: "STRING"},
								"count": {Type: "INTEGER"},
							},
						},
					},
					"monthlyActivity": {
						Type: "ARRAY",
						Items: &schema{
							Type: "OBJECT",
							Properties: map[string]*schema{
								"month": {Type: "STRING"},
								"count": {Type: "INTEGER"},
							},
						},
					},
					"sentiment": {
						Type: "OBJECT",
						Properties: map[string]*schema{
							"positive": {Type: "NUMBER"},
							"neutral":  {Type: "NUMBER"},
							"negative": {Type: "NUMBER"},
						},
					},
					"highlights": {Type: "ARRAY", Items: &schema{Type: "STRING"}},
					"locations":  {Type: "ARRAY", Items: &schema{Type: "STRING"}},
				},
			},
			"drafts": {
				Type: "OBJECT",
				Properties: map[string]*schema{
					"warm":    {Type: "STRING"},
					"funny":   {Type: "STRING"},
					"minimal": {Type: "STRING"},
				},
			},
		},
	}
}
