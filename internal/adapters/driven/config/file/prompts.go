package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/weyear-labs/weyear-cli/internal/core/ports/driven"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads generative prompt templates from user-editable files
// on disk. Prompts are loaded from a configurable directory with fallback
// to embedded defaults.
//
// The store uses lazy initialisation - files are only created when first
// accessed, not in the constructor. This makes testing easier and avoids
// unexpected I/O.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// defaultPrompts contains embedded default prompts.
// These are used when user files don't exist and as the initial content
// for new files.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]string{
	driven.PromptYearAnalysis: `你是一位专业的传记作家和数据分析师。
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

请确保返回的是合法的 JSON。`,

	driven.PromptLocationQuery: `Find details for these locations mentioned in my year review: %s. Return a summary list.`,
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.weyear/prompts/.
//
// The constructor does not perform any I/O - directory creation and
// file writes happen lazily on first Load() call.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".weyear", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// On first call, initialises the prompt directory and creates default files.
// Returns cached value if available, otherwise loads from file.
// Falls back to embedded default if file doesn't exist.
func (s *PromptStore) Load(name string) (string, error) {
	// Ensure directory and defaults exist (lazy init)
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		// Fall back to embedded defaults if init failed
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	// Check cache first (read lock)
	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	// Load from file (no lock held during I/O)
	prompt, err := s.loadFromFile(name)
	if err != nil {
		// Fall back to embedded default
		if defaultPrompt, ok := defaultPrompts[name]; ok {
			return defaultPrompt, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	// Cache the result (write lock)
	// Use double-check pattern to avoid overwriting concurrent loads
	s.mu.Lock()
	if _, ok := s.cache[name]; !ok {
		s.cache[name] = prompt
	} else {
		// Another goroutine loaded it first, use their value
		prompt = s.cache[name]
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// initialise creates the prompt directory and default files.
// Called once via sync.Once on first Load().
func (s *PromptStore) initialise() {
	// Create directory
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	// Create default prompt files (only if they don't exist)
	for name, content := range defaultPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	// Create README
	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

// loadFromFile reads a prompt from disk.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	path := filepath.Join(s.promptDir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// createReadme writes a README file explaining the prompts directory.
func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil // Already exists or stat error (ignore)
	}

	content := `# WeYear Prompts

This directory contains customisable prompts used by WeYear's generative
features.

## Files

- ` + "`year_analysis.txt`" + ` - Instruction template for the year analysis
- ` + "`location_query.txt`" + ` - Query template for location grounding

## Customisation

Edit any file to customise behaviour. Changes take effect on the next
command or after restarting the TUI.

## Format Placeholders

Both templates expect a single %s placeholder: the journal text for
year_analysis, the comma-joined place names for location_query.
`

	return os.WriteFile(path, []byte(content), 0600)
}
