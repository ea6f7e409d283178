package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
}

func TestTUICmd_Long_DocumentsControls(t *testing.T) {
	assert.Contains(t, tuiCmd.Long, "ctrl+s")
	assert.Contains(t, tuiCmd.Long, "ctrl+g")
	assert.Contains(t, tuiCmd.Long, "ctrl+y")
	assert.Contains(t, tuiCmd.Long, "ctrl+r")
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "weyear", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "tui")
	assert.Contains(t, commandNames, "analyze")
	assert.Contains(t, commandNames, "cover")
	assert.Contains(t, commandNames, "settings")
	assert.Contains(t, commandNames, "version")
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	assert.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
}
