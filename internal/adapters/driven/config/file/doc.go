// Package file provides file-based configuration adapters: a TOML config
// store and a user-editable prompt store, both rooted in the weyear
// config directory (~/.weyear by default).
package file
