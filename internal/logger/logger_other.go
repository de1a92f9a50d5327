//go:build !darwin
// +build !darwin

package logger

import "os"

// GetTerminalInfo has no portable terminal-detection path outside darwin,
// so every other platform gets plain, uncolored diagnostics.
func GetTerminalInfo(*os.File) TerminalInfo {
	return TerminalInfo{}
}
