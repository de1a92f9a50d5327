//go:build darwin
// +build darwin

package logger

import (
	"os"

	"golang.org/x/sys/unix"
)

// GetTerminalInfo asks the kernel whether file is an interactive terminal
// and, if so, whether the user has opted out of color via $NO_COLOR.
func GetTerminalInfo(file *os.File) (info TerminalInfo) {
	fd := file.Fd()
	if _, err := unix.IoctlGetTermios(int(fd), unix.TIOCGETA); err == nil {
		info.IsTTY = true
		info.UseColorEscapes = os.Getenv("NO_COLOR") == ""
	}
	return
}
