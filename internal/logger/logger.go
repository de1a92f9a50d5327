// Package logger implements the compiler's diagnostics channel: debug,
// warning, and error messages, each carrying a span (file, line, column,
// byte range) so that messages can point at source the way clang does.
package logger

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Kind uint8

const (
	Error Kind = iota
	Warning
	Debug
)

func (kind Kind) String() string {
	switch kind {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "debug"
	}
}

// Loc is the 0-based byte offset of a location from the start of the file.
type Loc struct {
	Start int32
}

// Range is a span of bytes, used to underline the offending source text.
type Range struct {
	Loc Loc
	Len int32
}

func (r Range) End() int32 {
	return r.Loc.Start + r.Len
}

// Source is one file's worth of text plus the identity used in messages.
type Source struct {
	PrettyPath string
	Contents   string
}

func (s *Source) TextForRange(r Range) string {
	end := r.Loc.Start + r.Len
	if end > int32(len(s.Contents)) {
		end = int32(len(s.Contents))
	}
	return s.Contents[r.Loc.Start:end]
}

// computeLineAndColumn converts a byte offset into a 1-based line number, a
// 0-based byte column, and the text of the containing line.
func computeLineAndColumn(contents string, offset int32) (line int, column int, lineText string) {
	if offset < 0 {
		offset = 0
	}
	if int(offset) > len(contents) {
		offset = int32(len(contents))
	}
	line = 1
	lineStart := 0
	for i := 0; i < int(offset); i++ {
		if contents[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := len(contents)
	if idx := strings.IndexByte(contents[lineStart:], '\n'); idx >= 0 {
		lineEnd = lineStart + idx
	}
	lineText = contents[lineStart:lineEnd]
	column = int(offset) - lineStart
	return
}

// TerminalInfo reports whether diagnostics are being written to an
// interactive terminal that can render ANSI color escapes.
type TerminalInfo struct {
	IsTTY           bool
	UseColorEscapes bool
}

type MsgLocation struct {
	File       string
	Line       int // 1-based
	Column     int // 0-based, in bytes
	LineText   string
	Suggestion string
}

type Msg struct {
	Kind     Kind
	Text     string
	Location *MsgLocation
}

// String renders a message as "file:line:column: kind: text", followed by
// the source line and a caret underneath the offending span.
func (msg Msg) String() string {
	var sb strings.Builder
	if loc := msg.Location; loc != nil {
		fmt.Fprintf(&sb, "%s:%d:%d: %s: %s\n", loc.File, loc.Line, loc.Column, msg.Kind, msg.Text)
		sb.WriteString(loc.LineText)
		sb.WriteByte('\n')
		for i := 0; i < loc.Column; i++ {
			if i < len(loc.LineText) && loc.LineText[i] == '\t' {
				sb.WriteByte('\t')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("^\n")
	} else {
		fmt.Fprintf(&sb, "%s: %s\n", msg.Kind, msg.Text)
	}
	return sb.String()
}

// StringWithColor renders a message the same way String does, but with the
// kind ("error"/"warning"/"debug") highlighted in ANSI color when info
// reports a color-capable terminal.
func (msg Msg) StringWithColor(info TerminalInfo) string {
	if !info.UseColorEscapes {
		return msg.String()
	}
	color := "\x1b[1;33m" // warning, debug: bold yellow
	if msg.Kind == Error {
		color = "\x1b[1;31m" // bold red
	}
	plain := msg.String()
	kind := msg.Kind.String()
	return strings.Replace(plain, kind+":", color+kind+"\x1b[0m:", 1)
}

func locationForRange(source *Source, r Range) *MsgLocation {
	if source == nil {
		return nil
	}
	line, column, lineText := computeLineAndColumn(source.Contents, r.Loc.Start)
	return &MsgLocation{
		File:     source.PrettyPath,
		Line:     line,
		Column:   column,
		LineText: lineText,
	}
}

// Log collects the diagnostics produced over the course of one compilation.
// NewLog tags each Log with a fresh random RunID; rendered messages do not
// include it.
type Log struct {
	RunID string
	msgs  []Msg
}

func NewLog() *Log {
	return &Log{RunID: uuid.NewString()}
}

func (log *Log) AddError(source *Source, r Range, text string) {
	log.msgs = append(log.msgs, Msg{Kind: Error, Text: text, Location: locationForRange(source, r)})
}

func (log *Log) AddWarning(source *Source, r Range, text string) {
	log.msgs = append(log.msgs, Msg{Kind: Warning, Text: text, Location: locationForRange(source, r)})
}

func (log *Log) AddDebug(source *Source, r Range, text string) {
	log.msgs = append(log.msgs, Msg{Kind: Debug, Text: text, Location: locationForRange(source, r)})
}

func (log *Log) HasErrors() bool {
	for _, msg := range log.msgs {
		if msg.Kind == Error {
			return true
		}
	}
	return false
}

func (log *Log) Msgs() []Msg {
	return log.msgs
}
