// Package scss is the library surface: compile a string or a file into
// CSS, with a writer-based variant that writes the result to an
// io.Writer. Every entry point runs
// exactly one compilation end to end — lex, parse, evaluate, print — and
// never retains state between calls: each compilation gets its own
// independent root scope.
package scss

import (
	"fmt"
	"io"

	"github.com/scssc/scssc/internal/logger"
	"github.com/scssc/scssc/internal/scssast"
	"github.com/scssc/scssc/internal/scssbuiltin"
	"github.com/scssc/scssc/internal/scssfs"
	"github.com/scssc/scssc/internal/scssparser"
	"github.com/scssc/scssc/internal/scssprinter"
)

// Options configures one compilation. The zero value is a sensible
// default: pretty-printed output, no extra load paths.
type Options struct {
	// MinifyWhitespace collapses the output onto as few lines as
	// practical, a "compact output" mode.
	MinifyWhitespace bool

	// RootDir anchors "@import" resolution when the entry source has no
	// real filesystem path of its own (e.g. CompileString).
	RootDir string
}

// Result is everything one compilation produces: the CSS text (possibly
// empty if compilation failed) and every diagnostic raised along the way,
// as logger.Msg values not yet rendered to text.
type Result struct {
	CSS      string
	Messages []logger.Msg
}

// HasErrors reports whether any message in the result is an error,
// mirroring logger.Log.HasErrors for callers who only have a Result.
func (r Result) HasErrors() bool {
	for _, m := range r.Messages {
		if m.Kind == logger.Error {
			return true
		}
	}
	return false
}

// CompileString compiles SCSS source held entirely in memory, with
// prettyPath used only for diagnostics and, through its directory, as the
// base for any relative "@import" (Options.RootDir instead, when set and
// prettyPath has no directory part).
func CompileString(source, prettyPath string, options Options) Result {
	src := &logger.Source{PrettyPath: prettyPath, Contents: source}
	return compile(src, options)
}

// CompileFile reads path fully (read-fully-then-close) and compiles it,
// resolving "@import" relative to its directory.
func CompileFile(path string, options Options) Result {
	src, err := scssfs.ReadEntry(path)
	if err != nil {
		log := logger.NewLog()
		if astErr, ok := err.(*scssast.Error); ok {
			log.AddError(nil, astErr.Span, astErr.Msg)
		} else {
			log.AddError(nil, logger.Range{}, err.Error())
		}
		return Result{Messages: log.Msgs()}
	}
	return compile(src, options)
}

// CompileFileTo compiles path and writes the resulting CSS to w,
// returning only the diagnostics. The whole CSS text is built in memory
// before it is written.
func CompileFileTo(path string, w io.Writer, options Options) ([]logger.Msg, error) {
	result := CompileFile(path, options)
	if result.CSS != "" {
		if _, err := io.WriteString(w, result.CSS); err != nil {
			return result.Messages, fmt.Errorf("writing CSS output: %w", err)
		}
	}
	return result.Messages, nil
}

func compile(src *logger.Source, options Options) Result {
	log := logger.NewLog()
	result := runCompile(src, log, options)
	return Result{CSS: result, Messages: log.Msgs()}
}

// runCompile recovers from any unexpected internal panic and turns it
// into a diagnostic instead of a Go stack trace reaching the caller.
func runCompile(src *logger.Source, log *logger.Log, options Options) (css string) {
	defer func() {
		if r := recover(); r != nil {
			log.AddError(src, logger.Range{}, fmt.Sprintf("internal error: %v", r))
			css = ""
		}
	}()

	builtins := scssbuiltin.NewRegistry()
	importer := &scssfs.Resolver{RootDir: options.RootDir}
	parser := scssparser.NewParser(src, log, builtins, importer)

	stmts, err := parser.ParseStylesheet()
	if err != nil {
		if astErr, ok := err.(*scssast.Error); ok {
			log.AddError(src, astErr.Span, astErr.Msg)
		} else {
			log.AddError(src, logger.Range{}, err.Error())
		}
		return ""
	}
	out := scssprinter.Print(stmts, scssprinter.Options{MinifyWhitespace: options.MinifyWhitespace})
	return string(out)
}
