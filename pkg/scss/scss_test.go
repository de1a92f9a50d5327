package scss

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileStringProducesCSS(t *testing.T) {
	result := CompileString("$c: red;\na { color: $c; }", "inline.scss", Options{})
	require.False(t, result.HasErrors(), "messages: %v", result.Messages)
	assert.Equal(t, "a {\n  color: red;\n}\n", result.CSS)
}

func TestCompileStringReportsResolutionErrors(t *testing.T) {
	result := CompileString("a { color: $missing; }", "inline.scss", Options{})
	assert.True(t, result.HasErrors())
	assert.Empty(t, result.CSS)
}

func TestCompileFileResolvesRelativeImports(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "_colors.scss"), []byte("$brand: blue;"), 0o644))
	entry := filepath.Join(dir, "entry.scss")
	require.NoError(t, os.WriteFile(entry, []byte("@import \"colors\";\na { color: $brand; }"), 0o644))

	result := CompileFile(entry, Options{})
	require.False(t, result.HasErrors(), "messages: %v", result.Messages)
	assert.Equal(t, "a {\n  color: blue;\n}\n", result.CSS)
}

func TestCompileFileMissingPathIsAnError(t *testing.T) {
	result := CompileFile(filepath.Join(t.TempDir(), "missing.scss"), Options{})
	assert.True(t, result.HasErrors())
}

func TestCompileFileToStreamsOutputToAWriter(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "entry.scss")
	require.NoError(t, os.WriteFile(entry, []byte("a { width: 1px + 2px; }"), 0o644))

	var buf bytes.Buffer
	msgs, err := CompileFileTo(entry, &buf, Options{})
	require.NoError(t, err)
	assert.Empty(t, msgs)
	assert.Equal(t, "a {\n  width: 3px;\n}\n", buf.String())
}

func TestCompileStringMinifyWhitespaceCollapsesOutput(t *testing.T) {
	result := CompileString("a { color: red; }", "inline.scss", Options{MinifyWhitespace: true})
	require.False(t, result.HasErrors())
	assert.NotContains(t, result.CSS, "\n  ")
}
