package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestExtractUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text resume"), 0644))

	extractor := NewTextExtractor(zaptest.NewLogger(t))

	// Unsupported formats degrade to empty text, never an error.
	assert.Equal(t, "", extractor.Extract(path))
}

func TestExtractMissingFile(t *testing.T) {
	extractor := NewTextExtractor(zaptest.NewLogger(t))

	assert.Equal(t, "", extractor.Extract(filepath.Join(t.TempDir(), "missing.pdf")))
}

func TestExtractCorruptPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0644))

	extractor := NewTextExtractor(zaptest.NewLogger(t))

	assert.Equal(t, "", extractor.Extract(path))
}

func TestCleanText(t *testing.T) {
	in := "  Line one \n\n\n   Line two\t \n\n"

	assert.Equal(t, "Line one\nLine two", cleanText(in))
}
