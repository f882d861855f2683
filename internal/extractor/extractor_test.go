package extractor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPdftotextExtractorTxtPassthrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.txt")
	content := "Relevé édité le 16/05/2020\n02/05 CB CENTRE LECLERC 14,90"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	e := NewPdftotextExtractor()
	text, err := e.ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestPdftotextExtractorUnsupportedExtension(t *testing.T) {
	e := NewPdftotextExtractor()
	_, err := e.ExtractText("statement.xml")
	assert.Error(t, err)
}

func TestMockExtractor(t *testing.T) {
	e := NewMockExtractor("canned text", nil)
	text, err := e.ExtractText("ignored.pdf")
	require.NoError(t, err)
	assert.Equal(t, "canned text", text)

	boom := errors.New("boom")
	e = NewMockExtractor("", boom)
	_, err = e.ExtractText("ignored.pdf")
	assert.ErrorIs(t, err, boom)
}
