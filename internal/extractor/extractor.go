// Package extractor abstracts the PDF-to-text layout extraction that the
// statement pipeline consumes as a black box.
package extractor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// TextExtractor turns one statement file into a single linearized,
// whitespace-sensitive text document.
type TextExtractor interface {
	// ExtractText extracts text content from the file at the given path.
	ExtractText(path string) (string, error)
}

// PdftotextExtractor implements TextExtractor with the pdftotext command in
// layout mode. pdftotext exposes no character/word/line margin tuning; the
// -layout flag is the whole reconstruction contract. Files already holding
// extracted text (.txt) are read directly, which also serves test fixtures.
type PdftotextExtractor struct{}

// NewPdftotextExtractor creates a pdftotext-backed extractor.
func NewPdftotextExtractor() *PdftotextExtractor {
	return &PdftotextExtractor{}
}

// ExtractText extracts text from a PDF statement, or reads a .txt statement
// dump as-is.
func (e *PdftotextExtractor) ExtractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("error reading text statement: %w", err)
		}
		return string(data), nil
	case ".pdf":
		return e.extractPDF(path)
	default:
		return "", fmt.Errorf("unsupported statement file extension: %s", filepath.Ext(path))
	}
}

func (e *PdftotextExtractor) extractPDF(path string) (string, error) {
	tempFile, err := os.CreateTemp("", "*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary text file: %w", err)
	}
	tempPath := tempFile.Name()
	if err := tempFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temporary text file: %w", err)
	}
	defer func() {
		_ = os.Remove(tempPath)
	}()

	// Layout mode keeps each statement row on one reconstructed line.
	cmd := exec.Command("pdftotext", "-layout", path, tempPath)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("error running pdftotext: %w", err)
	}

	output, err := os.ReadFile(tempPath)
	if err != nil {
		return "", fmt.Errorf("error reading extracted text: %w", err)
	}
	return string(output), nil
}

// MockExtractor implements TextExtractor for testing purposes. It returns
// predefined text instead of extracting from a file.
type MockExtractor struct {
	MockText string
	MockErr  error
}

// NewMockExtractor creates a MockExtractor with the given canned result.
func NewMockExtractor(text string, err error) *MockExtractor {
	return &MockExtractor{MockText: text, MockErr: err}
}

// ExtractText returns the predefined text or error.
func (e *MockExtractor) ExtractText(string) (string, error) {
	if e.MockErr != nil {
		return "", e.MockErr
	}
	return e.MockText, nil
}
