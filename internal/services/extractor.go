package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// TextExtractor turns an uploaded document into plain text. Extraction is
// deliberately permissive: unsupported formats and unreadable files yield
// an empty string, never an error, so a bad document flows through scoring
// as a low score instead of failing the batch item.
type TextExtractor interface {
	Extract(filePath string) string
}

type textExtractor struct {
	logger *zap.Logger
}

func NewTextExtractor(logger *zap.Logger) TextExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &textExtractor{logger: logger}
}

func (t *textExtractor) Extract(filePath string) string {
	var (
		text string
		err  error
	)

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		text, err = extractPDF(filePath)
	case ".docx":
		text, err = extractDocx(filePath)
	default:
		t.logger.Warn("unsupported document format, treating as empty",
			zap.String("path", filePath),
		)
		return ""
	}

	if err != nil {
		t.logger.Warn("text extraction failed, treating as empty",
			zap.String("path", filePath),
			zap.Error(err),
		)
		return ""
	}

	return cleanText(text)
}

func extractPDF(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}

func extractDocx(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	text, _, err := docconv.ConvertDocx(f)
	if err != nil {
		return "", fmt.Errorf("failed to convert docx: %w", err)
	}

	return text, nil
}

// cleanText normalizes extracted text: trims each line and drops blank ones.
func cleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
