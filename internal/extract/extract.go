package extract

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"discovery-backend/internal/shared/metrics"
)

// Extract converts raw file bytes and a declared extension into reviewable
// plain text. It never fails: any internal error degrades to a descriptive
// placeholder so ingestion is never blocked by a bad file.
func Extract(data []byte, ext string, title string) string {
	start := metrics.NowMillis()
	defer func() {
		metrics.IncExtraction()
		metrics.ObserveExtractionDurationMs(metrics.NowMillis() - start)
	}()

	text := sanitizeText(extractByType(data, ext, title))
	if strings.TrimSpace(text) == "" {
		metrics.IncExtractionDegraded()
		return fmt.Sprintf("[No reviewable text could be extracted from %q. Review the original file.]", title)
	}
	return text
}

func extractByType(data []byte, ext string, title string) string {
	switch normalizeExt(ext) {
	case "txt", "csv":
		return extractPlainText(data, title)
	case "docx":
		return extractWordXML(data, title)
	case "doc":
		// Legacy binary Word is never parsed.
		return fmt.Sprintf("[Legacy Word document %q cannot be previewed as text. View the original file.]", title)
	case "xlsx", "xls":
		return fmt.Sprintf("[Spreadsheet %q is not converted to text. Review the original file.]", title)
	case "pptx", "ppt":
		return fmt.Sprintf("[Presentation %q is not converted to text. Review the original file.]", title)
	case "pdf":
		return extractPDF(data, title)
	default:
		return extractUnknown(data, title)
	}
}

func extractPlainText(data []byte, title string) string {
	if !utf8.Valid(data) {
		metrics.IncExtractionDegraded()
		return fmt.Sprintf("[%q could not be decoded as text. Try uploading a different format.]", title)
	}
	return string(data)
}

func extractUnknown(data []byte, title string) string {
	if bytes.IndexByte(data, 0) >= 0 {
		metrics.IncExtractionDegraded()
		return fmt.Sprintf("[Binary file %q cannot be displayed as text. View the original file.]", title)
	}
	return string(data)
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(ext, ".")))
}
