package extract

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"discovery-backend/internal/shared/metrics"
)

// extractWordXML pulls text from a modern XML-zip Word document using
// github.com/nguyenthenguyen/docx. Errors and empty results degrade to a
// placeholder.
func extractWordXML(data []byte, title string) string {
	if len(data) == 0 {
		return wordPlaceholder(title)
	}

	reader, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		metrics.IncExtractionDegraded()
		return wordPlaceholder(title)
	}
	defer reader.Close()

	text := stripWordXML(reader.Editable().GetContent())
	if strings.TrimSpace(text) == "" {
		metrics.IncExtractionDegraded()
		return wordPlaceholder(title)
	}
	return text
}

func wordPlaceholder(title string) string {
	return fmt.Sprintf("[Word document %q could not be converted to text. View the original file.]", title)
}

func stripWordXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
