package extract

import (
	"strings"
	"testing"
)

func TestExtractReturnsNonEmptyForEverySupportedExtension(t *testing.T) {
	// Deliberately junk payloads: extraction must degrade, never fail.
	junk := []byte{0x00, 0x01, 0xFF, 0xFE, 0x4D, 0x5A}
	exts := []string{"pdf", "docx", "doc", "msg", "eml", "txt", "xlsx", "xls", "pptx", "ppt", "csv", "zzz", ""}

	for _, ext := range exts {
		t.Run("ext="+ext, func(t *testing.T) {
			got := Extract(junk, ext, "evidence.bin")
			if strings.TrimSpace(got) == "" {
				t.Fatalf("Extract returned empty text for ext %q", ext)
			}
		})
	}
}

func TestExtractPlainTextPassthrough(t *testing.T) {
	got := Extract([]byte("Dear counsel,\nPlease find attached."), "txt", "letter.txt")
	if !strings.Contains(got, "Dear counsel,") {
		t.Fatalf("expected passthrough text, got %q", got)
	}
}

func TestExtractPlainTextInvalidUTF8(t *testing.T) {
	got := Extract([]byte{0xC3, 0x28, 0xA0, 0xA1}, "txt", "weird.txt")
	if !strings.Contains(got, "could not be decoded") {
		t.Fatalf("expected decode placeholder, got %q", got)
	}
}

func TestExtractCaseInsensitiveExtension(t *testing.T) {
	got := Extract([]byte("A,B\n1,2"), "CSV", "table.CSV")
	if !strings.Contains(got, "A,B") {
		t.Fatalf("expected csv passthrough, got %q", got)
	}
}

func TestExtractLegacyFormatsAlwaysPlaceholder(t *testing.T) {
	cases := map[string]string{
		"doc":  "original file",
		"xlsx": "not converted",
		"xls":  "not converted",
		"pptx": "not converted",
		"ppt":  "not converted",
	}
	for ext, want := range cases {
		got := Extract([]byte("anything"), ext, "file."+ext)
		if !strings.Contains(got, want) {
			t.Errorf("ext %q: expected placeholder containing %q, got %q", ext, want, got)
		}
	}
}

func TestExtractUnknownBinaryPlaceholder(t *testing.T) {
	got := Extract([]byte{'M', 'Z', 0x00, 0x90}, "exe", "tool.exe")
	if !strings.Contains(got, "Binary file") {
		t.Fatalf("expected binary placeholder, got %q", got)
	}
}

func TestExtractUnknownTextDecodes(t *testing.T) {
	got := Extract([]byte("From: jane@example.com\nSubject: Update"), "eml", "mail.eml")
	if !strings.Contains(got, "Subject: Update") {
		t.Fatalf("expected raw text decode, got %q", got)
	}
}

func TestExtractDocxGarbagePlaceholder(t *testing.T) {
	got := Extract([]byte("this is not a zip archive"), "docx", "memo.docx")
	if !strings.Contains(got, "could not be converted") {
		t.Fatalf("expected docx placeholder, got %q", got)
	}
}

func TestSanitizeTextFiltersDisallowedRunes(t *testing.T) {
	in := "plain\x00 text\twith世界 tabs"
	got := sanitizeText(in)
	if strings.ContainsRune(got, 0) {
		t.Fatalf("NUL survived sanitization: %q", got)
	}
	if strings.Contains(got, "世") {
		t.Fatalf("non-Latin rune survived sanitization: %q", got)
	}
	if !strings.Contains(got, "plain text with") {
		t.Fatalf("expected disallowed runes replaced by spaces, got %q", got)
	}
}

func TestSanitizeTextKeepsLatinAndLineBreaks(t *testing.T) {
	in := "résumé\nline two\r\n"
	if got := sanitizeText(in); got != in {
		t.Fatalf("expected Latin text untouched, got %q", got)
	}
}

func TestStripWordXML(t *testing.T) {
	raw := `<w:document><w:body><w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p><w:p><w:r><w:t>Second.</w:t></w:r></w:p></w:body></w:document>`
	got := stripWordXML(raw)
	if !strings.Contains(got, "First paragraph.") || !strings.Contains(got, "Second.") {
		t.Fatalf("expected both paragraphs, got %q", got)
	}
	if !strings.Contains(got, "\n") {
		t.Fatalf("expected paragraph break, got %q", got)
	}
}
