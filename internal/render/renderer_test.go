package render

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
)

func TestPDFContainsTitleAndBody(t *testing.T) {
	data, err := PDF(Document{
		Title: "Jane Doe",
		Body:  "- Operated delivery vehicles across regional routes\n- Managed daily cash transactions",
	})
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF magic bytes, got %q", data[:8])
	}

	text := plainText(t, data)
	if !strings.Contains(text, "Jane Doe") {
		t.Fatalf("expected title in rendered text, got %q", text)
	}
	if !strings.Contains(text, "Operated delivery vehicles") {
		t.Fatalf("expected body line in rendered text, got %q", text)
	}
}

func TestPDFPaginatesLongBody(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 120; i++ {
		sb.WriteString("- Delivered measurable results under tight deadlines\n")
	}
	data, err := PDF(Document{Title: "Jane Doe", Body: sb.String()})
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("pdf.NewReader: %v", err)
	}
	if reader.NumPage() < 2 {
		t.Fatalf("expected overflow onto a second page, got %d page(s)", reader.NumPage())
	}
}

func TestPDFBlankLinesDoNotError(t *testing.T) {
	if _, err := PDF(Document{Title: "Jane Doe", Body: "first\n\n\nsecond"}); err != nil {
		t.Fatalf("PDF: %v", err)
	}
}

func plainText(t *testing.T, data []byte) string {
	t.Helper()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("pdf.NewReader: %v", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		t.Fatalf("GetPlainText: %v", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		t.Fatalf("read plain text: %v", err)
	}
	return buf.String()
}
