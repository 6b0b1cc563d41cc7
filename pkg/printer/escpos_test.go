package printer

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDocumentLineFeed(t *testing.T) {
	doc := NewDocument(32)
	before := len(doc.Bytes())

	doc.LineFeed()

	data := doc.Bytes()
	if len(data) != before+1 {
		t.Fatalf("expected one byte appended, got %d", len(data)-before)
	}
	if data[len(data)-1] != 0x0A {
		t.Errorf("expected line feed byte, got 0x%02X", data[len(data)-1])
	}
}

func TestDocumentFeedLines(t *testing.T) {
	doc := NewDocument(32)
	before := len(doc.Bytes())

	doc.FeedLines(3)

	if got := len(doc.Bytes()) - before; got != 3 {
		t.Errorf("expected 3 bytes appended, got %d", got)
	}
}

func TestKeyValuePadsByRunes(t *testing.T) {
	doc := NewDocument(32)
	doc.KeyValue("TOTAL:", "৳507.50")

	data := doc.Bytes()
	start := bytes.IndexByte(data, 'T')
	end := bytes.LastIndexByte(data, 0x0A)
	line := string(data[start:end])

	if got := utf8.RuneCountInString(line); got != 32 {
		t.Errorf("expected a 32-rune line, got %d (%q)", got, line)
	}
	if !strings.HasSuffix(line, "৳507.50") {
		t.Errorf("value not flushed right: %q", line)
	}
}

func TestItemLineFormat(t *testing.T) {
	doc := NewDocument(32)
	doc.ItemLine(2, "Chicken Biriyani", "360.00")

	line := string(doc.Bytes())
	if !strings.Contains(line, "2x Chicken Biriyani") {
		t.Errorf("missing quantity prefix: %q", line)
	}
	if !strings.Contains(line, "360.00") {
		t.Errorf("missing line total: %q", line)
	}
}

func TestSeparatorSpansWidth(t *testing.T) {
	doc := NewDocument(32)
	doc.Separator('-')

	if !bytes.Contains(doc.Bytes(), []byte(strings.Repeat("-", 32))) {
		t.Error("separator does not span the print width")
	}
}
