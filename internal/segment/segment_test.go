package segment

import (
	"errors"
	"strings"
	"testing"

	"github.com/dgallion1/chunklens/internal/heading"
)

func TestSplit_Partition(t *testing.T) {
	text := "intro text\n# A\ncontent a\n## B\ncontent b\n# C\ncontent c\n"
	bs := []heading.Boundary{
		{Level: 1, Offset: strings.Index(text, "# A"), Title: "A"},
		{Level: 2, Offset: strings.Index(text, "## B"), Title: "B"},
		{Level: 1, Offset: strings.Index(text, "# C"), Title: "C"},
	}

	chunks, err := Split(text, bs, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %d", len(chunks))
	}

	var rebuilt strings.Builder
	for i, c := range chunks {
		if c.ID != i {
			t.Errorf("chunk %d: expected id %d, got %d", i, i, c.ID)
		}
		rebuilt.WriteString(c.Content)
	}
	if rebuilt.String() != text {
		t.Errorf("concatenated chunks do not reproduce the document:\n%q\nvs\n%q", rebuilt.String(), text)
	}

	wantLevels := []int{0, 1, 2, 1}
	for i, c := range chunks {
		if c.HeadingLevel != wantLevels[i] {
			t.Errorf("chunk %d: expected level %d, got %d", i, wantLevels[i], c.HeadingLevel)
		}
	}
}

func TestSplit_LeadChunkOnlyWhenNonEmpty(t *testing.T) {
	text := "# A\ncontent\n"
	bs := []heading.Boundary{{Level: 1, Offset: 0, Title: "A"}}

	chunks, err := Split(text, bs, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk (no empty lead), got %d", len(chunks))
	}
	if chunks[0].HeadingLevel != 1 {
		t.Errorf("expected level 1, got %d", chunks[0].HeadingLevel)
	}
}

func TestSplit_NoBoundaries(t *testing.T) {
	chunks, err := Split("plain text with no headings", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].HeadingLevel != 0 {
		t.Errorf("expected level 0 for headingless document, got %d", chunks[0].HeadingLevel)
	}
	if chunks[0].Type != TypeMain {
		t.Errorf("expected default type %q, got %q", TypeMain, chunks[0].Type)
	}
}

func TestSplit_EmptyDocument(t *testing.T) {
	chunks, err := Split("", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("expected 0 chunks for empty document, got %d", len(chunks))
	}
}

func TestSplit_MergesSameOffsetKeepingLast(t *testing.T) {
	text := "aaabbbccc"
	bs := []heading.Boundary{
		{Level: 1, Offset: 3, Title: "first"},
		{Level: 2, Offset: 3, Title: "second"},
		{Level: 3, Offset: 6, Title: "third"},
	}

	chunks, err := Split(text, bs, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if chunks[1].HeadingLevel != 2 || chunks[1].Heading != "second" {
		t.Errorf("merged boundary: expected level 2 %q, got level %d %q",
			"second", chunks[1].HeadingLevel, chunks[1].Heading)
	}
	if chunks[1].Content != "bbb" {
		t.Errorf("expected content %q, got %q", "bbb", chunks[1].Content)
	}
}

func TestSplit_MalformedBoundary(t *testing.T) {
	text := "short"
	for _, offset := range []int{-1, 6, 100} {
		_, err := Split(text, []heading.Boundary{{Level: 1, Offset: offset}}, nil)
		if err == nil {
			t.Fatalf("offset %d: expected error, got none", offset)
		}
		var mbe *MalformedBoundaryError
		if !errors.As(err, &mbe) {
			t.Errorf("offset %d: expected *MalformedBoundaryError, got %T", offset, err)
		}
	}

	// Offset at exactly len(text) is within range.
	if _, err := Split(text, []heading.Boundary{{Level: 1, Offset: 5}}, nil); err != nil {
		t.Errorf("offset == len: unexpected error: %v", err)
	}
}

func TestSplit_Breadcrumbs(t *testing.T) {
	text := "# A\na\n## B\nb\n### C\nc\n## D\nd\n# E\ne\n"
	bs := []heading.Boundary{
		{Level: 1, Offset: strings.Index(text, "# A"), Title: "A"},
		{Level: 2, Offset: strings.Index(text, "## B"), Title: "B"},
		{Level: 3, Offset: strings.Index(text, "### C"), Title: "C"},
		{Level: 2, Offset: strings.Index(text, "## D"), Title: "D"},
		{Level: 1, Offset: strings.Index(text, "# E"), Title: "E"},
	}

	chunks, err := Split(text, bs, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := [][]string{
		{"A"},
		{"A", "B"},
		{"A", "B", "C"},
		{"A", "D"},
		{"E"},
	}
	if len(chunks) != len(want) {
		t.Fatalf("expected %d chunks, got %d", len(want), len(chunks))
	}
	for i, c := range chunks {
		if strings.Join(c.Path, ">") != strings.Join(want[i], ">") {
			t.Errorf("chunk %d: expected path %v, got %v", i, want[i], c.Path)
		}
	}
}

func TestSplit_UnknownTypeNormalizedToOther(t *testing.T) {
	classifier := ClassifierFunc(func(string) Type { return Type("tpyo") })
	chunks, err := Split("some text", nil, classifier)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Type != TypeOther {
		t.Errorf("expected unknown type normalized to %q, got %q", TypeOther, chunks[0].Type)
	}
}

func TestSizeClassifier(t *testing.T) {
	c := SizeClassifier(3, nil)

	if got := c.Classify("one two three four five"); got != TypeSub {
		t.Errorf("oversized span: expected %q, got %q", TypeSub, got)
	}
	if got := c.Classify("one two"); got != TypeMain {
		t.Errorf("small span: expected %q, got %q", TypeMain, got)
	}

	// Spans under the limit fall through to the inner classifier.
	inner := SizeClassifier(100, MarkupClassifier())
	if got := inner.Classify("```\ncode here\n```"); got != TypeCode {
		t.Errorf("expected inner classifier to run, got %q", got)
	}

	// A zero limit disables the size check entirely.
	if got := SizeClassifier(0, nil).Classify("one two three four five"); got != TypeMain {
		t.Errorf("zero limit: expected %q, got %q", TypeMain, got)
	}
}

func TestMarkupClassifier(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Type
	}{
		{
			name:    "prose",
			content: "Some regular text.\n\nMore prose here.\n",
			want:    TypeMain,
		},
		{
			name:    "code fence",
			content: "```go\nfunc main() {}\nvar x = 1\n```\n",
			want:    TypeCode,
		},
		{
			name:    "table",
			content: "| a | b |\n| - | - |\n| 1 | 2 |\n",
			want:    TypeTable,
		},
		{
			name:    "empty",
			content: "",
			want:    TypeMain,
		},
	}

	c := MarkupClassifier()
	for _, tt := range tests {
		if got := c.Classify(tt.content); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}
