package heading

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Boundary marks the start of a document section at a given nesting level.
// Offset is the byte offset of the first character of the heading's line.
type Boundary struct {
	Level  int    `json:"level"`
	Offset int    `json:"offset"`
	Title  string `json:"title"`
}

// ExtractBoundaries parses markdown and returns the ordered heading
// boundaries. Levels are recorded as written; nesting is not enforced.
// Text with no recognizable headings yields an empty slice.
func ExtractBoundaries(src []byte) []Boundary {
	if len(src) == 0 {
		return nil
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var boundaries []Boundary
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		// A heading with no text line has no position to anchor a
		// boundary on; it opens no section.
		if h.Lines().Len() == 0 {
			return ast.WalkSkipChildren, nil
		}
		seg := h.Lines().At(0)
		boundaries = append(boundaries, Boundary{
			Level:  h.Level,
			Offset: lineStart(src, seg.Start),
			Title:  string(h.Text(src)),
		})
		return ast.WalkSkipChildren, nil
	})

	return boundaries
}

// lineStart rewinds a byte offset to the start of its line. Goldmark line
// segments begin after the heading marker; the boundary must cover the
// marker too so that chunks partition the source exactly.
func lineStart(src []byte, offset int) int {
	if offset > len(src) {
		offset = len(src)
	}
	nl := bytes.LastIndexByte(src[:offset], '\n')
	return nl + 1
}
