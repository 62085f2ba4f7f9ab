package segment

import (
	"fmt"
	"sort"

	"github.com/dgallion1/chunklens/internal/heading"
)

// MalformedBoundaryError reports a heading boundary whose offset lies
// outside the document. It aborts segmentation; no partial chunk list is
// ever returned.
type MalformedBoundaryError struct {
	Offset int
	DocLen int
}

func (e *MalformedBoundaryError) Error() string {
	return fmt.Sprintf("boundary offset %d outside document of length %d", e.Offset, e.DocLen)
}

// Split divides text into chunks along heading boundaries. Each boundary
// opens a chunk that runs to the next boundary (or end of document) and
// inherits that boundary's level. Text before the first boundary becomes a
// level-0 lead chunk, emitted only when non-empty. Boundaries sharing an
// offset are merged, keeping only the last one's level and title.
func Split(text string, boundaries []heading.Boundary, classify Classifier) ([]Chunk, error) {
	for _, b := range boundaries {
		if b.Offset < 0 || b.Offset > len(text) {
			return nil, &MalformedBoundaryError{Offset: b.Offset, DocLen: len(text)}
		}
	}
	if classify == nil {
		classify = DefaultClassifier()
	}

	bs := make([]heading.Boundary, len(boundaries))
	copy(bs, boundaries)
	sort.SliceStable(bs, func(i, j int) bool { return bs[i].Offset < bs[j].Offset })
	bs = mergeSameOffset(bs)

	var chunks []Chunk
	id := 0
	emit := func(content, title string, level int, path []string) {
		chunks = append(chunks, Chunk{
			ID:           id,
			Content:      content,
			Heading:      title,
			Path:         path,
			HeadingLevel: level,
			Type:         Normalize(classify.Classify(content)),
		})
		id++
	}

	if len(bs) == 0 {
		if text != "" {
			emit(text, "", 0, nil)
		}
		return chunks, nil
	}

	if lead := text[:bs[0].Offset]; lead != "" {
		emit(lead, "", 0, nil)
	}

	// Breadcrumb stack keyed by heading level, same approach as a
	// structure-aware chunker: pop siblings and deeper levels, push self.
	type crumb struct {
		title string
		level int
	}
	var stack []crumb

	for i, b := range bs {
		end := len(text)
		if i+1 < len(bs) {
			end = bs[i+1].Offset
		}
		for len(stack) > 0 && stack[len(stack)-1].level >= b.Level {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, crumb{title: b.Title, level: b.Level})

		path := make([]string, len(stack))
		for j, c := range stack {
			path[j] = c.title
		}
		emit(text[b.Offset:end], b.Title, b.Level, path)
	}

	return chunks, nil
}

// mergeSameOffset collapses boundaries at identical offsets, keeping the
// last. Degenerate markup can place two headings at one position; silently
// emitting a zero-width chunk would break the partition invariant.
func mergeSameOffset(bs []heading.Boundary) []heading.Boundary {
	out := bs[:0]
	for _, b := range bs {
		if len(out) > 0 && out[len(out)-1].Offset == b.Offset {
			out[len(out)-1] = b
			continue
		}
		out = append(out, b)
	}
	return out
}
