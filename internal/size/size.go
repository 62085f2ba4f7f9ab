package size

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/dgallion1/chunklens/internal/segment"
	"golang.org/x/sync/errgroup"
)

// MeasurementError records a tokenizer failure on one chunk. The chunk is
// left unmeasured and the rest of the run continues.
type MeasurementError struct {
	ChunkID int
	Err     error
}

func (e *MeasurementError) Error() string {
	return fmt.Sprintf("measuring chunk %d: %v", e.ChunkID, e.Err)
}

func (e *MeasurementError) Unwrap() error { return e.Err }

// Measure fills TokenCount and CharLength on every chunk in place.
// CharLength is the exact character (rune) count of the content, never
// approximated. Chunks whose tokenizer call fails stay Measured=false and
// are reported in the returned slice.
func Measure(chunks []segment.Chunk, tok Tokenizer) []*MeasurementError {
	if tok == nil {
		tok = WhitespaceTokenizer()
	}
	var errs []*MeasurementError
	for i := range chunks {
		if err := measureOne(&chunks[i], tok); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// MeasureParallel measures chunks across a bounded worker pool. Results are
// written by chunk index, so output is identical to Measure regardless of
// scheduling. A workers value below 2 falls back to the serial path.
func MeasureParallel(ctx context.Context, chunks []segment.Chunk, tok Tokenizer, workers int) ([]*MeasurementError, error) {
	if workers < 2 || len(chunks) < 2 {
		return Measure(chunks, tok), nil
	}
	if tok == nil {
		tok = WhitespaceTokenizer()
	}

	merrs := make([]*MeasurementError, len(chunks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range chunks {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			merrs[i] = measureOne(&chunks[i], tok)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var errs []*MeasurementError
	for _, e := range merrs {
		if e != nil {
			errs = append(errs, e)
		}
	}
	return errs, nil
}

func measureOne(c *segment.Chunk, tok Tokenizer) *MeasurementError {
	c.CharLength = utf8.RuneCountInString(c.Content)
	tokens, err := tok.Tokenize(c.Content)
	if err != nil {
		c.TokenCount = 0
		c.Measured = false
		return &MeasurementError{ChunkID: c.ID, Err: err}
	}
	c.TokenCount = len(tokens)
	c.Measured = true
	return nil
}
