package analyze

import (
	"context"

	"github.com/dgallion1/chunklens/internal/heading"
	"github.com/dgallion1/chunklens/internal/recommend"
	"github.com/dgallion1/chunklens/internal/segment"
	"github.com/dgallion1/chunklens/internal/size"
	"github.com/dgallion1/chunklens/internal/stats"
)

// Options configures one analysis run. Zero values select the defaults:
// whitespace tokenizer, main_chunk-only classifier, stock thresholds,
// serial sizing.
type Options struct {
	Tokenizer  size.Tokenizer
	Classifier segment.Classifier
	Thresholds recommend.Thresholds
	// Workers bounds sizer parallelism. Values below 2 run serially;
	// output is identical either way.
	Workers int
}

// Result is the structured output one run produces, the exact shape the
// report renderer consumes. It is plain data: JSON-serializable, no
// references back into the pipeline.
type Result struct {
	TotalChunks      int                              `json:"total_chunks"`
	TotalTokens      int                              `json:"total_tokens"`
	UnmeasuredChunks int                              `json:"unmeasured_chunks"`
	TokenStats       stats.Summary                    `json:"token_count"`
	CharStats        stats.Summary                    `json:"content_length"`
	HeadingLevels    stats.Distribution[int]          `json:"heading_levels"`
	ChunkTypes       stats.Distribution[segment.Type] `json:"chunk_types"`
	Recommendations  []recommend.Recommendation       `json:"recommendations"`
}

// Run executes the full pipeline on one document: heading extraction,
// segmentation, sizing, aggregation, recommendation. Structural errors
// abort the run; per-chunk measurement failures are absorbed into
// UnmeasuredChunks. Cancelling ctx before the run starts abandons it;
// there are no partial results.
func Run(ctx context.Context, text string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Tokenizer == nil {
		opts.Tokenizer = size.WhitespaceTokenizer()
	}
	if opts.Classifier == nil {
		opts.Classifier = segment.DefaultClassifier()
	}
	if opts.Thresholds == (recommend.Thresholds{}) {
		opts.Thresholds = recommend.DefaultThresholds()
	}

	boundaries := heading.ExtractBoundaries([]byte(text))
	chunks, err := segment.Split(text, boundaries, opts.Classifier)
	if err != nil {
		return nil, err
	}

	if _, err := size.MeasureParallel(ctx, chunks, opts.Tokenizer, opts.Workers); err != nil {
		return nil, err
	}

	st := stats.Aggregate(chunks)

	return &Result{
		TotalChunks:      st.TotalChunks,
		TotalTokens:      st.TotalTokens,
		UnmeasuredChunks: st.Unmeasured,
		TokenStats:       st.Tokens,
		CharStats:        st.Chars,
		HeadingLevels:    st.HeadingLevels,
		ChunkTypes:       st.ChunkTypes,
		Recommendations:  recommend.Evaluate(st, opts.Thresholds),
	}, nil
}

// Chunks runs only the structural half of the pipeline, returning the
// measured chunk list without aggregation. Useful for callers that want
// the chunks themselves rather than the report.
func Chunks(ctx context.Context, text string, opts Options) ([]segment.Chunk, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Tokenizer == nil {
		opts.Tokenizer = size.WhitespaceTokenizer()
	}
	if opts.Classifier == nil {
		opts.Classifier = segment.DefaultClassifier()
	}

	boundaries := heading.ExtractBoundaries([]byte(text))
	chunks, err := segment.Split(text, boundaries, opts.Classifier)
	if err != nil {
		return nil, err
	}
	if _, err := size.MeasureParallel(ctx, chunks, opts.Tokenizer, opts.Workers); err != nil {
		return nil, err
	}
	return chunks, nil
}
