package stats

import (
	"math"
	"sort"

	"github.com/dgallion1/chunklens/internal/segment"
)

// Summary is a distribution summary over one numeric chunk field. When
// Count is zero the numeric fields carry no meaning; callers must check
// Empty before rendering them, never print them as real values.
type Summary struct {
	Count  int     `json:"count"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stddev"`
}

// Empty reports whether the summary was computed from zero data points.
func (s Summary) Empty() bool { return s.Count == 0 }

// Bucket is one row of a categorical distribution.
type Bucket struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Distribution maps a categorical value to its frequency. Percentages sum
// to 100 across the table (within floating-point tolerance).
type Distribution[K comparable] map[K]Bucket

// Stats is the full aggregate over one chunk list.
type Stats struct {
	TotalChunks   int                        `json:"total_chunks"`
	TotalTokens   int                        `json:"total_tokens"`
	Unmeasured    int                        `json:"unmeasured_chunks"`
	Tokens        Summary                    `json:"token_count"`
	Chars         Summary                    `json:"content_length"`
	HeadingLevels Distribution[int]          `json:"heading_levels"`
	ChunkTypes    Distribution[segment.Type] `json:"chunk_types"`
}

// Aggregate computes all summaries and distributions in one pass over the
// chunk list. Token statistics cover measured chunks only; unmeasured
// chunks are counted separately so the report never hides them as zeros.
// The chunk list is read-only here: medians sort copies.
func Aggregate(chunks []segment.Chunk) Stats {
	st := Stats{TotalChunks: len(chunks)}

	tokens := make([]int, 0, len(chunks))
	chars := make([]int, 0, len(chunks))
	levelCounts := make(map[int]int)
	typeCounts := make(map[segment.Type]int)

	for _, c := range chunks {
		chars = append(chars, c.CharLength)
		levelCounts[c.HeadingLevel]++
		typeCounts[c.Type]++
		if !c.Measured {
			st.Unmeasured++
			continue
		}
		tokens = append(tokens, c.TokenCount)
		st.TotalTokens += c.TokenCount
	}

	st.Tokens = Summarize(tokens)
	st.Chars = Summarize(chars)
	st.HeadingLevels = tabulate(levelCounts, len(chunks))
	st.ChunkTypes = tabulate(typeCounts, len(chunks))
	return st
}

// Summarize computes count/min/max/mean/median/stddev over values. The
// standard deviation is the population form (divide by count, not count-1).
// An empty input yields the explicit empty state.
func Summarize(values []int) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	var sum int
	for _, v := range values {
		sum += v
	}
	mean := float64(sum) / float64(len(values))

	var sqDev float64
	for _, v := range values {
		d := float64(v) - mean
		sqDev += d * d
	}

	return Summary{
		Count:  len(values),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   mean,
		Median: median(sorted),
		StdDev: math.Sqrt(sqDev / float64(len(values))),
	}
}

// median uses the rank-based definition: middle value for odd counts, mean
// of the two middle values for even counts. Input must be sorted.
func median(sorted []int) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2
}

func tabulate[K comparable](counts map[K]int, total int) Distribution[K] {
	d := make(Distribution[K], len(counts))
	for k, n := range counts {
		pct := 0.0
		if total > 0 {
			pct = float64(n) / float64(total) * 100
		}
		d[k] = Bucket{Count: n, Percent: pct}
	}
	return d
}
