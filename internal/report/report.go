package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dgallion1/chunklens/internal/analyze"
	"github.com/dgallion1/chunklens/internal/segment"
	"github.com/dgallion1/chunklens/internal/stats"
)

// Markdown renders an analysis result as a plain markdown report: general
// statistics, token and content-length summaries, the two distributions
// with percentages, and the recommendation list. Empty summaries render an
// explicit "no data" line instead of misleading zeros.
func Markdown(res *analyze.Result) string {
	var b strings.Builder

	b.WriteString("# Chunk Analysis Report\n")

	b.WriteString("\n## General Statistics\n")
	fmt.Fprintf(&b, "- Total chunks: %d\n", res.TotalChunks)
	fmt.Fprintf(&b, "- Total tokens: %d\n", res.TotalTokens)
	if res.UnmeasuredChunks > 0 {
		fmt.Fprintf(&b, "- Unmeasured chunks: %d\n", res.UnmeasuredChunks)
	}
	if !res.TokenStats.Empty() {
		fmt.Fprintf(&b, "- Average tokens per chunk: %.2f\n", res.TokenStats.Mean)
	}

	b.WriteString("\n## Token Count Statistics\n")
	writeSummary(&b, res.TokenStats)

	b.WriteString("\n## Content Length Statistics (characters)\n")
	writeSummary(&b, res.CharStats)

	b.WriteString("\n## Heading Level Distribution\n")
	levels := make([]int, 0, len(res.HeadingLevels))
	for level := range res.HeadingLevels {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	for _, level := range levels {
		bucket := res.HeadingLevels[level]
		fmt.Fprintf(&b, "- %s: %d chunks (%.1f%%)\n", levelName(level), bucket.Count, bucket.Percent)
	}

	b.WriteString("\n## Chunk Type Distribution\n")
	types := make([]string, 0, len(res.ChunkTypes))
	for t := range res.ChunkTypes {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		bucket := res.ChunkTypes[segment.Type(t)]
		fmt.Fprintf(&b, "- %s: %d chunks (%.1f%%)\n", t, bucket.Count, bucket.Percent)
	}

	b.WriteString("\n## Recommendations\n")
	if len(res.Recommendations) == 0 {
		b.WriteString("- None\n")
	}
	for _, rec := range res.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec.Message)
	}

	return b.String()
}

func writeSummary(b *strings.Builder, s stats.Summary) {
	if s.Empty() {
		b.WriteString("- No data\n")
		return
	}
	fmt.Fprintf(b, "- Minimum: %d\n", s.Min)
	fmt.Fprintf(b, "- Maximum: %d\n", s.Max)
	fmt.Fprintf(b, "- Average: %.2f\n", s.Mean)
	fmt.Fprintf(b, "- Median: %.1f\n", s.Median)
	fmt.Fprintf(b, "- Standard Deviation: %.2f\n", s.StdDev)
}

func levelName(level int) string {
	if level == 0 {
		return "Document Start"
	}
	return fmt.Sprintf("Level %d", level)
}
