package recommend

import (
	"fmt"

	"github.com/dgallion1/chunklens/internal/segment"
	"github.com/dgallion1/chunklens/internal/stats"
)

// Severity ranks how strongly a recommendation calls for action.
type Severity string

const (
	SeverityInfo       Severity = "informational"
	SeverityActionable Severity = "actionable"
)

// Recommendation is a rule-triggered tuning suggestion. Values are created
// fresh per run and never mutated afterwards.
type Recommendation struct {
	Message  string   `json:"message"`
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
}

// Thresholds configures the rule set for one run. Passed explicitly so
// runs stay independent; there is no process-wide rule state.
type Thresholds struct {
	LowMeanTokens float64 // mean below this suggests chunks are too small
	HighMaxTokens int     // max above this suggests chunks are too large
	VarianceRatio float64 // stddev above ratio*mean suggests outlier-heavy sizes
	SplitShare    float64 // sub_chunk share above this suggests restructuring
}

// DefaultThresholds returns the stock tuning heuristics.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LowMeanTokens: 400,
		HighMaxTokens: 1500,
		VarianceRatio: 0.5,
		SplitShare:    0.5,
	}
}

type rule struct {
	id       string
	severity Severity
	// eval returns the message and whether the rule fired. A rule that
	// cannot evaluate returns ok=false, same as not firing.
	eval func(st stats.Stats, th Thresholds) (string, bool)
}

// rules are evaluated independently; their order here fixes emission order
// and nothing else.
var rules = []rule{
	{
		id:       "oversized_chunks",
		severity: SeverityInfo,
		eval: func(st stats.Stats, th Thresholds) (string, bool) {
			if st.Tokens.Empty() || st.Tokens.Max <= th.HighMaxTokens {
				return "", false
			}
			return fmt.Sprintf("Consider reducing max_chunk_size as some chunks are quite large (max %d tokens)", st.Tokens.Max), true
		},
	},
	{
		id:       "undersized_chunks",
		severity: SeverityInfo,
		eval: func(st stats.Stats, th Thresholds) (string, bool) {
			if st.Tokens.Empty() || st.Tokens.Mean >= th.LowMeanTokens {
				return "", false
			}
			return fmt.Sprintf("Consider increasing max_chunk_size as chunks are relatively small on average (mean %.1f tokens)", st.Tokens.Mean), true
		},
	},
	{
		id:       "high_variance",
		severity: SeverityActionable,
		eval: func(st stats.Stats, th Thresholds) (string, bool) {
			if st.Tokens.Empty() || st.Tokens.StdDev <= st.Tokens.Mean*th.VarianceRatio {
				return "", false
			}
			return "High variation in chunk sizes - may need to refine chunking strategy (size normalization or outlier-aware splitting)", true
		},
	},
	{
		id:       "split_heavy",
		severity: SeverityActionable,
		eval: func(st stats.Stats, th Thresholds) (string, bool) {
			if st.TotalChunks == 0 {
				return "", false
			}
			sub := st.ChunkTypes[segment.TypeSub]
			if float64(sub.Count)/float64(st.TotalChunks) <= th.SplitShare {
				return "", false
			}
			return "Many large sections were split into sub-chunks, consider restructuring the document", true
		},
	},
}

// Evaluate runs every rule against the aggregated statistics and returns
// the recommendations that fired, in rule-definition order.
func Evaluate(st stats.Stats, th Thresholds) []Recommendation {
	var recs []Recommendation
	for _, r := range rules {
		msg, ok := r.eval(st, th)
		if !ok {
			continue
		}
		recs = append(recs, Recommendation{
			Message:  msg,
			Rule:     r.id,
			Severity: r.severity,
		})
	}
	return recs
}
