package segment

import "strings"

// SizeClassifier tags spans whose whitespace token count exceeds maxTokens
// as sub_chunk material: a size-capped chunker would have to split them.
// Smaller spans fall through to the inner classifier (default when nil).
func SizeClassifier(maxTokens int, inner Classifier) Classifier {
	if inner == nil {
		inner = DefaultClassifier()
	}
	return ClassifierFunc(func(content string) Type {
		if maxTokens > 0 && len(strings.Fields(content)) > maxTokens {
			return TypeSub
		}
		return inner.Classify(content)
	})
}

// MarkupClassifier inspects a span's markdown and tags spans dominated by
// fenced code or tables. Everything else stays main_chunk.
func MarkupClassifier() Classifier {
	return ClassifierFunc(classifyMarkup)
}

func classifyMarkup(content string) Type {
	lines := strings.Split(content, "\n")

	var total, fenced, tabular int
	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		total++
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			fenced++
			continue
		}
		if inFence {
			fenced++
			continue
		}
		if strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|") {
			tabular++
		}
	}

	if total == 0 {
		return TypeMain
	}
	if fenced*2 > total {
		return TypeCode
	}
	if tabular*2 > total {
		return TypeTable
	}
	return TypeMain
}
