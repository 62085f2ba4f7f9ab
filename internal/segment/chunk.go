package segment

// Type tags a chunk with its content category. The set is closed; anything
// a classifier emits outside it is normalized to TypeOther so typos never
// leak into the distribution tables.
type Type string

const (
	TypeMain  Type = "main_chunk"
	TypeSub   Type = "sub_chunk"
	TypeCode  Type = "code"
	TypeTable Type = "table"
	TypeOther Type = "other"
)

// Normalize maps unknown type tags to TypeOther.
func Normalize(t Type) Type {
	switch t {
	case TypeMain, TypeSub, TypeCode, TypeTable:
		return t
	default:
		return TypeOther
	}
}

// Chunk is a contiguous span of the source document. Chunks partition the
// document: concatenating Content in ID order reproduces the input exactly.
type Chunk struct {
	ID           int      `json:"id"`
	Content      string   `json:"content"`
	Heading      string   `json:"heading"`
	Path         []string `json:"path,omitempty"`
	HeadingLevel int      `json:"level"` // 0 = before the first heading
	Type         Type     `json:"chunk_type"`
	TokenCount   int      `json:"token_count"`
	CharLength   int      `json:"char_length"`
	Measured     bool     `json:"measured"`
}

// Classifier assigns a Type to a content span. Implementations must be pure:
// same span, same type.
type Classifier interface {
	Classify(content string) Type
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(content string) Type

func (f ClassifierFunc) Classify(content string) Type { return f(content) }

// DefaultClassifier types every chunk as main_chunk.
func DefaultClassifier() Classifier {
	return ClassifierFunc(func(string) Type { return TypeMain })
}
