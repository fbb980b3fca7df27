// skills/engine.go
package skills

import (
	"strings"
	"unicode"
)

////////////////////////////////////////////////////////////////////////
// Engine Interface
////////////////////////////////////////////////////////////////////////

// Entity is a span of text an annotation engine classified under a label
// such as "ORG" or "PRODUCT".
type Entity struct {
	Text  string
	Label string
}

// Engine is the contract for the natural-language annotation capability the
// extractor depends on. Tokenization is always available; entity recognition
// and syntactic parsing are optional and gated by capability flags, so the
// extractor can degrade strategy-by-strategy instead of failing outright.
// Implementations must be safe for concurrent use.
type Engine interface {
	// Tokenize splits text into token texts.
	Tokenize(text string) []string

	// HasEntities reports whether Entities is backed by a real recognizer.
	HasEntities() bool

	// Entities returns the named-entity spans found in text. Only called
	// when HasEntities is true.
	Entities(text string) []Entity

	// HasParsing reports whether NounChunks is backed by a real parser.
	HasParsing() bool

	// NounChunks returns the noun-phrase spans found in text. Only called
	// when HasParsing is true. An error means chunking itself failed; the
	// caller decides whether that aborts anything.
	NounChunks(text string) ([]string, error)
}

////////////////////////////////////////////////////////////////////////
// Minimal Engine
////////////////////////////////////////////////////////////////////////

// MinimalEngine is the fallback annotation engine: tokenization only, no
// entity recognition, no parsing. It exists so the service keeps working
// when the full model cannot be loaded, and it is a supported configuration
// in its own right (ANNOTATION_MODE=minimal).
type MinimalEngine struct{}

// NewMinimalEngine returns the tokenize-only engine.
func NewMinimalEngine() *MinimalEngine {
	return &MinimalEngine{}
}

// Tokenize splits text on anything that is not a word rune. The runes
// + # . / - count as word runes so tech tokens like "c++", "c#", "node.js",
// "ci/cd" and "scikit-learn" survive as single tokens; trailing dots are
// trimmed so sentence-final tokens still match ("docker." -> "docker").
func (e *MinimalEngine) Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if w != "" {
			tokens = append(tokens, w)
		}
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) ||
			r == '+' || r == '#' || r == '.' || r == '/' || r == '-' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// HasEntities always reports false for the minimal engine.
func (e *MinimalEngine) HasEntities() bool { return false }

// Entities is never called when HasEntities is false; it returns nothing.
func (e *MinimalEngine) Entities(text string) []Entity { return nil }

// HasParsing always reports false for the minimal engine.
func (e *MinimalEngine) HasParsing() bool { return false }

// NounChunks is never called when HasParsing is false; it returns nothing.
func (e *MinimalEngine) NounChunks(text string) ([]string, error) {
	return nil, nil
}
