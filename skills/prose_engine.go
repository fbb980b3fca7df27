// skills/prose_engine.go
package skills

import (
	"fmt"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

////////////////////////////////////////////////////////////////////////
// Prose Engine
////////////////////////////////////////////////////////////////////////

// ProseEngine is the full annotation engine, backed by the prose NLP
// library. It provides real tokenization and named-entity recognition, and
// derives noun chunks from prose's part-of-speech tags (prose ships no
// chunker of its own). Both capability flags are true.
//
// A ProseEngine holds no per-call state; prose documents are built fresh for
// each call, so one engine instance is safe for concurrent use.
type ProseEngine struct{}

// NewProseEngine constructs the full engine and runs a smoke annotation so a
// broken or missing model surfaces here, at startup, instead of on the first
// request. Callers should fall back to NewMinimalEngine when this fails.
func NewProseEngine() (*ProseEngine, error) {
	if _, err := prose.NewDocument("smoke test"); err != nil {
		return nil, fmt.Errorf("prose model unavailable: %w", err)
	}
	return &ProseEngine{}, nil
}

// Tokenize splits text with prose's tokenizer. If document construction
// fails for a pathological input, it degrades to whitespace fields rather
// than dropping the text on the floor.
func (e *ProseEngine) Tokenize(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return strings.Fields(text)
	}

	docTokens := doc.Tokens()
	tokens := make([]string, 0, len(docTokens))
	for _, tok := range docTokens {
		tokens = append(tokens, tok.Text)
	}
	return tokens
}

// HasEntities reports true: prose ships a named-entity recognizer.
func (e *ProseEngine) HasEntities() bool { return true }

// Entities runs prose's entity extraction over text. Internal failures
// yield an empty span list; entity matching is a best-effort broadening
// strategy, not a required one.
func (e *ProseEngine) Entities(text string) []Entity {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil
	}

	docEnts := doc.Entities()
	ents := make([]Entity, 0, len(docEnts))
	for _, ent := range docEnts {
		ents = append(ents, Entity{Text: ent.Text, Label: ent.Label})
	}
	return ents
}

// HasParsing reports true: noun chunks are derived from prose's tagger.
func (e *ProseEngine) HasParsing() bool { return true }

// NounChunks approximates noun phrases as maximal runs of determiner,
// adjective and noun tokens that contain at least one noun. The error from
// document construction is returned to the caller, which logs and continues
// without chunk matches.
func (e *ProseEngine) NounChunks(text string) ([]string, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("noun chunking failed: %w", err)
	}

	var chunks []string
	var run []string
	hasNoun := false

	flush := func() {
		if hasNoun && len(run) > 0 {
			chunks = append(chunks, strings.Join(run, " "))
		}
		run = run[:0]
		hasNoun = false
	}

	for _, tok := range doc.Tokens() {
		switch {
		case strings.HasPrefix(tok.Tag, "NN"):
			run = append(run, tok.Text)
			hasNoun = true
		case strings.HasPrefix(tok.Tag, "JJ") || tok.Tag == "DT":
			run = append(run, tok.Text)
		default:
			flush()
		}
	}
	flush()

	return chunks, nil
}
