// skills/extractor.go
package skills

import (
	"log"
	"sort"
	"strings"
	"unicode"
)

////////////////////////////////////////////////////////////////////////
// Interface Definition
////////////////////////////////////////////////////////////////////////

// Processor is the public contract for skill extraction. The HTTP layer
// depends on this interface, not on the concrete matcher, so tests can swap
// in a stub.
type Processor interface {
	// Extract returns the skills mentioned in text as a deduplicated,
	// lexicographically sorted, lower-cased slice. Empty text yields an
	// empty slice, never an error.
	Extract(text string) []string
}

////////////////////////////////////////////////////////////////////////
// Matcher Processor
////////////////////////////////////////////////////////////////////////

// MatcherProcessor implements Processor with a deterministic, dictionary
// driven matcher. It runs four strategies over the input and unions their
// hits:
//
//  1. exact token lookups against the vocabulary
//  2. substring scans for multi-word vocabulary phrases
//  3. named-entity filtering (when the engine recognizes entities)
//  4. noun-chunk scans, or adjacent-token bigrams when no parser is available
//
// Strategies whose capability is missing are skipped, never failed. The
// vocabulary and engine are shared read-only state, so a single
// MatcherProcessor serves concurrent calls.
type MatcherProcessor struct {
	vocab  Vocabulary
	engine Engine
}

// NewMatcherProcessor creates a MatcherProcessor over the given vocabulary
// and annotation engine.
func NewMatcherProcessor(vocab Vocabulary, engine Engine) *MatcherProcessor {
	return &MatcherProcessor{vocab: vocab, engine: engine}
}

// Extract runs all applicable strategies and returns the sorted union of
// their matches.
func (p *MatcherProcessor) Extract(text string) []string {
	// Every strategy, including the annotation calls, works on the
	// lower-cased input. Matching is case-insensitive by construction.
	lowered := strings.ToLower(text)
	matched := make(map[string]struct{})

	tokens := p.engine.Tokenize(lowered)

	// Strategy 1: exact token match. Single-rune tokens are excluded so
	// stray letters don't match single-letter languages like "r" or "c".
	for _, tok := range tokens {
		if len(tok) > 1 && p.vocab.Contains(tok) {
			matched[tok] = struct{}{}
		}
	}

	// Strategy 2: multi-word phrase substring scan. Deliberately not
	// word-boundary aware; a phrase spanning unrelated words still counts.
	for _, phrase := range p.vocab.Phrases() {
		if strings.Contains(lowered, phrase) {
			matched[phrase] = struct{}{}
		}
	}

	// Strategy 3: entity-filtered match. When any word of an organization
	// or product entity is a known skill, the WHOLE entity text is added,
	// compound and all. That broadening is part of the contract.
	if p.engine.HasEntities() {
		for _, ent := range p.engine.Entities(lowered) {
			if !isSkillEntity(ent) {
				continue
			}
			candidate := strings.ToLower(ent.Text)
			for _, word := range strings.Fields(candidate) {
				if p.vocab.Contains(word) {
					matched[candidate] = struct{}{}
					break
				}
			}
		}
	}

	// Strategy 4: noun-chunk scan when a parser is available, otherwise
	// adjacent-token bigrams.
	if p.engine.HasParsing() {
		chunks, err := p.engine.NounChunks(lowered)
		if err != nil {
			// Chunking failed despite the advertised capability; keep
			// whatever the other strategies found.
			log.Printf("⚠️ skipping noun chunk matching: %v", err)
		} else {
			for _, chunk := range chunks {
				chunkText := strings.ToLower(chunk)
				for _, term := range p.vocab.Terms() {
					if len(term) > 1 && strings.Contains(chunkText, term) {
						matched[term] = struct{}{}
					}
				}
			}
		}
	} else {
		for i := 0; i+1 < len(tokens); i++ {
			bigram := tokens[i] + " " + tokens[i+1]
			if p.vocab.Contains(bigram) {
				matched[bigram] = struct{}{}
			}
		}
	}

	skills := make([]string, 0, len(matched))
	for skill := range matched {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}

// isSkillEntity filters entity spans down to plausible skill mentions:
// organizations and products, longer than one rune, and not a bare number.
func isSkillEntity(ent Entity) bool {
	label := strings.ToUpper(ent.Label)
	if label != "ORG" && label != "PRODUCT" {
		return false
	}
	if len(ent.Text) <= 1 {
		return false
	}
	return !isDigits(ent.Text)
}

// isDigits reports whether s is non-empty and made of digits only.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
