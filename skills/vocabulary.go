// skills/vocabulary.go
package skills

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////
// Vocabulary
////////////////////////////////////////////////////////////////////////

// Vocabulary is the fixed set of known technical-skill strings the matcher
// checks against. All entries are stored lower-cased; entries may be single
// words ("python") or space-separated phrases ("machine learning").
// A Vocabulary is built once at startup and is safe for concurrent readers.
type Vocabulary struct {
	set     map[string]struct{}
	terms   []string // all entries, sorted
	phrases []string // entries containing a space, sorted
}

// NewVocabulary builds a Vocabulary from raw entries. Entries are lower-cased,
// trimmed and deduplicated; empty strings are dropped.
func NewVocabulary(entries []string) Vocabulary {
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		set[e] = struct{}{}
	}

	terms := make([]string, 0, len(set))
	var phrases []string
	for term := range set {
		terms = append(terms, term)
		if strings.Contains(term, " ") {
			phrases = append(phrases, term)
		}
	}
	sort.Strings(terms)
	sort.Strings(phrases)

	return Vocabulary{set: set, terms: terms, phrases: phrases}
}

// Contains reports whether term (already lower-cased by the caller) is a
// known skill.
func (v Vocabulary) Contains(term string) bool {
	_, ok := v.set[term]
	return ok
}

// Terms returns every vocabulary entry in sorted order. Callers must not
// modify the returned slice.
func (v Vocabulary) Terms() []string {
	return v.terms
}

// Phrases returns the multi-word entries in sorted order. Callers must not
// modify the returned slice.
func (v Vocabulary) Phrases() []string {
	return v.phrases
}

// Len returns the number of entries.
func (v Vocabulary) Len() int {
	return len(v.set)
}

////////////////////////////////////////////////////////////////////////
// Built-in vocabulary
////////////////////////////////////////////////////////////////////////

// The category grouping below is documentation only; at runtime the
// vocabulary is a flat set and no category survives construction.
var (
	languageSkills = []string{
		"python", "java", "javascript", "typescript", "c++", "c#", "ruby",
		"php", "swift", "golang", "rust", "kotlin", "scala", "perl", "r",
		"matlab", "bash", "shell", "sql", "nosql", "html", "css", "sass",
		"less",
	}

	frameworkSkills = []string{
		"django", "flask", "fastapi", "spring", "react", "angular", "vue",
		"node.js", "express", "laravel", "symfony", "ruby on rails",
		"asp.net", "jquery", "bootstrap", "tensorflow", "pytorch", "keras",
		"scikit-learn", "pandas", "numpy", "matplotlib", "seaborn", "d3.js",
		"plotly", "selenium", "pytest", "jest", "mocha", "spacy",
	}

	databaseSkills = []string{
		"mysql", "postgresql", "mongodb", "oracle", "sql server", "sqlite",
		"redis", "cassandra", "couchbase", "dynamodb", "firebase", "neo4j",
		"elasticsearch", "mariadb",
	}

	infraSkills = []string{
		"docker", "kubernetes", "jenkins", "github actions", "gitlab ci",
		"travis ci", "aws", "azure", "gcp", "terraform", "ansible", "chef",
		"puppet", "vagrant", "prometheus", "grafana", "elk stack", "nginx",
		"apache", "linux", "unix", "windows server", "vmware", "virtualbox",
	}

	versionControlSkills = []string{
		"git", "github", "gitlab", "bitbucket", "svn", "mercurial",
	}

	methodologySkills = []string{
		"agile", "scrum", "kanban", "waterfall", "tdd", "bdd", "ci/cd",
		"devops", "microservices", "soa", "rest", "graphql", "soap", "grpc",
	}

	otherTechSkills = []string{
		"machine learning", "deep learning", "artificial intelligence",
		"data science", "big data", "data analysis", "data visualization",
		"etl", "data mining", "nlp", "computer vision", "blockchain", "iot",
		"ar/vr", "cybersecurity", "network security", "cloud computing",
		"serverless", "web development", "mobile development",
		"responsive design", "ux/ui", "seo", "api design", "system design",
		"distributed systems", "parallel computing", "web scraping",
		"data engineering", "backend", "frontend", "full stack",
		"qa automation",
	}
)

// defaultVocab is built once at package init; DefaultVocabulary hands out the
// same shared, read-only value to every caller.
var defaultVocab = NewVocabulary(concat(
	languageSkills,
	frameworkSkills,
	databaseSkills,
	infraSkills,
	versionControlSkills,
	methodologySkills,
	otherTechSkills,
))

// DefaultVocabulary returns the built-in skill vocabulary.
func DefaultVocabulary() Vocabulary {
	return defaultVocab
}

func concat(groups ...[]string) []string {
	var all []string
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

////////////////////////////////////////////////////////////////////////
// Vocabulary files
////////////////////////////////////////////////////////////////////////

// vocabularyFile is the on-disk shape of a custom vocabulary:
//
//	categories:
//	  languages: [python, go]
//	  tooling: [docker, "github actions"]
//
// Category names are documentation only, exactly like the built-in grouping.
type vocabularyFile struct {
	Categories map[string][]string `yaml:"categories"`
}

// LoadVocabularyFile reads a YAML category file and builds a Vocabulary from
// the union of all listed terms.
func LoadVocabularyFile(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	var file vocabularyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Vocabulary{}, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}

	var entries []string
	for _, terms := range file.Categories {
		entries = append(entries, terms...)
	}
	if len(entries) == 0 {
		return Vocabulary{}, fmt.Errorf("vocabulary file %s contains no terms", path)
	}

	return NewVocabulary(entries), nil
}
