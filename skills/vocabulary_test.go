// skills/vocabulary_test.go
package skills_test

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avikram24/skillscan/skills"
)

func TestNewVocabulary(t *testing.T) {
	vocab := skills.NewVocabulary([]string{
		"Python", "python", "  Machine Learning ", "", "   ", "C++",
	})

	require.Equal(t, 3, vocab.Len())
	require.True(t, vocab.Contains("python"))
	require.True(t, vocab.Contains("machine learning"))
	require.True(t, vocab.Contains("c++"))
	require.False(t, vocab.Contains(""))
	require.False(t, vocab.Contains("Python")) // lookups are lower-case only

	require.Equal(t, []string{"machine learning"}, vocab.Phrases())
}

func TestDefaultVocabulary(t *testing.T) {
	vocab := skills.DefaultVocabulary()

	// Spot checks across the categories.
	for _, term := range []string{
		"python", "react", "postgresql", "kubernetes", "git", "scrum",
		"machine learning", "ruby on rails", "github actions", "ci/cd",
	} {
		require.True(t, vocab.Contains(term), "missing %q", term)
	}

	// Structural invariants: no empty entries, everything lower-case,
	// phrase list is exactly the entries with spaces, term list is sorted.
	terms := vocab.Terms()
	require.Len(t, terms, vocab.Len())
	require.True(t, sort.StringsAreSorted(terms))

	phraseCount := 0
	for _, term := range terms {
		require.NotEmpty(t, term)
		require.Equal(t, strings.ToLower(term), term)
		if strings.Contains(term, " ") {
			phraseCount++
		}
	}
	require.Len(t, vocab.Phrases(), phraseCount)
	for _, phrase := range vocab.Phrases() {
		require.Contains(t, phrase, " ")
	}
}

func TestDefaultVocabulary_SharedInstance(t *testing.T) {
	// DefaultVocabulary is built once and handed out by value; repeated
	// calls must agree.
	require.Equal(t, skills.DefaultVocabulary().Terms(), skills.DefaultVocabulary().Terms())
}

func TestLoadVocabularyFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("Happy Path", func(t *testing.T) {
		path := filepath.Join(dir, "vocab.yaml")
		content := `categories:
  languages:
    - Python
    - Go
  tooling:
    - docker
    - "GitHub Actions"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		vocab, err := skills.LoadVocabularyFile(path)
		require.NoError(t, err)
		require.Equal(t, 4, vocab.Len())
		require.True(t, vocab.Contains("python"))
		require.True(t, vocab.Contains("go"))
		require.True(t, vocab.Contains("docker"))
		require.True(t, vocab.Contains("github actions"))
		require.Equal(t, []string{"github actions"}, vocab.Phrases())
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := skills.LoadVocabularyFile(filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("categories: [unclosed"), 0o644))

		_, err := skills.LoadVocabularyFile(path)
		require.Error(t, err)
	})

	t.Run("No Terms", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("categories: {}"), 0o644))

		_, err := skills.LoadVocabularyFile(path)
		require.Error(t, err)
	})
}
