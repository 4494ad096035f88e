package autoprompt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// calculateFuzzyScore scores how well candidate matches input.
// Returns 0 if no match, higher scores for better matches.
func calculateFuzzyScore(input, candidate string, ignoreCase bool) int {
	if input == "" {
		return 1
	}
	if candidate == "" {
		return 0
	}

	searchInput := input
	searchCandidate := candidate
	if ignoreCase {
		searchInput = strings.ToLower(input)
		searchCandidate = strings.ToLower(candidate)
	}

	if searchInput == searchCandidate {
		return 1000
	}
	inputLen := len([]rune(searchInput))
	if strings.HasPrefix(searchCandidate, searchInput) {
		return 800 + inputLen*10
	}
	if strings.Contains(searchCandidate, searchInput) {
		return 500 + inputLen*5
	}

	// Subsequence match: every input rune must appear in order.
	candidateRunes := []rune(searchCandidate)
	score := 0
	idx := 0
	for _, want := range searchInput {
		found := false
		for idx < len(candidateRunes) {
			got := candidateRunes[idx]
			idx++
			if got == want {
				found = true
				break
			}
		}
		if !found {
			return 0
		}
		score += 10
	}
	return score
}

// NewFileSuggester returns a suggestion source listing the entries of the
// directory named by the query. Directories are suggested with a trailing
// slash and hidden entries only when the typed name starts with a dot.
// An unreadable directory is reported as an error.
//
// Example:
//
//	in := autoprompt.NewTextInput("Config file",
//		autoprompt.WithSuggester(autoprompt.NewFileSuggester()),
//	)
func NewFileSuggester() Suggester {
	return SuggestFunc(completeFilePath)
}

func completeFilePath(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		dir = path
		base = ""
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var suggestions []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		if base != "" && !strings.HasPrefix(name, base) {
			continue
		}

		fullPath := filepath.Join(dir, name)
		// Join drops a leading "./", which the typed path must keep.
		if strings.HasPrefix(path, "./") {
			fullPath = "./" + fullPath
		}
		if entry.IsDir() {
			fullPath += "/"
		}
		suggestions = append(suggestions, fullPath)
	}
	return suggestions, nil
}
