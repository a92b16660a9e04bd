package linenoise

import (
	"cmp"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// calculateFuzzyScore calculates a fuzzy matching score between input and candidate.
// Returns 0 if no match, higher scores for better matches.
// Supports case-insensitive matching when ignoreCase is true.
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
	if strings.HasPrefix(searchCandidate, searchInput) {
		return 800 + len(searchInput)*10
	}
	if strings.Contains(searchCandidate, searchInput) {
		return 500 + len(searchInput)*5
	}

	// Every input rune must appear in order; 10 points per rune matched.
	candidateRunes := []rune(searchCandidate)
	score := 0
	idx := 0
	for _, inputChar := range searchInput {
		for idx < len(candidateRunes) && candidateRunes[idx] != inputChar {
			idx++
		}
		if idx >= len(candidateRunes) {
			return 0
		}
		score += 10
		idx++
	}
	return score
}

type fuzzyCompleter struct {
	candidates []string
}

// NewFuzzyCompleter returns a Completer that ranks candidates against the
// whole input line.
//
// Exact matches rank first, then prefix matches, substring matches and
// finally in-order character matches. Candidates with equal scores keep
// their original order. An empty input offers every candidate.
//
// Example:
//
//	ed, _ := linenoise.New(linenoise.WithCompleter(linenoise.NewFuzzyCompleter([]string{
//		"git status", "git commit", "docker run", "kubectl get",
//	})))
func NewFuzzyCompleter(candidates []string) Completer {
	return &fuzzyCompleter{candidates: append([]string(nil), candidates...)}
}

func (f *fuzzyCompleter) Complete(input string) Completion {
	if input == "" {
		return Many(f.candidates...)
	}

	type match struct {
		text  string
		score int
	}
	var matches []match
	for _, candidate := range f.candidates {
		if score := calculateFuzzyScore(input, candidate, true); score > 0 {
			matches = append(matches, match{text: candidate, score: score})
		}
	}
	slices.SortStableFunc(matches, func(a, b match) int {
		return cmp.Compare(b.score, a.score)
	})

	results := make([]string, len(matches))
	for i, m := range matches {
		results[i] = m.text
	}
	return Many(results...)
}

// NewFileCompleter returns a Completer that completes the last word of the
// line as a file or directory path. Directories get a trailing slash and
// hidden entries are only offered when the word starts with a dot.
func NewFileCompleter() Completer {
	return CompleterFunc(func(input string) Completion {
		head, word := splitLastWord(input)
		paths := completeFilePath(word)
		if len(paths) == 1 {
			return Single(head + paths[0])
		}
		lines := make([]string, len(paths))
		for i, p := range paths {
			lines[i] = head + p
		}
		return Many(lines...)
	})
}

// splitLastWord splits input after its last space
func splitLastWord(input string) (head, word string) {
	i := strings.LastIndexAny(input, " \t")
	if i < 0 {
		return "", input
	}
	return input[:i+1], input[i+1:]
}

// completeFilePath lists the paths that complete path
func completeFilePath(path string) []string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	// A trailing separator (or nothing at all) means "everything in dir".
	if path == "" {
		dir, base = ".", ""
	} else if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		dir, base = path, ""
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		if base != "" && !strings.HasPrefix(name, base) {
			continue
		}

		fullPath := filepath.Join(dir, name)
		if dir == "." && !strings.HasPrefix(path, "./") {
			fullPath = name
		}
		if entry.IsDir() {
			fullPath += "/"
		}
		paths = append(paths, fullPath)
	}
	return paths
}
