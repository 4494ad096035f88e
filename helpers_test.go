package autoprompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateFuzzyScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		candidate  string
		ignoreCase bool
		want       int
	}{
		{name: "empty input", input: "", candidate: "abc", want: 1},
		{name: "empty candidate", input: "a", candidate: "", want: 0},
		{name: "exact", input: "git", candidate: "git", want: 1000},
		{name: "prefix", input: "gi", candidate: "git", want: 820},
		{name: "contains", input: "it", candidate: "git", want: 510},
		{name: "subsequence", input: "gt", candidate: "git", want: 20},
		{name: "missing rune", input: "gx", candidate: "git", want: 0},
		{name: "case sensitive", input: "GIT", candidate: "git", want: 0},
		{name: "case insensitive", input: "GIT", candidate: "git", ignoreCase: true, want: 1000},
		{name: "multibyte prefix", input: "日本", candidate: "日本語", want: 820},
		{name: "multibyte subsequence", input: "日語", candidate: "日本語", want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, calculateFuzzyScore(tt.input, tt.candidate, tt.ignoreCase))
		})
	}
}

func TestFileSuggester(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "src"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "server.go"), nil, 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), nil, 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".secret"), nil, 0600))

	source := NewFileSuggester()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query", query: "", want: nil},
		{name: "prefix", query: filepath.Join(dir, "s"), want: []string{
			filepath.Join(dir, "server.go"),
			filepath.Join(dir, "src") + "/",
		}},
		{name: "directory listing hides dotfiles", query: dir + "/", want: []string{
			filepath.Join(dir, "README.md"),
			filepath.Join(dir, "server.go"),
			filepath.Join(dir, "src") + "/",
		}},
		{name: "dotfiles on request", query: filepath.Join(dir, ".s"), want: []string{
			filepath.Join(dir, ".secret"),
		}},
		{name: "no match", query: filepath.Join(dir, "zzz"), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := source.Suggestions(tt.query)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Suggestions(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestFileSuggesterRelativePaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.txt"), nil, 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "xy.go"), nil, 0600))
	t.Chdir(dir)

	source := NewFileSuggester()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "bare name", query: "x", want: []string{"x.txt"}},
		{name: "dot slash prefix is kept", query: "./x", want: []string{"./x.txt"}},
		{name: "dot slash listing", query: "./", want: []string{"./sub/", "./x.txt"}},
		{name: "dot slash subdirectory", query: "./sub/x", want: []string{"./sub/xy.go"}},
		{name: "subdirectory", query: "sub/x", want: []string{"sub/xy.go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := source.Suggestions(tt.query)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Suggestions(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestFileSuggesterUnreadableDirectory(t *testing.T) {
	t.Parallel()

	source := NewFileSuggester()
	got, err := source.Suggestions(filepath.Join(t.TempDir(), "missing", "x"))
	require.Error(t, err)
	assert.Nil(t, got)
}
