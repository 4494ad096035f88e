package autoprompt

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// HistoryConfig configures a HistoryManager.
type HistoryConfig struct {
	Enabled     bool   // Enable/disable history functionality
	MaxEntries  int    // Maximum number of entries to keep in memory (default: 1000)
	File        string // File path for history persistence (empty = memory only)
	MaxFileSize int64  // Maximum file size in bytes before rotation (default: 1MB)
	MaxBackups  int    // Maximum number of backup files to keep (default: 3)
}

// DefaultHistoryConfig returns an enabled, memory-only history configuration.
func DefaultHistoryConfig() *HistoryConfig {
	return &HistoryConfig{
		Enabled:     true,
		MaxEntries:  1000,
		MaxFileSize: 1024 * 1024,
		MaxBackups:  3,
	}
}

// GetDefaultHistoryFile returns $XDG_CONFIG_HOME/autoprompt/history, falling
// back to ~/.config/autoprompt/history.
func GetDefaultHistoryFile() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "autoprompt", "history")
}

// entryEscaper keeps multiline entries on one line in the history file.
var (
	entryEscaper   = strings.NewReplacer(`\`, `\\`, "\n", `\n`)
	entryUnescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n")
)

// HistoryManager keeps submitted values and persists them to a file with
// size-based rotation.
type HistoryManager struct {
	config  *HistoryConfig
	history []string
}

// NewHistoryManager creates a history manager. A nil config uses
// DefaultHistoryConfig.
func NewHistoryManager(config *HistoryConfig) *HistoryManager {
	if config == nil {
		config = DefaultHistoryConfig()
	}
	if config.MaxEntries <= 0 {
		config.MaxEntries = 1000
	}
	if config.MaxFileSize <= 0 {
		config.MaxFileSize = 1024 * 1024
	}
	if config.MaxBackups < 0 {
		config.MaxBackups = 3
	}

	if config.File != "" {
		if absPath, err := expandHistoryPath(config.File); err == nil {
			config.File = absPath
		}
	}

	return &HistoryManager{
		config:  config,
		history: make([]string, 0),
	}
}

// IsEnabled returns whether history functionality is enabled.
func (hm *HistoryManager) IsEnabled() bool {
	return hm.config.Enabled
}

// LoadHistory reads entries from the configured file. A missing file is not
// an error.
func (hm *HistoryManager) LoadHistory() error {
	if !hm.config.Enabled || hm.config.File == "" {
		return nil
	}

	file, err := os.Open(hm.config.File)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			hm.AddEntry(entryUnescaper.Replace(line))
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}
	return nil
}

// SaveHistory writes the entries to the configured file, rotating it first
// when it has grown past MaxFileSize.
func (hm *HistoryManager) SaveHistory() error {
	if !hm.config.Enabled || hm.config.File == "" {
		return nil
	}

	if err := hm.rotateIfNeeded(); err != nil {
		return fmt.Errorf("failed to rotate history file: %w", err)
	}

	dir := filepath.Dir(hm.config.File)
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	return hm.writeEntries(hm.history)
}

// AddEntry appends entry unless it is empty or repeats the last entry.
// The oldest entries are dropped beyond MaxEntries.
func (hm *HistoryManager) AddEntry(entry string) {
	if !hm.config.Enabled || entry == "" {
		return
	}
	if len(hm.history) > 0 && hm.history[len(hm.history)-1] == entry {
		return
	}

	hm.history = append(hm.history, entry)
	if over := len(hm.history) - hm.config.MaxEntries; over > 0 {
		hm.history = hm.history[over:]
	}
}

// GetHistory returns a copy of the entries, oldest first.
func (hm *HistoryManager) GetHistory() []string {
	if !hm.config.Enabled {
		return []string{}
	}
	return append([]string{}, hm.history...)
}

// SetHistory replaces the entries.
func (hm *HistoryManager) SetHistory(history []string) {
	if !hm.config.Enabled {
		return
	}
	hm.history = append([]string{}, history...)
}

// ClearHistory removes all entries.
func (hm *HistoryManager) ClearHistory() {
	if !hm.config.Enabled {
		return
	}
	hm.history = []string{}
}

// Suggester returns a suggestion source over the history.
//
// Entries are ranked by fuzzy score against the query; ties keep the most
// recent entry first and duplicates are listed once. An empty query yields
// no suggestions.
func (hm *HistoryManager) Suggester() Suggester {
	return SuggestFunc(hm.rank)
}

type scoredEntry struct {
	text  string
	score int
}

func (hm *HistoryManager) rank(query string) ([]string, error) {
	if query == "" || !hm.config.Enabled {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(hm.history))
	var scored []scoredEntry
	for i := len(hm.history) - 1; i >= 0; i-- {
		entry := hm.history[i]
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		if score := calculateFuzzyScore(query, entry, true); score > 0 {
			scored = append(scored, scoredEntry{text: entry, score: score})
		}
	}

	slices.SortStableFunc(scored, func(a, b scoredEntry) int {
		return b.score - a.score
	})

	matches := make([]string, 0, len(scored))
	for _, s := range scored {
		matches = append(matches, s.text)
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches, nil
}

func (hm *HistoryManager) writeEntries(entries []string) error {
	file, err := os.Create(hm.config.File)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, entry := range entries {
		if _, err := fmt.Fprintln(w, entryEscaper.Replace(entry)); err != nil {
			return fmt.Errorf("failed to write history entry: %w", err)
		}
	}
	return w.Flush()
}

func (hm *HistoryManager) rotateIfNeeded() error {
	info, err := os.Stat(hm.config.File)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.Size() < hm.config.MaxFileSize {
		return nil
	}
	return hm.rotateHistoryFile()
}

// rotateHistoryFile shifts file.N to file.N+1, moves the file to file.1 and
// keeps the newer half of the entries in memory.
func (hm *HistoryManager) rotateHistoryFile() error {
	if hm.config.MaxBackups <= 0 {
		return os.Truncate(hm.config.File, 0)
	}

	oldestBackup := hm.config.File + "." + strconv.Itoa(hm.config.MaxBackups)
	if _, err := os.Stat(oldestBackup); err == nil {
		if err := os.Remove(oldestBackup); err != nil {
			return fmt.Errorf("failed to remove oldest backup: %w", err)
		}
	}

	for i := hm.config.MaxBackups - 1; i >= 1; i-- {
		oldFile := hm.config.File + "." + strconv.Itoa(i)
		newFile := hm.config.File + "." + strconv.Itoa(i+1)
		if _, err := os.Stat(oldFile); err == nil {
			if err := os.Rename(oldFile, newFile); err != nil {
				return fmt.Errorf("failed to rotate backup %d: %w", i, err)
			}
		}
	}

	if err := os.Rename(hm.config.File, hm.config.File+".1"); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	// Fewer than 100 entries are all kept.
	keep := len(hm.history) / 2
	if keep < 100 {
		keep = len(hm.history)
	}
	hm.history = hm.history[len(hm.history)-keep:]
	return nil
}

// expandHistoryPath expands a leading ~ and makes path absolute.
func expandHistoryPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to convert to absolute path: %w", err)
	}
	return absPath, nil
}
