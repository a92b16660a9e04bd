package linenoise

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// DefaultHistoryCapacity is the number of entries a History keeps unless told otherwise
const DefaultHistoryCapacity = 100

// DefaultHistoryFile returns the default history file path following XDG Base Directory Specification.
// Returns ~/.config/linenoise/history or $XDG_CONFIG_HOME/linenoise/history if XDG_CONFIG_HOME is set.
func DefaultHistoryFile() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "linenoise", "history")
}

// History is a bounded ring buffer of previously entered lines.
//
// Entries are kept in insertion order; index 0 is the oldest entry and -1 the
// most recent one. Once the buffer holds Cap() entries, every Push evicts the
// oldest entry.
//
// History is not safe for concurrent use. It is meant to be mutated between
// ReadLine calls, from the goroutine that owns the Editor.
type History struct {
	buf     []string // len(buf) == number of entries
	head    int      // physical index of the oldest entry; non-zero only when full
	max     int
	charset *Charset
}

// NewHistory creates an empty history holding at most capacity entries.
// A capacity <= 0 selects DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{
		buf:     make([]string, 0, min(capacity, DefaultHistoryCapacity)),
		max:     capacity,
		charset: UTF8,
	}
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.buf)
}

// Cap returns the maximum number of entries retained
func (h *History) Cap() int {
	return h.max
}

// SetCapacity changes the eviction threshold. When the history currently holds
// more than n entries the oldest ones are dropped immediately.
func (h *History) SetCapacity(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: history capacity must be positive, got %d", ErrInvalidArgument, n)
	}
	entries := h.Entries()
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	h.buf = entries
	h.head = 0
	h.max = n
	return nil
}

// Push appends line as the newest entry, evicting the oldest one if the
// history is full.
func (h *History) Push(line string) error {
	if err := h.charset.validate(line); err != nil {
		return err
	}
	h.push(line)
	return nil
}

func (h *History) push(line string) {
	if len(h.buf) < h.max {
		h.buf = append(h.buf, line)
		return
	}
	h.buf[h.head] = line
	h.head = (h.head + 1) % h.max
}

// PushAll pushes each line in order. Eviction happens per line, exactly as if
// Push were called for each of them. PushAll stops at the first invalid line;
// the lines before it stay pushed.
func (h *History) PushAll(lines ...string) error {
	for _, line := range lines {
		if err := h.Push(line); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the entry at index i. Negative indices count from the newest
// entry, so Get(-1) is the most recent line.
func (h *History) Get(i int) (string, error) {
	p, err := h.physical(i)
	if err != nil {
		return "", err
	}
	return h.buf[p], nil
}

// Set replaces the entry at index i and returns the new value.
// Index rules are the same as Get.
func (h *History) Set(i int, line string) (string, error) {
	p, err := h.physical(i)
	if err != nil {
		return "", err
	}
	if err := h.charset.validate(line); err != nil {
		return "", err
	}
	h.buf[p] = line
	return line, nil
}

// physical maps a logical, possibly negative, index to a position in buf
func (h *History) physical(i int) (int, error) {
	n := len(h.buf)
	logical := i
	if logical < 0 {
		logical += n
	}
	if logical < 0 || logical >= n {
		return 0, fmt.Errorf("%w: %d (history has %d entries)", ErrIndexOutOfRange, i, n)
	}
	return (h.head + logical) % n, nil
}

// Clear removes every entry. Files written by Save are left alone.
func (h *History) Clear() {
	h.buf = h.buf[:0]
	h.head = 0
}

// All returns an iterator over the entries from oldest to newest.
// Each call starts a fresh pass over the current contents.
func (h *History) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := range len(h.buf) {
			if !yield(h.buf[(h.head+i)%len(h.buf)]) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries from oldest to newest
func (h *History) Entries() []string {
	entries := make([]string, 0, len(h.buf))
	for line := range h.All() {
		entries = append(entries, line)
	}
	return entries
}

// Save writes every entry, one per line and oldest first, to path,
// replacing whatever the file contained.
//
// Entries containing a newline cannot be told apart from two entries when
// the file is loaded again.
func (h *History) Save(path string) error {
	path, err := expandHistoryPath(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: failed to create history file: %w", ErrIO, err)
	}
	defer file.Close()

	bw := bufio.NewWriter(file)
	w := h.charset.newWriter(bw)
	for line := range h.All() {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("%w: failed to write history entry: %w", ErrIO, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: failed to write history entry: %w", ErrIO, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: failed to write history file: %w", ErrIO, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: failed to close history file: %w", ErrIO, err)
	}
	return nil
}

// Load replaces the entries with the lines of the file at path, applying the
// capacity as repeated Push calls would. The history is left untouched when
// the file cannot be read or holds invalid text.
func (h *History) Load(path string) error {
	path, err := expandHistoryPath(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: failed to open history file: %w", ErrIO, err)
	}
	defer file.Close()

	var lines []string
	r := bufio.NewReader(h.charset.newReader(file))
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if verr := h.charset.validate(line); verr != nil {
				return verr
			}
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: failed to read history file: %w", ErrIO, err)
		}
	}

	h.Clear()
	for _, line := range lines {
		h.push(line)
	}
	return nil
}

// expandHistoryPath expands and validates the history file path
// Supports:
// - Absolute paths: /home/user/.history
// - Home directory expansion: ~/.history or ~/config/.history
// - Relative paths: ./.history or config/.history (converted to absolute)
func expandHistoryPath(path string) (string, error) {
	if path == "" {
		return "", errors.New("history path is empty")
	}

	// Expand home directory (~)
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = home
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to convert to absolute path: %w", err)
	}

	return absPath, nil
}
