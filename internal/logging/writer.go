package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// journalExt is the extension of journal files.
const journalExt = ".jsonl"

// Entry is one answered query in the journal.
type Entry struct {
	Time      time.Time `json:"time"`
	RequestID string    `json:"request_id,omitempty"`
	Query     string    `json:"query"`
	Intent    string    `json:"intent"`
	Kind      string    `json:"kind"`
	Answer    string    `json:"answer"`
}

// Journal appends entries to daily JSON-lines files.
// Directory structure: baseDir/YYYY/MM/DD.jsonl
type Journal struct {
	baseDir string
	mu      sync.Mutex
}

// NewJournal creates a Journal rooted at baseDir.
func NewJournal(baseDir string) *Journal {
	return &Journal{baseDir: baseDir}
}

// Dir returns the journal's base directory.
func (j *Journal) Dir() string {
	return j.baseDir
}

// Path returns the journal file holding entries for day t.
func (j *Journal) Path(t time.Time) string {
	t = t.UTC()
	return filepath.Join(
		j.baseDir,
		t.Format("2006"),
		t.Format("01"),
		t.Format("02")+journalExt,
	)
}

// Record appends entry to the file for its day, creating it if needed.
// A zero entry time is replaced with the current time.
func (j *Journal) Record(entry Entry) error {
	if entry.Time.IsZero() {
		entry.Time = time.Now()
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding journal entry: %w", err)
	}
	line = append(line, '\n')

	path := j.Path(entry.Time)

	j.mu.Lock()
	defer j.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating journal directory: %w", err)
	}
	return appendFile(path, line)
}

// appendFile writes data to the end of path.
func appendFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening journal file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing journal file: %w", err)
	}
	return nil
}
