package logging

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Cleaner removes journal files older than the retention period.
type Cleaner struct {
	baseDir       string
	retentionDays int
	now           func() time.Time
}

// NewCleaner creates a new Cleaner with the specified base directory and retention period.
func NewCleaner(baseDir string, retentionDays int) *Cleaner {
	return &Cleaner{baseDir: baseDir, retentionDays: retentionDays, now: time.Now}
}

// Cleanup removes journal files last modified before the retention threshold,
// then prunes directories left empty. Files without the journal extension are
// never touched. A missing base directory is not an error.
// Returns the number of files deleted.
func (c *Cleaner) Cleanup() (int, error) {
	threshold := c.now().AddDate(0, 0, -c.retentionDays)

	var deleted int
	var dirs []string
	err := filepath.WalkDir(c.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			if path != c.baseDir {
				dirs = append(dirs, path)
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), journalExt) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.ModTime().Before(threshold) && os.Remove(path) == nil {
			deleted++
		}
		return nil
	})

	pruneEmptyDirs(dirs)
	return deleted, err
}

// pruneEmptyDirs removes empty directories, deepest first, so that a parent
// emptied by removing its children is removed too.
func pruneEmptyDirs(dirs []string) {
	sort.Slice(dirs, func(i, j int) bool {
		return strings.Count(dirs[i], string(filepath.Separator)) > strings.Count(dirs[j], string(filepath.Separator))
	})
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err == nil && len(entries) == 0 {
			os.Remove(dir)
		}
	}
}
