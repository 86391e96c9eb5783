package log

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"
)

const dayLayout = "2006-01-02"

// DailyFile is an io.Writer that appends to dir/YYYY-MM-DD.jsonl, switching
// files when the date changes. dir/latest always links to the current file.
type DailyFile struct {
	dir string
	now func() time.Time

	mu   sync.Mutex
	file *os.File
	day  string
}

// OpenDailyFile creates dir if needed and opens today's file.
func OpenDailyFile(dir string) (*DailyFile, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating debug log dir: %w", err)
	}

	df := &DailyFile{dir: dir, now: time.Now}
	df.mu.Lock()
	defer df.mu.Unlock()
	if err := df.openLocked(df.now().Format(dayLayout)); err != nil {
		return nil, err
	}
	return df, nil
}

// Write implements io.Writer.
func (df *DailyFile) Write(p []byte) (int, error) {
	df.mu.Lock()
	defer df.mu.Unlock()

	if df.file == nil {
		return 0, os.ErrClosed
	}
	if day := df.now().Format(dayLayout); day != df.day {
		if err := df.openLocked(day); err != nil {
			return 0, err
		}
	}
	return df.file.Write(p)
}

// Path returns the file currently written to.
func (df *DailyFile) Path() string {
	df.mu.Lock()
	defer df.mu.Unlock()
	return filepath.Join(df.dir, df.day+".jsonl")
}

// Close closes the current file.
func (df *DailyFile) Close() error {
	df.mu.Lock()
	defer df.mu.Unlock()
	if df.file == nil {
		return nil
	}
	err := df.file.Close()
	df.file = nil
	return err
}

func (df *DailyFile) openLocked(day string) error {
	if df.file != nil {
		df.file.Close()
	}

	name := day + ".jsonl"
	f, err := os.OpenFile(filepath.Join(df.dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	df.file = f
	df.day = day

	// Best effort: swap the symlink in with a rename so readers never see it missing.
	link := filepath.Join(df.dir, "latest")
	tmp := link + ".tmp"
	os.Remove(tmp)
	if err := os.Symlink(name, tmp); err == nil {
		_ = os.Rename(tmp, link)
	}
	return nil
}

var dailyName = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\.jsonl$`)

// Cleanup removes daily files in dir older than retentionDays.
func Cleanup(dir string, retentionDays int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	for _, e := range entries {
		if e.IsDir() || !dailyName.MatchString(e.Name()) {
			continue
		}
		day, err := time.Parse(dayLayout, e.Name()[:len(dayLayout)])
		if err != nil {
			continue
		}
		if day.Before(cutoff) {
			os.Remove(filepath.Join(dir, e.Name()))
		}
	}
}
