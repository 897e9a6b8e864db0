// internal/heartbeat/heartbeat.go

// Package heartbeat owns the liveness record: a single file holding the Unix
// time (decimal seconds) of the worker's last successful publish.
//
// The worker is the only writer. Readers may run at any time; every write
// replaces the file through a rename so a reader sees either the previous or
// the new value, never a partial one.
package heartbeat

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// ErrNoRecord is returned by Read when the liveness record does not exist.
var ErrNoRecord = errors.New("heartbeat: no record")

// Recorder writes the liveness record.
type Recorder struct {
	path string

	mu   sync.Mutex
	last int64 // last value written, Unix seconds
}

// NewRecorder returns a Recorder for path. The file is not touched until the
// first Record call.
func NewRecorder(path string) (*Recorder, error) {
	if path == "" {
		return nil, errors.New("heartbeat: path required")
	}
	return &Recorder{path: path}, nil
}

// Path returns the record location.
func (r *Recorder) Path() string { return r.path }

// Record replaces the record with now. Values never go backwards: if the
// clock stepped back since the previous write, the previous value is kept.
// It returns the value actually written.
func (r *Recorder) Record(now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := now.Unix()
	if v < r.last {
		v = r.last
	}

	if err := writeAtomic(r.path, []byte(strconv.FormatInt(v, 10))); err != nil {
		return 0, err
	}

	r.last = v
	return v, nil
}

// writeAtomic writes data to a temp file in the target directory and renames
// it over path.
func writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("heartbeat: create temp in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("heartbeat: write %s: %w", tmpName, err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("heartbeat: chmod %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("heartbeat: close %s: %w", tmpName, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("heartbeat: rename to %s: %w", path, err)
	}

	return nil
}

// Read returns the time stored in the record at path.
// A missing file yields ErrNoRecord. Fractional seconds are accepted so
// records written by older images still parse.
func Read(path string) (time.Time, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return time.Time{}, fmt.Errorf("%w: %s", ErrNoRecord, path)
		}
		return time.Time{}, fmt.Errorf("heartbeat: read %s: %w", path, err)
	}

	s := string(bytes.TrimSpace(raw))
	if s == "" {
		return time.Time{}, fmt.Errorf("heartbeat: empty record %s", path)
	}

	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(sec, 0), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, fmt.Errorf("heartbeat: bad record %s: %q", path, s)
	}

	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(frac*1e9)), nil
}
