// Package lock guarantees a single daemon per session directory using flock.
package lock

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"
)

const fileName = "LOCK"

// HeldError is returned when another process holds the session lock.
type HeldError struct {
	Holder Info
	Path   string
}

func (e *HeldError) Error() string {
	return fmt.Sprintf("session lock held by PID %d since %s (%s)",
		e.Holder.PID, e.Holder.Since.Format(time.RFC3339), e.Path)
}

// Info is what the holder writes into the lock file.
type Info struct {
	PID     int
	Since   time.Time
	Backend string
}

// Lock represents an acquired session lock file.
type Lock struct {
	file *os.File
	path string
}

// Acquire takes an exclusive lock on sessionDir and records the holder,
// including the store backend it serves. Returns *HeldError when another
// process holds it.
func Acquire(sessionDir, backend string) (*Lock, error) {
	lockPath := filepath.Join(sessionDir, fileName)

	if err := os.MkdirAll(sessionDir, 0700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		holder, _ := Inspect(sessionDir)
		_ = f.Close()
		return nil, &HeldError{Holder: holder, Path: lockPath}
	}

	info := Info{PID: os.Getpid(), Since: time.Now().UTC(), Backend: backend}
	if err := write(f, info); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write lock file: %w", err)
	}
	return &Lock{file: f, path: lockPath}, nil
}

func write(f *os.File, info Info) error {
	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.Seek(0, 0); err != nil {
		return err
	}
	_, err := fmt.Fprintf(f, "pid=%d\ntime=%s\nbackend=%s\n",
		info.PID, info.Since.Format(time.RFC3339), info.Backend)
	return err
}

// Inspect reads the lock file of sessionDir without taking the lock. A missing
// file yields fs.ErrNotExist.
func Inspect(sessionDir string) (Info, error) {
	data, err := os.ReadFile(filepath.Join(sessionDir, fileName))
	if err != nil {
		return Info{}, err
	}
	return parse(string(data)), nil
}

// Held reports whether some process currently holds sessionDir's lock.
func Held(sessionDir string) bool {
	f, err := os.OpenFile(filepath.Join(sessionDir, fileName), os.O_RDWR, 0600)
	if err != nil {
		return false
	}
	defer f.Close()
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		return errors.Is(err, syscall.EWOULDBLOCK)
	}
	_ = syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
	return false
}

// Release releases the lock. Safe to call on nil receiver and more than once.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_ = l.file.Close()
		l.file = nil
		return err
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func parse(content string) Info {
	var info Info
	for _, line := range strings.Split(content, "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch key {
		case "pid":
			info.PID, _ = strconv.Atoi(value)
		case "time":
			info.Since, _ = time.Parse(time.RFC3339, value)
		case "backend":
			info.Backend = value
		}
	}
	return info
}
