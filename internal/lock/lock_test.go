package lock

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestAcquireAndRelease(t *testing.T) {
	tmpDir := t.TempDir()

	l, err := Acquire(tmpDir, "sqlite")
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	info, err := Inspect(tmpDir)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if info.PID != os.Getpid() || info.Backend != "sqlite" || info.Since.IsZero() {
		t.Errorf("lock info = %+v", info)
	}
	if !Held(tmpDir) {
		t.Error("Held() = false while locked")
	}

	if err := l.Release(); err != nil {
		t.Errorf("Release() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "LOCK")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("lock file still present after Release: %v", err)
	}
	if Held(tmpDir) {
		t.Error("Held() = true after Release")
	}
}

func TestDoubleAcquireFails(t *testing.T) {
	tmpDir := t.TempDir()

	l1, err := Acquire(tmpDir, "mongo")
	if err != nil {
		t.Fatalf("first Acquire() error = %v", err)
	}
	defer func() { _ = l1.Release() }()

	_, err = Acquire(tmpDir, "sqlite")
	if err == nil {
		t.Fatal("second Acquire() should fail")
	}

	var held *HeldError
	if !errors.As(err, &held) {
		t.Fatalf("expected HeldError, got %T: %v", err, err)
	}
	if held.Holder.PID != os.Getpid() || held.Holder.Backend != "mongo" {
		t.Errorf("holder = %+v, want this process serving mongo", held.Holder)
	}
}

func TestInspectMissing(t *testing.T) {
	if _, err := Inspect(t.TempDir()); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Inspect() error = %v, want ErrNotExist", err)
	}
}

func TestReleaseNil(t *testing.T) {
	var l *Lock
	if err := l.Release(); err != nil {
		t.Errorf("nil Release() error = %v", err)
	}
}

func TestReleaseIdempotent(t *testing.T) {
	tmpDir := t.TempDir()

	l, err := Acquire(tmpDir, "sqlite")
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	if err := l.Release(); err != nil {
		t.Errorf("first Release() error = %v", err)
	}
	if err := l.Release(); err != nil {
		t.Errorf("second Release() error = %v", err)
	}
}
