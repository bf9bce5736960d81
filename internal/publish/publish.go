// Package publish replaces generated artifacts on disk.
//
// Writes go to a temporary file in the target directory which is then renamed
// over the target, so readers never observe a half-written file. A per-user
// lock serializes publishers so two radar runs cannot interleave their outputs.
package publish

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// LockTimeout bounds how long WriteFile waits for another publisher.
var LockTimeout = 10 * time.Second

// WriteFile atomically replaces path with data. Parent directories are created.
// An existing file with identical content is left untouched.
func WriteFile(path string, data []byte) error {
	unlock, err := acquireLock(LockTimeout)
	if err != nil {
		return err
	}
	defer unlock()

	if old, err := os.ReadFile(path); err == nil && bytes.Equal(old, data) {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("cannot replace %s: %w", path, err)
	}
	return nil
}

// acquireLock obtains the publish lock for the current user.
func acquireLock(timeout time.Duration) (func(), error) {
	lockPath, err := lockFilePath()
	if err != nil {
		return func() {}, err
	}
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return func() {}, fmt.Errorf("cannot acquire publish lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return func() {}, fmt.Errorf("another radar run is writing output (lock: %s)", lockPath)
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func lockFilePath() (string, error) {
	if cacheDir, err := os.UserCacheDir(); err == nil && cacheDir != "" {
		dir := filepath.Join(cacheDir, "techradar")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			return filepath.Join(dir, "publish.lock"), nil
		}
	}
	dir := filepath.Join(os.TempDir(), "techradar")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot determine writable lock directory: %w", err)
	}
	return filepath.Join(dir, "publish.lock"), nil
}
