package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReportsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.tri")
	require.NoError(t, os.WriteFile(path, []byte("1 2 0 0 0 1 0 0 0 1 0\n"), 0o644))

	fw, err := NewFileWatcher(20*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 4)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))
	fw.Start()

	require.NoError(t, os.WriteFile(path, []byte("3 4 0 0 0 1 0 0 0 1 0\n"), 0o644))

	want, err := filepath.Abs(path)
	require.NoError(t, err)
	select {
	case got := <-changed:
		assert.Equal(t, want, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.tri")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 4)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))
	fw.Start()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.tri"), []byte("x"), 0o644))

	select {
	case got := <-changed:
		t.Fatalf("unexpected change of %s", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestDebounceCoalesces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.tri")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fw, err := NewFileWatcher(time.Hour, nil)
	require.NoError(t, err)
	defer fw.Close()

	calls := 0
	require.NoError(t, fw.Watch([]string{path}, func(string) { calls++ }))

	fw.handleFileChange(path)
	fw.handleFileChange(path)
	fw.handleFileChange(path)

	fw.mu.Lock()
	assert.Len(t, fw.timers, 1)
	fw.mu.Unlock()
	assert.Zero(t, calls)
}

func TestRemoveAll(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.tri")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fw, err := NewFileWatcher(time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, fw.Watch([]string{path}, func(string) {}))
	require.NoError(t, fw.RemoveAll())
	assert.Empty(t, fw.callbacks)
	assert.NoError(t, fw.Close())
}
