package cli

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T, ch *mockChannel) *dirWatcher {
	t.Helper()
	w, err := newDirWatcher(t.TempDir(), ch, map[string]any{"host": "ml.local", "port": 8000})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestNewDirWatcher_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	_, err := newDirWatcher(path, newMockChannel(), nil)

	assert.ErrorContains(t, err, "not a directory")
}

func TestDirWatcher_DocumentID(t *testing.T) {
	w := newTestWatcher(t, newMockChannel())

	id, err := w.documentID(filepath.Join(w.root, "reports", "q1.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "reports/q1.pdf", id)

	_, err = w.documentID(w.root)
	assert.Error(t, err)

	_, err = w.documentID(filepath.Join(filepath.Dir(w.root), "elsewhere.txt"))
	assert.Error(t, err)
}

func TestDirWatcher_HandleWritePublishes(t *testing.T) {
	ch := newMockChannel()
	w := newTestWatcher(t, ch)
	path := filepath.Join(w.root, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0600))

	w.handle(context.Background(), fsnotify.Event{Name: path, Op: fsnotify.Write})

	assert.Equal(t, "hello", ch.published["note.txt"])
	assert.Equal(t, "ml.local", ch.props["host"])
}

func TestDirWatcher_HandleRemoveUnpublishes(t *testing.T) {
	ch := newMockChannel()
	w := newTestWatcher(t, ch)

	w.handle(context.Background(), fsnotify.Event{Name: filepath.Join(w.root, "gone.txt"), Op: fsnotify.Remove})
	w.handle(context.Background(), fsnotify.Event{Name: filepath.Join(w.root, "moved.txt"), Op: fsnotify.Rename})

	assert.Equal(t, []string{"gone.txt", "moved.txt"}, ch.unpublished)
}

func TestDirWatcher_HandleIgnoresVanishedAndChmod(t *testing.T) {
	ch := newMockChannel()
	w := newTestWatcher(t, ch)

	w.handle(context.Background(), fsnotify.Event{Name: filepath.Join(w.root, "vanished.txt"), Op: fsnotify.Create})
	w.handle(context.Background(), fsnotify.Event{Name: filepath.Join(w.root, "x.txt"), Op: fsnotify.Chmod})

	assert.Empty(t, ch.published)
	assert.Empty(t, ch.unpublished)
}

func TestDirWatcher_Run(t *testing.T) {
	ch := newMockChannel()
	w := newTestWatcher(t, ch)

	var mu sync.Mutex
	published := map[string]bool{}
	w.handled = func(op, id string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if op == "publish" && err == nil {
			published[id] = true
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(w.root, "live.txt"), []byte("data"), 0600))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return published["live.txt"]
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{".hidden", true},
		{"path/to/.hidden", true},
		{"dir/.git/config", true},
		{".config/.cache/data", true},
		{"file.txt", false},
		{"path/to/file.txt", false},
		{".", false},
		{"..", false},
		{"path/./file", false},
		{"", false},
		{"file.hidden", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, isHidden(tt.path))
		})
	}
}

func TestDirWatcher_HandleSkipsHiddenFiles(t *testing.T) {
	ch := newMockChannel()
	w := newTestWatcher(t, ch)
	path := filepath.Join(w.root, ".note.txt.swp")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	w.handle(context.Background(), fsnotify.Event{Name: path, Op: fsnotify.Write})

	assert.Empty(t, ch.published)
}
