package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/marklogic-publisher/internal/adapters/driven/content"
	"github.com/custodia-labs/marklogic-publisher/internal/core/ports/driving"
	"github.com/custodia-labs/marklogic-publisher/internal/logger"
)

var watchTarget targetFlags

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Publish files as they change in a directory",
	Long: `Watches a directory tree and mirrors it to MarkLogic.

Created or written files are published with their path relative to <dir> as
the document identifier. Removed or renamed files are unpublished. Failures
are logged and watching continues. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchTarget.register(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ch, err := channelType()
	if err != nil {
		return err
	}

	w, err := newDirWatcher(args[0], ch, watchTarget.properties())
	if err != nil {
		return err
	}
	defer w.Close()

	cmd.Printf("Watching %s (Ctrl-C to stop)\n", w.root)
	return w.Run(cmd.Context())
}

// dirWatcher turns file system events under root into channel calls.
// Events are handled one at a time, in the order fsnotify delivers them.
type dirWatcher struct {
	root    string
	channel driving.ChannelType
	props   map[string]any
	watcher *fsnotify.Watcher

	// handled is called after each event, for tests.
	handled func(op string, id string, err error)
}

func newDirWatcher(root string, ch driving.ChannelType, props map[string]any) (*dirWatcher, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", root)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &dirWatcher{root: abs, channel: ch, props: props, watcher: fw}
	if err := w.addTree(abs); err != nil {
		_ = fw.Close()
		return nil, err
	}
	return w, nil
}

// addTree watches dir and every directory below it.
func (w *dirWatcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if rel, _ := filepath.Rel(w.root, path); isHidden(rel) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		logger.Debug("Watching %s", path)
		return nil
	})
}

// Run processes events until ctx is cancelled or the watcher is closed.
func (w *dirWatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// Close stops watching.
func (w *dirWatcher) Close() error {
	return w.watcher.Close()
}

func (w *dirWatcher) handle(ctx context.Context, event fsnotify.Event) {
	id, err := w.documentID(event.Name)
	if err != nil {
		logger.Warn("ignoring %s: %v", event.Name, err)
		return
	}
	if isHidden(id) {
		return
	}

	switch {
	case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
		info, err := os.Stat(event.Name)
		if err != nil {
			// Gone again before we got to it; a Remove event follows.
			return
		}
		if info.IsDir() {
			if event.Has(fsnotify.Create) {
				if err := w.addTree(event.Name); err != nil {
					logger.Warn("%v", err)
				}
			}
			return
		}
		err = w.channel.Publish(ctx, content.NewFile(event.Name, id, ""), w.props)
		w.report("publish", id, err)

	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		err := w.channel.Unpublish(ctx, id, w.props)
		w.report("unpublish", id, err)
	}
}

func (w *dirWatcher) report(op, id string, err error) {
	if err != nil {
		logger.Error("%s %s: %v", op, id, err)
	} else {
		logger.Info("%s %s: ok", op, id)
	}
	if w.handled != nil {
		w.handled(op, id, err)
	}
}

// documentID is the slash-separated path of name relative to the root.
func (w *dirWatcher) documentID(name string) (string, error) {
	rel, err := filepath.Rel(w.root, name)
	if err != nil {
		return "", err
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.New("outside watched directory")
	}
	return filepath.ToSlash(rel), nil
}

// isHidden reports whether any element of path starts with a dot.
// "." and ".." are not hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if len(part) > 1 && part[0] == '.' && part != ".." {
			return true
		}
	}
	return false
}
