package keymap

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when using a closed watcher.
var ErrWatcherClosed = errors.New("keymap watcher is closed")

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithOnReload sets a callback invoked with every successfully
// reloaded table. It runs on the watcher goroutine.
func WithOnReload(fn func(*Table)) WatcherOption {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// WithErrorBuffer sets the size of the error channel. Errors are
// dropped when the buffer is full.
func WithErrorBuffer(size int) WatcherOption {
	return func(w *Watcher) {
		w.errBuf = size
	}
}

// Watcher keeps a Table in sync with a keymap file.
//
// The parent directory is watched rather than the file itself so that
// editors replacing the file through a rename are noticed. A reload that
// fails leaves the previous table in place and reports the error on
// Errors.
type Watcher struct {
	loader *Loader
	path   string

	current  atomic.Pointer[Table]
	onReload func(*Table)

	fsw    *fsnotify.Watcher
	errBuf int
	errors chan error

	mu       sync.Mutex
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// NewWatcher loads path and starts watching it for changes. It fails if
// the initial load fails.
func NewWatcher(loader *Loader, path string, opts ...WatcherOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		loader:  loader,
		path:    absPath,
		errBuf:  16,
		closeCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.errBuf < 0 {
		w.errBuf = 0
	}
	w.errors = make(chan error, w.errBuf)

	if err := w.reload(); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching keymap directory: %w", err)
	}
	w.fsw = fsw

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Current returns the most recently loaded table.
func (w *Watcher) Current() *Table {
	return w.current.Load()
}

// Errors returns the channel of reload errors. It is closed by Close.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	var err error
	if w.fsw != nil {
		err = w.fsw.Close()
	}
	w.closedWg.Wait()
	close(w.errors)
	return err
}

// reload loads the file and publishes the table on success.
func (w *Watcher) reload() error {
	t, err := w.loader.LoadFile(w.path)
	if err != nil {
		return err
	}
	w.current.Store(t)
	if w.onReload != nil {
		w.onReload(t)
	}
	return nil
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if err := w.reload(); err != nil {
				w.sendError(err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// relevant reports whether ev may have changed the watched file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

// sendError delivers err without blocking.
func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}
