package lexicon

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the lexicon when an on-disk grammar override changes.
// Narratives already in flight keep the lexicon they started with; the
// orchestrator picks up the new one at the next narrative boundary.
type Watcher struct {
	idiomPath string
	prepPath  string
	debounce  time.Duration
	logger    *slog.Logger

	watcher *fsnotify.Watcher

	mu      sync.Mutex
	pending bool

	// Reloaded receives the freshly parsed lexicon after each change.
	Reloaded chan *Lexicon
}

// NewWatcher watches the given grammar files. Either path may be empty, in
// which case that file's embedded default stays in effect.
func NewWatcher(idiomPath, prepPath string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		idiomPath: idiomPath,
		prepPath:  prepPath,
		debounce:  250 * time.Millisecond,
		logger:    logger,
		watcher:   fsw,
		Reloaded:  make(chan *Lexicon, 1),
	}

	// Watch parent directories: editors replace files rather than writing in
	// place, which drops the watch on the file itself.
	dirs := map[string]bool{}
	for _, p := range []string{idiomPath, prepPath} {
		if p != "" {
			dirs[filepath.Dir(p)] = true
		}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	return w, nil
}

// Run processes filesystem events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(ev.Name) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			if !w.pending {
				w.pending = true
				timer.Reset(w.debounce)
			}
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("lexicon watcher error", "error", err)

		case <-timer.C:
			w.mu.Lock()
			w.pending = false
			w.mu.Unlock()
			w.reload()
		}
	}
}

func (w *Watcher) relevant(name string) bool {
	return (w.idiomPath != "" && filepath.Clean(name) == filepath.Clean(w.idiomPath)) ||
		(w.prepPath != "" && filepath.Clean(name) == filepath.Clean(w.prepPath))
}

func (w *Watcher) reload() {
	lex, err := Load(w.idiomPath, w.prepPath)
	if err != nil {
		// Keep the previous lexicon; a half-saved file parses again on the
		// next write event.
		w.logger.Warn("lexicon reload failed", "error", err)
		return
	}
	w.logger.Info("lexicon reloaded",
		"verb_idioms", len(lex.VerbIdioms),
		"noun_idioms", len(lex.NounIdioms),
		"prepositions", len(lex.Prepositions))

	select {
	case w.Reloaded <- lex:
	default:
		// Drop if the consumer hasn't taken the previous reload yet.
	}
}
