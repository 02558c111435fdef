package workers

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/usecases"
	"github.com/fsnotify/fsnotify"
)

// BookIndexRefresher is a runnable that rebuilds the book index whenever the
// book file changes on disk. Bursts of events are debounced into one rebuild.
type BookIndexRefresher struct {
	BuildBookIndex      usecases.BuildBookIndex `resolve:""`
	Logger              *log.Logger             `resolve:""`
	BookPath            string                  `config:"BOOK_PATH" default:"data/innocents_abroad_raw.txt"`
	Debounce            time.Duration           `config:"BOOK_WATCH_DEBOUNCE" default:"2s"`
	watchingChan        chan struct{}
	workerExecutionChan chan error
}

// Run watches the directory of the book file until ctx is cancelled.
func (r BookIndexRefresher) Run(ctx context.Context) error {
	target, err := filepath.Abs(r.BookPath)
	if err != nil {
		return fmt.Errorf("failed to resolve book path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	// Editors and downloads replace the file, so watch the directory.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}
	r.Logger.Printf("BookIndexRefresher: watching %s", target)
	if r.watchingChan != nil {
		close(r.watchingChan)
	}

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			r.Logger.Println("BookIndexRefresher: stopping...")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !r.isBookChange(event, target) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(r.Debounce)
			} else {
				timer.Reset(r.Debounce)
			}
			timerCh = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.Logger.Printf("BookIndexRefresher: watcher error: %v", err)
		case <-timerCh:
			timerCh = nil
			err := r.rebuild(ctx)
			if r.workerExecutionChan != nil {
				r.workerExecutionChan <- err
			}
		}
	}
}

func (r BookIndexRefresher) isBookChange(event fsnotify.Event, target string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// rebuild swaps in a fresh index. A failed rebuild keeps the current index serving.
func (r BookIndexRefresher) rebuild(ctx context.Context) error {
	r.Logger.Println("BookIndexRefresher: book changed, rebuilding index")
	stats, err := r.BuildBookIndex.Execute(ctx)
	if err != nil {
		r.Logger.Printf("BookIndexRefresher: rebuild failed, keeping the current index: %v", err)
		return err
	}
	r.Logger.Printf("BookIndexRefresher: index rebuilt with %d chunks from %d sections", stats.Chunks, stats.Sections)
	return nil
}
