package provider

import (
	"context"
	"path/filepath"
	"time"

	"github.com/boz/go-throttle"
	"github.com/fsnotify/fsnotify"
)

// Watch reloads the active catalog whenever its file changes, until ctx is
// done. Bursts of writes within period trigger a single reload. A reload that
// fails keeps the catalog that was active before it.
//
// The directory is watched rather than the file so that editors which replace
// the file on save keep being noticed.
func (p *Provider) Watch(ctx context.Context, period time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(p.options.Directory); err != nil {
		return err
	}
	p.Log.Debugf("watching %q for catalog changes", p.options.Directory)

	reload := throttle.ThrottleFunc(period, true, func() {
		path := p.Path()
		if path == "" {
			return
		}
		if err := p.reload(path); err != nil {
			p.Log.Warnf("keeping previous catalog: %v", err)
		}
	})
	defer reload.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !p.watches(event.Name) {
				continue
			}
			reload.Trigger()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			p.Log.Errorf("catalog watcher: %v", err)
		case <-ctx.Done():
			p.Log.Debugf("catalog watching canceled: %v", ctx.Err())
			return nil
		}
	}
}

func (p *Provider) watches(name string) bool {
	path := p.Path()
	if path == "" {
		return false
	}
	return filepath.Clean(name) == filepath.Clean(path)
}
