package main

import (
	"log"
	"path/filepath"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/prefabs"
)

// configReloader re-reads the config file whenever the watcher reports it.
type configReloader struct {
	path    string
	watcher *prefabs.Watcher
}

func newConfigReloader(path string) (*configReloader, error) {
	dir := filepath.Dir(path)
	if path == prefabs.DefaultConfigFile {
		// The embedded default is shadowed by the on-disk prefabs copy.
		dir = "prefabs"
		path = filepath.Join(dir, prefabs.DefaultConfigFile)
	}
	w, err := prefabs.NewWatcher(dir)
	if err != nil {
		return nil, err
	}
	log.Printf("watching %s for config changes", path)
	return &configReloader{path: path, watcher: w}, nil
}

// Poll returns a freshly loaded config when the file changed since the last
// call. It never blocks.
func (r *configReloader) Poll() (common.Config, bool) {
	changed := false
	for {
		select {
		case name, ok := <-r.watcher.Events:
			if !ok {
				return common.Config{}, false
			}
			if filepath.Clean(name) == filepath.Clean(r.path) {
				changed = true
			}
			continue
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return common.Config{}, false
			}
			log.Printf("config watch: %v", err)
			continue
		default:
		}
		break
	}
	if !changed {
		return common.Config{}, false
	}

	cfg, err := prefabs.LoadConfig(r.path)
	if err != nil {
		logReload(err)
		return common.Config{}, false
	}
	log.Printf("reloaded %s; applies on restart", r.path)
	return cfg, true
}

func (r *configReloader) Close() {
	if err := r.watcher.Close(); err != nil {
		log.Printf("config watch: close: %v", err)
	}
}

func logReload(err error) {
	log.Printf("config reload rejected: %v", err)
}
