package store

import (
	"sync"

	"github.com/banyumedia/fotovid/internal/model"
	"github.com/banyumedia/fotovid/pkg/utils"
)

// CreationLog lists plain (directly uploaded) job results for the
// "my creations" page. Sourced jobs only appear in the video log.
type CreationLog struct {
	mu   sync.Mutex
	path string
}

func NewCreationLog(path string) *CreationLog {
	return &CreationLog{path: path}
}

func (l *CreationLog) load() []model.CreationEntry {
	var entries []model.CreationEntry
	readFile(l.path, &entries)
	return entries
}

func (l *CreationLog) save(entries []model.CreationEntry) error {
	if entries == nil {
		entries = []model.CreationEntry{}
	}
	return utils.WriteJsonToFile(l.path, entries)
}

func (l *CreationLog) List() []model.CreationEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

func (l *CreationLog) Append(entry model.CreationEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.save(append([]model.CreationEntry{entry}, l.load()...))
}

func (l *CreationLog) Remove(filename string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries := l.load()
	kept := entries[:0]
	for _, e := range entries {
		if e.Filename != filename {
			kept = append(kept, e)
		}
	}
	return l.save(kept)
}
