package store

import (
	"sync"

	"github.com/banyumedia/fotovid/internal/model"
	"github.com/banyumedia/fotovid/pkg/utils"
	mapset "github.com/deckarep/golang-set/v2"
)

// VideoLog is the durable registry of all successfully produced videos,
// newest first. Exactly one entry exists per produced file.
type VideoLog struct {
	mu   sync.Mutex
	path string
}

func NewVideoLog(path string) *VideoLog {
	return &VideoLog{path: path}
}

func (l *VideoLog) load() []model.VideoEntry {
	var entries []model.VideoEntry
	readFile(l.path, &entries)
	return entries
}

func (l *VideoLog) save(entries []model.VideoEntry) error {
	if entries == nil {
		entries = []model.VideoEntry{}
	}
	return utils.WriteJsonToFile(l.path, entries)
}

// List returns all entries, newest first.
func (l *VideoLog) List() []model.VideoEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

// Append prepends a new entry.
func (l *VideoLog) Append(entry model.VideoEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries := append([]model.VideoEntry{entry}, l.load()...)
	return l.save(entries)
}

// Remove drops the entry for filename, if present.
func (l *VideoLog) Remove(filename string) error {
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

// Find returns the entry for filename.
func (l *VideoLog) Find(filename string) (model.VideoEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.load() {
		if e.Filename == filename {
			return e, true
		}
	}
	return model.VideoEntry{}, false
}

// UsedThumbURLs collects the thumbnail source URLs of every produced
// video. This is the hard filter of the candidate selector.
func (l *VideoLog) UsedThumbURLs() mapset.Set[string] {
	l.mu.Lock()
	defer l.mu.Unlock()
	used := mapset.NewThreadUnsafeSet[string]()
	for _, e := range l.load() {
		if e.ThumbURL != "" {
			used.Add(e.ThumbURL)
		}
	}
	return used
}
