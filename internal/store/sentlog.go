package store

import (
	"sync"

	"github.com/banyumedia/fotovid/internal/model"
	"github.com/banyumedia/fotovid/pkg/utils"
)

// SentLog records filenames already forwarded to the upload-scheduling
// service. A filename appearing here blocks any further forward attempt.
type SentLog struct {
	mu   sync.Mutex
	path string
}

func NewSentLog(path string) *SentLog {
	return &SentLog{path: path}
}

func (l *SentLog) load() []model.SentRecord {
	var records []model.SentRecord
	readFile(l.path, &records)
	return records
}

func (l *SentLog) List() []model.SentRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

// Contains reports whether filename was already forwarded.
func (l *SentLog) Contains(filename string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, r := range l.load() {
		if r.Filename == filename {
			return true
		}
	}
	return false
}

func (l *SentLog) Append(record model.SentRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	records := append([]model.SentRecord{record}, l.load()...)
	return utils.WriteJsonToFile(l.path, records)
}
