// Package job implements the video assembly job and the process-wide
// tracker that the UI polls for progress.
package job

import (
	"sync"
	"time"

	"github.com/banyumedia/fotovid/internal/model"
)

// DefaultCapacity bounds how many job records the tracker keeps before
// evicting the oldest terminal entries.
const DefaultCapacity = 256

// Tracker maps job IDs to progress records. Each job has a single
// writing goroutine; reads can come from any request. Unknown IDs report
// status pending, matching the poll contract. Terminal records past the
// capacity are evicted oldest-first so a long-running server does not
// leak memory; records of still-running jobs are never evicted.
type Tracker struct {
	mu       sync.RWMutex
	jobs     map[string]*model.JobRecord
	order    []string
	capacity int
}

func NewTracker(capacity int) *Tracker {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Tracker{
		jobs:     make(map[string]*model.JobRecord),
		capacity: capacity,
	}
}

// Start registers a new processing record for id.
func (t *Tracker) Start(id, jobType string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.jobs[id] = &model.JobRecord{
		ID:        id,
		Status:    model.StatusProcessing,
		Progress:  0,
		Type:      jobType,
		StartedAt: time.Now(),
	}
	t.order = append(t.order, id)
	t.evictLocked()
}

// Update advances the progress and message of a processing job.
// Progress never decreases; stale lower values are ignored.
func (t *Tracker) Update(id string, progress int, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.jobs[id]
	if !ok || rec.Terminal() {
		return
	}
	if progress > rec.Progress {
		rec.Progress = progress
	}
	if message != "" {
		rec.Message = message
	}
}

// Fail moves the job to its terminal error state.
func (t *Tracker) Fail(id, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.jobs[id]
	if !ok || rec.Terminal() {
		return
	}
	rec.Status = model.StatusError
	rec.Message = message
	rec.EndedAt = time.Now()
}

// Result carries the metadata of a finished job.
type Result struct {
	OutputFilename string
	MusicName      string
	Resolution     string
	Duration       int
	Title          string
}

// Done moves the job to its terminal done state with progress 100.
func (t *Tracker) Done(id, message string, res Result) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.jobs[id]
	if !ok || rec.Terminal() {
		return
	}
	rec.Status = model.StatusDone
	rec.Progress = 100
	rec.Message = message
	rec.OutputFilename = res.OutputFilename
	rec.MusicName = res.MusicName
	rec.Resolution = res.Resolution
	rec.Duration = res.Duration
	rec.Title = res.Title
	rec.EndedAt = time.Now()
}

// Get returns a copy of the record for id. Unknown IDs are pending.
func (t *Tracker) Get(id string) model.JobRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if rec, ok := t.jobs[id]; ok {
		return *rec
	}
	return model.JobRecord{ID: id, Status: model.StatusPending, Progress: 0}
}

// List returns copies of all tracked records, oldest first.
func (t *Tracker) List() []model.JobRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()
	records := make([]model.JobRecord, 0, len(t.order))
	for _, id := range t.order {
		if rec, ok := t.jobs[id]; ok {
			records = append(records, *rec)
		}
	}
	return records
}

// evictLocked drops the oldest terminal records beyond capacity.
func (t *Tracker) evictLocked() {
	if len(t.jobs) <= t.capacity {
		return
	}
	kept := t.order[:0]
	for _, id := range t.order {
		rec, ok := t.jobs[id]
		if !ok {
			continue
		}
		if len(t.jobs) > t.capacity && rec.Terminal() {
			delete(t.jobs, id)
			continue
		}
		kept = append(kept, id)
	}
	t.order = kept
}
