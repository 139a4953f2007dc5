package store

import (
	"sync"

	"github.com/banyumedia/fotovid/pkg/utils"
)

// historyCap bounds how many shown candidate IDs are remembered per query.
const historyCap = 200

// SeenHistory remembers which candidate IDs were already shown for a
// query. It only drives display rotation, never hard filtering.
type SeenHistory struct {
	mu   sync.Mutex
	path string
}

func NewSeenHistory(path string) *SeenHistory {
	return &SeenHistory{path: path}
}

func (h *SeenHistory) load() map[string][]string {
	history := map[string][]string{}
	readFile(h.path, &history)
	return history
}

func (h *SeenHistory) save(history map[string][]string) error {
	return utils.WriteJsonToFile(h.path, history)
}

// Seen returns the IDs already shown for query, oldest first.
func (h *SeenHistory) Seen(query string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load()[query]
}

// Record appends ids to the query's history, truncated to the most
// recent historyCap entries.
func (h *SeenHistory) Record(query string, ids []string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	history := h.load()
	all := append(history[query], ids...)
	if len(all) > historyCap {
		all = all[len(all)-historyCap:]
	}
	history[query] = all
	return h.save(history)
}

// Reset clears the history for query. Called when the rotation is
// exhausted so unused candidates start cycling again.
func (h *SeenHistory) Reset(query string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	history := h.load()
	history[query] = []string{}
	return h.save(history)
}
