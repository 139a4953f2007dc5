package search

import (
	"github.com/banyumedia/fotovid/internal/model"
	"github.com/banyumedia/fotovid/internal/store"
	"github.com/banyumedia/fotovid/pkg/utils"
	mapset "github.com/deckarep/golang-set/v2"
)

const maxSelected = 10

// Searcher is the remote result source, satisfied by *Client.
type Searcher interface {
	Search(query string) ([]model.PinCandidate, error)
}

// Selector picks which candidates to show for a query:
//
//   - hard filter: candidates whose image URL already produced a video
//     (present in the video log) are excluded from the fresh pool but
//     stay eligible for the final fallback, so a user can deliberately
//     revisit an image;
//   - soft rotation: candidates already shown for this query are
//     deprioritized via the seen history, which resets once the unused
//     pool has been cycled through.
type Selector struct {
	source  Searcher
	videos  *store.VideoLog
	history *store.SeenHistory
}

func NewSelector(source Searcher, videos *store.VideoLog, history *store.SeenHistory) *Selector {
	return &Selector{source: source, videos: videos, history: history}
}

// Select returns up to 10 candidates for query, each annotated with
// already_used, and records them in the query's seen history.
func (s *Selector) Select(query string) ([]model.PinCandidate, error) {
	results, err := s.source.Search(query)
	if err != nil {
		return nil, err
	}

	used := s.videos.UsedThumbURLs()
	seen := mapset.NewThreadUnsafeSet(s.history.Seen(query)...)

	notUsed := make([]model.PinCandidate, 0, len(results))
	for _, r := range results {
		if !used.Contains(r.ImageURL) {
			notUsed = append(notUsed, r)
		}
	}
	notSeen := make([]model.PinCandidate, 0, len(notUsed))
	for _, r := range notUsed {
		if !seen.Contains(r.ID) {
			notSeen = append(notSeen, r)
		}
	}

	var selected []model.PinCandidate
	switch {
	case len(notSeen) >= 3:
		selected = head(notSeen)
	case len(notUsed) >= 1:
		// rotation exhausted: everything unused was already shown once,
		// start the cycle over
		if err := s.history.Reset(query); err != nil {
			utils.Log.Warnf("failed to reset seen history for %q: %+v", query, err)
		}
		selected = head(notUsed)
	default:
		// every candidate already became a video; degrade gracefully
		// rather than show nothing
		selected = head(results)
	}

	ids := make([]string, 0, len(selected))
	for _, r := range selected {
		if r.ID != "" {
			ids = append(ids, r.ID)
		}
	}
	if err := s.history.Record(query, ids); err != nil {
		utils.Log.Warnf("failed to record seen history for %q: %+v", query, err)
	}

	for i := range selected {
		selected[i].AlreadyUsed = used.Contains(selected[i].ImageURL)
	}
	return selected, nil
}

func head(candidates []model.PinCandidate) []model.PinCandidate {
	if len(candidates) > maxSelected {
		candidates = candidates[:maxSelected]
	}
	out := make([]model.PinCandidate, len(candidates))
	copy(out, candidates)
	return out
}
