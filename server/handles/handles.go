// Package handles contains the gin handlers of the console API.
package handles

import (
	"github.com/banyumedia/fotovid/internal/forward"
	"github.com/banyumedia/fotovid/internal/job"
	"github.com/banyumedia/fotovid/internal/music"
	"github.com/banyumedia/fotovid/internal/search"
	"github.com/banyumedia/fotovid/internal/store"
)

// Wired by bootstrap before the router starts serving.
var (
	JobTracker *job.Tracker
	Assembler  *job.Assembler
	Videos     *store.VideoLog
	Creations  *store.CreationLog
	Sent       *store.SentLog
	Searcher   *search.Client
	Candidates *search.Selector
	Library    *music.Library
	Forwarder  *forward.Client
)
