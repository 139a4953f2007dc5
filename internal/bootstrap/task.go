package bootstrap

import (
	"github.com/banyumedia/fotovid/internal/conf"
	"github.com/banyumedia/fotovid/internal/forward"
	"github.com/banyumedia/fotovid/internal/job"
	"github.com/banyumedia/fotovid/internal/music"
	"github.com/banyumedia/fotovid/internal/search"
	"github.com/banyumedia/fotovid/internal/store"
	"github.com/banyumedia/fotovid/server/handles"
)

// InitApp builds the stores, the job machinery and the API clients and
// hands them to the request handlers. Must run after InitConfig.
func InitApp() {
	cfg := conf.Conf

	handles.Videos = store.NewVideoLog(cfg.VideoLogFile())
	handles.Creations = store.NewCreationLog(cfg.CreationLogFile())
	handles.Sent = store.NewSentLog(cfg.SentLogFile())
	history := store.NewSeenHistory(cfg.SeenHistoryFile())

	handles.JobTracker = job.NewTracker(job.DefaultCapacity)
	handles.Assembler = job.NewAssembler(handles.JobTracker, handles.Videos, handles.Creations)

	handles.Searcher = search.NewClient(cfg.Search)
	handles.Candidates = search.NewSelector(handles.Searcher, handles.Videos, history)

	handles.Library = music.NewLibrary(cfg.ResolveMusicDir())
	handles.Forwarder = forward.NewClient(cfg.Forward, handles.Videos, handles.Sent, cfg.VideoDir())
}
