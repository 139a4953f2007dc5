package job

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/banyumedia/fotovid/internal/model"
	"github.com/banyumedia/fotovid/internal/store"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	assembler *Assembler
	tracker   *Tracker
	videos    *store.VideoLog
	creations *store.CreationLog
	dir       string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	tracker := NewTracker(16)
	videos := store.NewVideoLog(filepath.Join(dir, "video_log.json"))
	creations := store.NewCreationLog(filepath.Join(dir, "creations.json"))
	return &fixture{
		assembler: NewAssembler(tracker, videos, creations),
		tracker:   tracker,
		videos:    videos,
		creations: creations,
		dir:       dir,
	}
}

func stubSeams(t *testing.T, duration float64, durationOK bool, w, h int, imgErr error, encode func(outputPath string) *exec.Cmd) {
	t.Helper()
	origProbe, origSize, origCompile := probeDuration, imageSize, compileEncode
	probeDuration = func(string) (float64, bool) { return duration, durationOK }
	imageSize = func(string) (int, int, error) { return w, h, imgErr }
	compileEncode = func(_, _, outputPath string, _, _ int, _ float64) *exec.Cmd {
		return encode(outputPath)
	}
	t.Cleanup(func() {
		probeDuration, imageSize, compileEncode = origProbe, origSize, origCompile
	})
}

func writeOutputCmd(outputPath string) *exec.Cmd {
	return exec.Command("sh", "-c", "printf data > "+outputPath)
}

func TestAssemblePlainJobSucceeds(t *testing.T) {
	f := newFixture(t)
	stubSeams(t, 90, true, 800, 600, nil, writeOutputCmd)

	out := filepath.Join(f.dir, "video_abc.mp4")
	f.assembler.run(Request{ID: "abc", ImagePath: "img.png", MusicPath: "/music/track.mp3", OutputPath: out})

	rec := f.tracker.Get("abc")
	assert.Equal(t, model.StatusDone, rec.Status)
	assert.Equal(t, 100, rec.Progress)
	assert.Equal(t, "video_abc.mp4", rec.OutputFilename)
	assert.Equal(t, "track.mp3", rec.MusicName)
	assert.Equal(t, "1440x1080", rec.Resolution)
	assert.Equal(t, 90, rec.Duration)

	entries := f.videos.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "video_abc.mp4", entries[0].Filename)
	assert.Empty(t, entries[0].ThumbURL, "uploaded images have no thumb URL")
	assert.Equal(t, "maker", entries[0].Source)

	require.Len(t, f.creations.List(), 1)
}

func TestAssembleSourcedJobSkipsCreationLog(t *testing.T) {
	f := newFixture(t)
	stubSeams(t, 30, true, 600, 800, nil, writeOutputCmd)

	out := filepath.Join(f.dir, "pinvid_xyz.mp4")
	f.assembler.run(Request{
		ID:         "xyz",
		ImagePath:  "pin.jpg",
		MusicPath:  "/music/track.mp3",
		OutputPath: out,
		Type:       model.JobTypePin,
		Title:      "Sunset",
		ThumbURL:   "http://img/1.jpg",
	})

	rec := f.tracker.Get("xyz")
	assert.Equal(t, model.StatusDone, rec.Status)
	assert.Equal(t, "Sunset", rec.Title)
	assert.Equal(t, model.JobTypePin, rec.Type)

	entries := f.videos.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "http://img/1.jpg", entries[0].ThumbURL)
	assert.Equal(t, model.JobTypePin, entries[0].Source)
	assert.Empty(t, f.creations.List())
}

func TestAssembleFailsWhenDurationUnreadable(t *testing.T) {
	f := newFixture(t)
	stubSeams(t, 0, false, 800, 600, nil, writeOutputCmd)

	f.assembler.run(Request{ID: "j", MusicPath: "m.mp3", OutputPath: filepath.Join(f.dir, "o.mp4")})

	rec := f.tracker.Get("j")
	assert.Equal(t, model.StatusError, rec.Status)
	assert.NotEmpty(t, rec.Message)
	assert.Empty(t, f.videos.List())
}

func TestAssembleFailsOnImageDecodeError(t *testing.T) {
	f := newFixture(t)
	stubSeams(t, 10, true, 0, 0, errors.New("bad image"), writeOutputCmd)

	f.assembler.run(Request{ID: "j", OutputPath: filepath.Join(f.dir, "o.mp4")})
	assert.Equal(t, model.StatusError, f.tracker.Get("j").Status)
}

func TestAssembleFailsOnEncoderExit(t *testing.T) {
	f := newFixture(t)
	stubSeams(t, 10, true, 800, 600, nil, func(string) *exec.Cmd {
		return exec.Command("sh", "-c", "echo frame dropped >&2; exit 1")
	})

	f.assembler.run(Request{ID: "j", OutputPath: filepath.Join(f.dir, "o.mp4")})

	rec := f.tracker.Get("j")
	assert.Equal(t, model.StatusError, rec.Status)
	assert.Contains(t, rec.Message, "frame dropped")
	assert.Empty(t, f.videos.List())
}

func TestAssembleFailsWhenOutputMissing(t *testing.T) {
	f := newFixture(t)
	stubSeams(t, 10, true, 800, 600, nil, func(string) *exec.Cmd {
		return exec.Command("true")
	})

	f.assembler.run(Request{ID: "j", OutputPath: filepath.Join(f.dir, "o.mp4")})
	assert.Equal(t, model.StatusError, f.tracker.Get("j").Status)
}

func TestEncodeProgress(t *testing.T) {
	// estimated total is half the audio duration
	assert.Equal(t, 50, encodeProgress(0, 60))
	assert.Equal(t, 72, encodeProgress(15, 60))
	assert.Equal(t, 95, encodeProgress(30, 60))
	// clamps at 95 on overrun
	assert.Equal(t, 95, encodeProgress(300, 60))
	// short tracks use the 5 second floor
	assert.Equal(t, 59, encodeProgress(1, 2))

	prev := 0
	for elapsed := 0.0; elapsed < 100; elapsed += 0.5 {
		p := encodeProgress(elapsed, 120)
		assert.GreaterOrEqual(t, p, prev)
		prev = p
	}
}
