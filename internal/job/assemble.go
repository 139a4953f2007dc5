package job

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/banyumedia/fotovid/internal/geometry"
	"github.com/banyumedia/fotovid/internal/model"
	"github.com/banyumedia/fotovid/internal/probe"
	"github.com/banyumedia/fotovid/internal/store"
	"github.com/banyumedia/fotovid/pkg/utils"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

const (
	pollInterval = 500 * time.Millisecond
	// stderrTailLen bounds the encoder diagnostic surfaced to the UI.
	stderrTailLen = 300
)

// Swapped out in tests so no ffmpeg binary is needed.
var (
	probeDuration = probe.AudioDuration
	imageSize     = probe.ImageSize
	compileEncode = buildEncodeCmd
)

// Request describes one video assembly job.
type Request struct {
	ID         string
	ImagePath  string
	MusicPath  string
	OutputPath string
	// Type tags sourced jobs (model.JobTypePin); empty for plain uploads.
	Type     string
	Title    string
	ThumbURL string
}

// Assembler runs assembly jobs in background goroutines and records the
// outcome to the tracker and the durable logs.
type Assembler struct {
	tracker   *Tracker
	videos    *store.VideoLog
	creations *store.CreationLog
}

func NewAssembler(tracker *Tracker, videos *store.VideoLog, creations *store.CreationLog) *Assembler {
	return &Assembler{tracker: tracker, videos: videos, creations: creations}
}

// Launch starts the job in a detached goroutine. There is no
// cancellation path: once started, a job runs to done or error.
func (a *Assembler) Launch(req Request) {
	go a.run(req)
}

func (a *Assembler) run(req Request) {
	defer func() {
		if r := recover(); r != nil {
			utils.Log.Errorf("assembly job %s panicked: %v", req.ID, r)
			a.tracker.Fail(req.ID, fmt.Sprintf("internal error: %v", r))
		}
	}()

	a.tracker.Start(req.ID, req.Type)
	a.tracker.Update(req.ID, 10, "Reading music duration...")

	duration, ok := probeDuration(req.MusicPath)
	if !ok || duration <= 0 {
		a.tracker.Fail(req.ID, "Could not read music duration.")
		return
	}
	a.tracker.Update(req.ID, 20, "Music duration: "+utils.FormatClock(duration))

	w, h, err := imageSize(req.ImagePath)
	if err != nil {
		a.tracker.Fail(req.ID, fmt.Sprintf("Could not read image: %v", err))
		return
	}
	newW, newH := geometry.Fit1080(w, h)
	resolution := fmt.Sprintf("%dx%d", newW, newH)
	a.tracker.Update(req.ID, 30, "Target resolution: "+resolution)

	musicName := filepath.Base(req.MusicPath)
	a.tracker.Update(req.ID, 40, "Creating video with: "+musicName)

	cmd := compileEncode(req.ImagePath, req.MusicPath, req.OutputPath, newW, newH, duration)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	a.tracker.Update(req.ID, 50, "Encoding video...")
	if err := cmd.Start(); err != nil {
		a.tracker.Fail(req.ID, fmt.Sprintf("Could not start encoder: %v", err))
		return
	}

	waitCh := make(chan error, 1)
	go func() { waitCh <- cmd.Wait() }()

	started := time.Now()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	var waitErr error
poll:
	for {
		select {
		case waitErr = <-waitCh:
			break poll
		case <-ticker.C:
			a.tracker.Update(req.ID, encodeProgress(time.Since(started).Seconds(), duration), "")
		}
	}

	if waitErr != nil {
		a.tracker.Fail(req.ID, "Encoder error: "+tail(stderr.String(), stderrTailLen))
		return
	}
	if utils.FileSize(req.OutputPath) == 0 {
		a.tracker.Fail(req.ID, "Video file was not created.")
		return
	}

	outputFilename := filepath.Base(req.OutputPath)
	a.tracker.Done(req.ID, "Video created.", Result{
		OutputFilename: outputFilename,
		MusicName:      musicName,
		Resolution:     resolution,
		Duration:       int(duration),
		Title:          req.Title,
	})

	a.appendLogs(req, outputFilename, musicName, resolution, int(duration))
}

func (a *Assembler) appendLogs(req Request, filename, musicName, resolution string, duration int) {
	createdAt := time.Now().Format(model.TimeFormat)
	title := req.Title
	source := "maker"
	if req.Type == model.JobTypePin {
		source = model.JobTypePin
	}
	if title == "" {
		title = filename
	}
	if err := a.videos.Append(model.VideoEntry{
		ID:         req.ID,
		Title:      title,
		ThumbURL:   req.ThumbURL,
		Filename:   filename,
		Music:      musicName,
		Resolution: resolution,
		Duration:   duration,
		CreatedAt:  createdAt,
		Source:     source,
	}); err != nil {
		utils.Log.Warnf("failed to append video log for %s: %+v", filename, err)
	}
	if req.Type != model.JobTypePin {
		if err := a.creations.Append(model.CreationEntry{
			ID:         req.ID,
			Filename:   filename,
			Music:      musicName,
			Resolution: resolution,
			Duration:   duration,
			CreatedAt:  createdAt,
		}); err != nil {
			utils.Log.Warnf("failed to append creation log for %s: %+v", filename, err)
		}
	}
}

// encodeProgress maps elapsed encode wall time onto the 50-95 band.
// This is a heuristic UI affordance, not a measured completion
// percentage: half the audio duration (floor 5s) is assumed as the
// total encode time and the value clamps at 95 on overrun.
func encodeProgress(elapsedSec, audioDuration float64) int {
	estimated := audioDuration / 2
	if estimated < 5 {
		estimated = 5
	}
	band := int(elapsedSec / estimated * 45)
	if band > 45 {
		band = 45
	}
	if band < 0 {
		band = 0
	}
	return 50 + band
}

// buildEncodeCmd compiles the ffmpeg invocation: the still image looped
// as the single video frame source, the audio track re-encoded at a
// fixed bitrate, output clamped to the audio duration and laid out for
// progressive download.
func buildEncodeCmd(imagePath, musicPath, outputPath string, width, height int, duration float64) *exec.Cmd {
	image := ffmpeg.Input(imagePath, ffmpeg.KwArgs{"loop": 1})
	audio := ffmpeg.Input(musicPath)
	return ffmpeg.Output([]*ffmpeg.Stream{image, audio}, outputPath, ffmpeg.KwArgs{
		"vf":       fmt.Sprintf("scale=%d:%d:flags=lanczos", width, height),
		"c:v":      "libx264",
		"preset":   "medium",
		"crf":      "18",
		"c:a":      "aac",
		"b:a":      "192k",
		"t":        fmt.Sprintf("%.3f", duration),
		"shortest": "",
		"pix_fmt":  "yuv420p",
		"movflags": "+faststart",
	}).OverWriteOutput().Compile()
}

func tail(s string, n int) string {
	if s == "" {
		return "unknown"
	}
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
