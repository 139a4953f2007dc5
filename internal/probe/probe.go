package probe

import (
	"strconv"
	"time"

	"github.com/banyumedia/fotovid/pkg/utils"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

const audioProbeTimeout = 30 * time.Second

// probeAudio is swappable for tests.
var probeAudio = func(path string) (string, error) {
	return ffmpeg.ProbeWithTimeout(path, audioProbeTimeout, nil)
}

// AudioDuration returns the duration of the audio file in seconds. The
// second return is false when ffprobe fails, times out, or emits output
// without a parsable duration; callers treat that as recoverable.
func AudioDuration(path string) (float64, bool) {
	raw, err := probeAudio(path)
	if err != nil {
		utils.Log.Debugf("ffprobe failed for %s: %v", path, err)
		return 0, false
	}
	var payload struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := utils.Json.UnmarshalFromString(raw, &payload); err != nil {
		utils.Log.Debugf("ffprobe output unparsable for %s: %v", path, err)
		return 0, false
	}
	duration, err := strconv.ParseFloat(payload.Format.Duration, 64)
	if err != nil {
		return 0, false
	}
	return duration, true
}

// ImageSize returns the pixel dimensions of the image at path. Decode
// failures propagate and fail the job that asked.
func ImageSize(path string) (int, int, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "failed decode image %s", path)
	}
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}
