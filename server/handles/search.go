package handles

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/banyumedia/fotovid/internal/conf"
	"github.com/banyumedia/fotovid/internal/errs"
	"github.com/banyumedia/fotovid/internal/job"
	"github.com/banyumedia/fotovid/internal/model"
	"github.com/banyumedia/fotovid/server/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// SearchCandidates returns up to ten image candidates for a query,
// filtered and rotated by the selector.
func SearchCandidates(c *gin.Context) {
	results, err := Candidates.Select(c.Query("q"))
	if err != nil {
		switch {
		case errors.Is(err, errs.EmptyQuery):
			common.ErrorResp(c, err, 400)
		case errors.Is(err, errs.NoSearchResults):
			common.ErrorResp(c, err, 404)
		default:
			common.ErrorResp(c, err, 500, true)
		}
		return
	}
	common.SuccessResp(c, gin.H{
		"query":   strings.TrimSpace(c.Query("q")),
		"results": results,
	})
}

type MakeReq struct {
	ImageURL string `json:"image_url" binding:"required"`
	Title    string `json:"title"`
}

// MakeFromCandidate downloads a candidate image, pairs it with a random
// music track and launches a sourced assembly job.
func MakeFromCandidate(c *gin.Context) {
	var req MakeReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	data, err := Searcher.FetchImage(req.ImageURL)
	if err != nil {
		common.ErrorResp(c, err, 502, true)
		return
	}
	imagePath := filepath.Join(conf.Conf.UploadDir(), "pin_"+uuid.NewString()+imageExtFromURL(req.ImageURL))
	if err := os.WriteFile(imagePath, data, 0o644); err != nil {
		common.ErrorResp(c, errors.Wrap(err, "failed save downloaded image"), 500, true)
		return
	}
	musicPath, err := Library.Random()
	if err != nil {
		if errors.Is(err, errs.NoMusicFiles) {
			common.ErrorResp(c, err, 400)
		} else {
			common.ErrorResp(c, err, 500, true)
		}
		return
	}

	title := req.Title
	if title == "" {
		title = "Pinterest Video"
	}
	id := uuid.NewString()
	Assembler.Launch(job.Request{
		ID:         id,
		ImagePath:  imagePath,
		MusicPath:  musicPath,
		OutputPath: filepath.Join(conf.Conf.VideoDir(), "pinvid_"+id+".mp4"),
		Type:       model.JobTypePin,
		Title:      title,
		ThumbURL:   req.ImageURL,
	})
	common.SuccessResp(c, gin.H{"task_id": id})
}

func imageExtFromURL(imageURL string) string {
	trimmed := imageURL
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	ext := strings.ToLower(filepath.Ext(trimmed))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".bmp":
		return ext
	}
	return ".jpg"
}
