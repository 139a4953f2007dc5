package handles

import (
	"path/filepath"

	"github.com/banyumedia/fotovid/internal/conf"
	"github.com/banyumedia/fotovid/internal/job"
	"github.com/banyumedia/fotovid/pkg/utils"
	"github.com/banyumedia/fotovid/server/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateReq struct {
	ImageFilename string `json:"image_filename" binding:"required"`
	MusicFilename string `json:"music_filename" binding:"required"`
	Title         string `json:"title"`
}

// CreateVideo validates the inputs and launches an assembly job. The
// response carries only the job ID; the UI polls for progress.
func CreateVideo(c *gin.Context) {
	var req CreateReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	imagePath := filepath.Join(conf.Conf.UploadDir(), filepath.Base(req.ImageFilename))
	if !utils.Exists(imagePath) {
		common.ErrorStrResp(c, "image not found: "+req.ImageFilename, 404)
		return
	}
	musicPath := Library.Path(req.MusicFilename)
	if !utils.Exists(musicPath) {
		common.ErrorStrResp(c, "music not found: "+req.MusicFilename, 404)
		return
	}

	id := uuid.NewString()
	Assembler.Launch(job.Request{
		ID:         id,
		ImagePath:  imagePath,
		MusicPath:  musicPath,
		OutputPath: filepath.Join(conf.Conf.VideoDir(), "video_"+id+".mp4"),
		Title:      req.Title,
	})
	common.SuccessResp(c, gin.H{"task_id": id})
}

// JobProgress reports the tracked state of one job. Unknown IDs come
// back as pending so an early poll never errors.
func JobProgress(c *gin.Context) {
	common.SuccessResp(c, JobTracker.Get(c.Param("id")))
}
