package handles

import (
	"path/filepath"

	"github.com/banyumedia/fotovid/internal/conf"
	"github.com/banyumedia/fotovid/internal/probe"
	"github.com/banyumedia/fotovid/pkg/utils"
	"github.com/banyumedia/fotovid/server/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".bmp":  {},
}

// UploadPhoto stores one source image under a fresh name and reports
// its decoded dimensions so the UI can preview the target resolution.
func UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		common.ErrorStrResp(c, "no photo in request", 400)
		return
	}
	ext := utils.Ext(file.Filename)
	if _, ok := allowedImageExts[ext]; !ok {
		common.ErrorStrResp(c, "unsupported image format: "+ext, 400)
		return
	}
	filename := uuid.NewString() + ext
	savePath := filepath.Join(conf.Conf.UploadDir(), filename)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	w, h, err := probe.ImageSize(savePath)
	if err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	common.SuccessResp(c, gin.H{
		"filename": filename,
		"width":    w,
		"height":   h,
	})
}
