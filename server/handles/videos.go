package handles

import (
	"os"
	"path/filepath"

	"github.com/banyumedia/fotovid/internal/conf"
	"github.com/banyumedia/fotovid/pkg/utils"
	"github.com/banyumedia/fotovid/server/common"
	"github.com/gin-gonic/gin"
)

// ListVideos returns every produced video, newest first.
func ListVideos(c *gin.Context) {
	common.SuccessResp(c, Videos.List())
}

// ListCreations returns the plain (non-sourced) jobs only.
func ListCreations(c *gin.Context) {
	common.SuccessResp(c, Creations.List())
}

// DeleteVideo removes one produced video: the file on disk and its
// entries in both logs. A missing file is not an error; the log entry
// still goes away.
func DeleteVideo(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	if filename == "." || filename == "/" {
		common.ErrorStrResp(c, "invalid filename", 400)
		return
	}
	path := filepath.Join(conf.Conf.VideoDir(), filename)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		common.ErrorResp(c, err, 500, true)
		return
	}
	if err := Videos.Remove(filename); err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	if err := Creations.Remove(filename); err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c)
}

// DownloadVideo serves the file as an attachment.
func DownloadVideo(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	path := filepath.Join(conf.Conf.VideoDir(), filename)
	if !utils.Exists(path) {
		common.ErrorStrResp(c, "video not found: "+filename, 404)
		return
	}
	c.FileAttachment(path, filename)
}
