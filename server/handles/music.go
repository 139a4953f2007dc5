package handles

import (
	"github.com/banyumedia/fotovid/server/common"
	"github.com/gin-gonic/gin"
)

// ListMusic returns the resolved music folder and its tracks with
// probed durations.
func ListMusic(c *gin.Context) {
	tracks, err := Library.List()
	if err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c, gin.H{
		"folder": Library.Dir(),
		"files":  tracks,
	})
}
