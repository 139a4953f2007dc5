package handles

import (
	"github.com/banyumedia/fotovid/internal/errs"
	"github.com/banyumedia/fotovid/internal/forward"
	"github.com/banyumedia/fotovid/server/common"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// SendVideo forwards one produced video to the upload scheduler. A
// filename that was already forwarded answers 409 without touching the
// network again.
func SendVideo(c *gin.Context) {
	var req forward.Request
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	res, err := Forwarder.Send(req)
	if err != nil {
		switch {
		case errors.Is(err, errs.AlreadySent):
			common.ErrorResp(c, err, 409)
		case errs.IsObjectNotFound(err):
			common.ErrorResp(c, err, 404)
		default:
			common.ErrorResp(c, err, 500, true)
		}
		return
	}
	common.SuccessResp(c, res)
}

// ListSent returns the forwarding history, newest first.
func ListSent(c *gin.Context) {
	common.SuccessResp(c, Sent.List())
}
