package common

import (
	"net/http"

	"github.com/banyumedia/fotovid/pkg/utils"
	"github.com/gin-gonic/gin"
)

type Resp[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type PageResp struct {
	Content interface{} `json:"content"`
	Total   int64       `json:"total"`
}

func ErrorResp(c *gin.Context, err error, code int, l ...bool) {
	if len(l) > 0 && l[0] {
		utils.Log.Errorf("%+v", err)
	}
	c.JSON(http.StatusOK, Resp[interface{}]{
		Code:    code,
		Message: err.Error(),
		Data:    nil,
	})
	c.Abort()
}

func ErrorStrResp(c *gin.Context, str string, code int, l ...bool) {
	if len(l) > 0 && l[0] {
		utils.Log.Error(str)
	}
	c.JSON(http.StatusOK, Resp[interface{}]{
		Code:    code,
		Message: str,
		Data:    nil,
	})
	c.Abort()
}

func SuccessResp(c *gin.Context, data ...interface{}) {
	if len(data) == 0 {
		c.JSON(http.StatusOK, Resp[interface{}]{
			Code:    200,
			Message: "success",
			Data:    nil,
		})
		return
	}
	c.JSON(http.StatusOK, Resp[interface{}]{
		Code:    200,
		Message: "success",
		Data:    data[0],
	})
}
