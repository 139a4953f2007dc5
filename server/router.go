// Package server wires the console API onto a gin engine.
package server

import (
	"github.com/banyumedia/fotovid/internal/conf"
	"github.com/banyumedia/fotovid/server/handles"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init registers all routes and middleware on the engine.
func Init(e *gin.Engine) {
	cfg := conf.Conf
	e.MaxMultipartMemory = cfg.MaxUploadMB << 20

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-API-Key")
	e.Use(cors.New(corsConfig))

	e.Static("/uploads", cfg.UploadDir())
	e.Static("/videos", cfg.VideoDir())
	e.Static("/music", handles.Library.Dir())

	api := e.Group("/api")
	api.POST("/upload", handles.UploadPhoto)
	api.POST("/create", handles.CreateVideo)
	api.GET("/progress/:id", handles.JobProgress)
	handles.SetupJobRoute(api.Group("/jobs"))

	api.GET("/search", handles.SearchCandidates)
	api.POST("/search/make", handles.MakeFromCandidate)

	api.GET("/videos", handles.ListVideos)
	api.DELETE("/videos/:filename", handles.DeleteVideo)
	api.GET("/download/:filename", handles.DownloadVideo)
	api.GET("/creations", handles.ListCreations)
	api.DELETE("/creations/:filename", handles.DeleteVideo)

	api.GET("/music", handles.ListMusic)

	api.POST("/send", handles.SendVideo)
	api.GET("/sent", handles.ListSent)

	api.GET("/info", handles.ListInfo)
	api.GET("/info/:name", handles.GetInfo)
}
