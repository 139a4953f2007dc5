package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/banyumedia/fotovid/internal/conf"
	"github.com/banyumedia/fotovid/pkg/utils"
	"github.com/banyumedia/fotovid/server"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var ServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the console server",
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		gin.SetMode(gin.ReleaseMode)
		engine := gin.New()
		engine.Use(gin.LoggerWithWriter(utils.Log.Out), gin.Recovery())
		server.Init(engine)

		addr := fmt.Sprintf("%s:%d", conf.Conf.Address, conf.Conf.Port)
		srv := &http.Server{Addr: addr, Handler: engine}
		go func() {
			utils.Log.Infof("start HTTP server @ %s", addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				utils.Log.Fatalf("failed to start: %+v", err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		utils.Log.Println("shutdown server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			utils.Log.Fatalf("server shutdown: %+v", err)
		}
		utils.Log.Println("server exit")
	},
}

func init() {
	RootCmd.AddCommand(ServerCmd)
}
