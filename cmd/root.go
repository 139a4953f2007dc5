package cmd

import (
	"os"

	"github.com/banyumedia/fotovid/internal/bootstrap"
	"github.com/banyumedia/fotovid/internal/bootstrap/data"
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "fotovid",
	Short: "A local console that turns a photo and a music track into a video",
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Init runs the bootstrap chain shared by commands that need a fully
// wired application.
func Init() {
	bootstrap.InitConfig()
	bootstrap.InitLog()
	data.InitData()
	bootstrap.InitApp()
}
