package bootstrap

import (
	"github.com/banyumedia/fotovid/internal/conf"
	"github.com/banyumedia/fotovid/pkg/utils"
)

func InitConfig() {
	cfg, err := conf.Load()
	if err != nil {
		utils.Log.Fatalf("failed to load config: %+v", err)
	}
	conf.Conf = cfg
	for _, dir := range []string{cfg.DataDir, cfg.UploadDir(), cfg.VideoDir(), cfg.InfoDir()} {
		if err := utils.EnsureDir(dir); err != nil {
			utils.Log.Fatalf("failed to create %s: %+v", dir, err)
		}
	}
}
