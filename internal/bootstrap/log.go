package bootstrap

import (
	"io"
	"os"

	"github.com/banyumedia/fotovid/internal/conf"
	"github.com/banyumedia/fotovid/pkg/utils"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func InitLog() {
	cfg := conf.Conf.Log
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	utils.Log.SetLevel(level)
	utils.Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if !cfg.Enable {
		return
	}
	writer := &lumberjack.Logger{
		Filename:   conf.Conf.LogFile(),
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   true,
	}
	utils.Log.SetOutput(io.MultiWriter(os.Stdout, writer))
}
