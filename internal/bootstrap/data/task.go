package data

import (
	"github.com/banyumedia/fotovid/internal/conf"
	"github.com/banyumedia/fotovid/pkg/utils"
)

// InitData seeds the durable JSON logs with empty arrays so a fresh
// install starts from a consistent on-disk state. Existing files are
// left untouched.
func InitData() {
	for _, path := range []string{
		conf.Conf.VideoLogFile(),
		conf.Conf.CreationLogFile(),
		conf.Conf.SentLogFile(),
	} {
		if utils.Exists(path) {
			continue
		}
		if err := utils.WriteJsonToFile(path, []struct{}{}); err != nil {
			utils.Log.Warnf("failed to seed %s: %+v", path, err)
		}
	}
	if !utils.Exists(conf.Conf.SeenHistoryFile()) {
		if err := utils.WriteJsonToFile(conf.Conf.SeenHistoryFile(), map[string][]string{}); err != nil {
			utils.Log.Warnf("failed to seed %s: %+v", conf.Conf.SeenHistoryFile(), err)
		}
	}
}
