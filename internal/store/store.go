// Package store implements the durable whole-file JSON logs: the video
// log, the creations log, the per-query seen history, and the sent log.
// Every store owns a mutex and performs read-modify-write under it, so a
// completed job can never lose another job's append.
package store

import (
	"github.com/banyumedia/fotovid/pkg/utils"
)

// readFile loads a whole-file JSON document into out, starting from the
// zero value when the file is missing or corrupt.
func readFile(path string, out interface{}) {
	if !utils.Exists(path) {
		return
	}
	if err := utils.ReadJsonFromFile(path, out); err != nil {
		utils.Log.Warnf("failed to load %s, starting empty: %+v", path, err)
	}
}
