package handles

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/banyumedia/fotovid/internal/conf"
	"github.com/banyumedia/fotovid/internal/model"
	"github.com/banyumedia/fotovid/pkg/utils"
	"github.com/banyumedia/fotovid/server/common"
	"github.com/gin-gonic/gin"
)

// ListInfo returns every info document from the info folder. Documents
// that fail to parse are skipped with a warning.
func ListInfo(c *gin.Context) {
	entries, err := os.ReadDir(conf.Conf.InfoDir())
	if err != nil {
		if os.IsNotExist(err) {
			common.SuccessResp(c, []model.InfoDocument{})
			return
		}
		common.ErrorResp(c, err, 500, true)
		return
	}
	docs := make([]model.InfoDocument, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || utils.Ext(entry.Name()) != ".json" {
			continue
		}
		var doc model.InfoDocument
		if err := utils.ReadJsonFromFile(filepath.Join(conf.Conf.InfoDir(), entry.Name()), &doc); err != nil {
			utils.Log.Warnf("skipping unreadable info document %s: %+v", entry.Name(), err)
			continue
		}
		doc.Name = strings.TrimSuffix(entry.Name(), ".json")
		docs = append(docs, doc)
	}
	common.SuccessResp(c, docs)
}

// GetInfo returns one info document by name.
func GetInfo(c *gin.Context) {
	name := filepath.Base(c.Param("name"))
	path := filepath.Join(conf.Conf.InfoDir(), name+".json")
	if !utils.Exists(path) {
		common.ErrorStrResp(c, "info not found: "+name, 404)
		return
	}
	var doc model.InfoDocument
	if err := utils.ReadJsonFromFile(path, &doc); err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	doc.Name = name
	common.SuccessResp(c, doc)
}
