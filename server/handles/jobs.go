package handles

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/banyumedia/fotovid/internal/model"
	"github.com/banyumedia/fotovid/pkg/utils"
	"github.com/banyumedia/fotovid/server/common"
	"github.com/gin-gonic/gin"
)

// JobInfo is the listing view of one tracked job.
type JobInfo struct {
	ID             string     `json:"id"`
	Status         string     `json:"status"`
	Progress       int        `json:"progress"`
	Message        string     `json:"message"`
	Type           string     `json:"type,omitempty"`
	OutputFilename string     `json:"output_filename,omitempty"`
	StartTime      *time.Time `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
}

func getJobInfo(r model.JobRecord) JobInfo {
	info := JobInfo{
		ID:             r.ID,
		Status:         r.Status,
		Progress:       r.Progress,
		Message:        r.Message,
		Type:           r.Type,
		OutputFilename: r.OutputFilename,
	}
	if !r.StartedAt.IsZero() {
		t := r.StartedAt
		info.StartTime = &t
	}
	if !r.EndedAt.IsZero() {
		t := r.EndedAt
		info.EndTime = &t
	}
	return info
}

const (
	defaultJobPageSize = 20
	maxJobPageSize     = 200
)

var undoneStatuses = []string{model.StatusPending, model.StatusProcessing}

var doneStatuses = []string{model.StatusDone, model.StatusError}

type jobListQuery struct {
	page     int
	pageSize int
	orderBy  string
	reverse  bool
	keyword  string
}

func parseJobListQuery(c *gin.Context) jobListQuery {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultJobPageSize)))
	if err != nil || pageSize <= 0 {
		pageSize = defaultJobPageSize
	}
	if pageSize > maxJobPageSize {
		pageSize = maxJobPageSize
	}
	orderBy := strings.ToLower(c.DefaultQuery("order_by", "started_at"))
	switch orderBy {
	case "started_at", "status", "progress":
	default:
		orderBy = "started_at"
	}
	order := strings.ToLower(c.DefaultQuery("order", ""))
	reverse := order == "desc" || order == "true"
	return jobListQuery{
		page:     page,
		pageSize: pageSize,
		orderBy:  orderBy,
		reverse:  reverse,
		keyword:  strings.TrimSpace(c.Query("keyword")),
	}
}

func compareString(a, b string) int {
	switch {
	case a == b:
		return 0
	case a > b:
		return 1
	default:
		return -1
	}
}

func sortJobs(records []model.JobRecord, orderBy string, reverse bool) {
	sort.SliceStable(records, func(i, j int) bool {
		a := records[i]
		b := records[j]
		var cmp int
		switch orderBy {
		case "status":
			cmp = compareString(a.Status, b.Status)
		case "progress":
			switch {
			case a.Progress == b.Progress:
				cmp = 0
			case a.Progress > b.Progress:
				cmp = -1
			default:
				cmp = 1
			}
		default:
			switch {
			case a.StartedAt.Equal(b.StartedAt):
				cmp = 0
			case a.StartedAt.After(b.StartedAt):
				cmp = 1
			default:
				cmp = -1
			}
		}
		if cmp == 0 {
			cmp = compareString(a.ID, b.ID)
		}
		if reverse {
			cmp = -cmp
		}
		return cmp < 0
	})
}

func jobListHandler(statuses ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := parseJobListQuery(c)
		records := JobTracker.List()
		filtered := make([]model.JobRecord, 0, len(records))
		for _, r := range records {
			if !utils.SliceContains(statuses, r.Status) {
				continue
			}
			if query.keyword != "" && !strings.Contains(strings.ToLower(r.Message), strings.ToLower(query.keyword)) {
				continue
			}
			filtered = append(filtered, r)
		}
		sortJobs(filtered, query.orderBy, query.reverse)
		total := len(filtered)
		start := (query.page - 1) * query.pageSize
		if start > total {
			start = total
		}
		end := start + query.pageSize
		if end > total {
			end = total
		}
		common.SuccessResp(c, common.PageResp{
			Content: utils.MustSliceConvert(filtered[start:end], getJobInfo),
			Total:   int64(total),
		})
	}
}

// SetupJobRoute registers the job listing endpoints.
func SetupJobRoute(g *gin.RouterGroup) {
	g.GET("/undone", jobListHandler(undoneStatuses...))
	g.GET("/done", jobListHandler(doneStatuses...))
}
